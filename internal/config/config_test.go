package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/solarfocus/internal/config"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.FormatTable, cfg.Output.DefaultFormat)
	assert.Equal(t, "BRL", cfg.Display.Currency)
	assert.Equal(t, config.CacheBackendMemory, cfg.Cache.Backend)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr error
	}{
		{
			name:    "bad output format",
			mutate:  func(c *config.Config) { c.Output.DefaultFormat = "xml" },
			wantErr: config.ErrInvalidOutputFormat,
		},
		{
			name:    "bad locale",
			mutate:  func(c *config.Config) { c.Output.Locale = "fr" },
			wantErr: config.ErrInvalidLocale,
		},
		{
			name:    "missing currency",
			mutate:  func(c *config.Config) { c.Display.Currency = "" },
			wantErr: config.ErrCurrencyRequired,
		},
		{
			name:    "redis without address",
			mutate:  func(c *config.Config) { c.Cache.Backend = config.CacheBackendRedis },
			wantErr: config.ErrRedisAddrRequired,
		},
		{
			name:    "unknown cache backend",
			mutate:  func(c *config.Config) { c.Cache.Backend = "memcached" },
			wantErr: config.ErrInvalidCacheBackend,
		},
		{
			name:    "zero rate limit",
			mutate:  func(c *config.Config) { c.Server.RateLimitPerSecond = 0 },
			wantErr: config.ErrInvalidRateLimit,
		},
		{
			name:    "empty server address",
			mutate:  func(c *config.Config) { c.Server.Addr = "" },
			wantErr: config.ErrServerAddrRequired,
		},
		{
			name:    "future schema version",
			mutate:  func(c *config.Config) { c.Version = "2.1.0" },
			wantErr: config.ErrUnsupportedVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.Default()
	cfg.Display.Currency = "USD"
	cfg.Cache.Backend = config.CacheBackendRedis
	cfg.Cache.RedisAddr = "localhost:6379"
	require.NoError(t, cfg.Save(path))

	loaded := config.Default()
	require.NoError(t, loaded.LoadFile(path))
	assert.Equal(t, "USD", loaded.Display.Currency)
	assert.Equal(t, "localhost:6379", loaded.Cache.RedisAddr)
	assert.Equal(t, cfg.Server, loaded.Server)
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  currency: EUR\n"), 0o600))

	cfg := config.Default()
	require.NoError(t, cfg.LoadFile(path))
	assert.Equal(t, "EUR", cfg.Display.Currency)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoadFile_Missing(t *testing.T) {
	err := config.Default().LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		config.EnvOutputFormat: "json",
		config.EnvCurrency:     "USD",
		config.EnvCacheBackend: "redis",
		config.EnvRedisAddr:    "cache:6379",
		config.EnvCacheTTL:     "60",
		config.EnvRateLimit:    "not-a-number",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := config.Default()
	cfg.ApplyEnv(lookup)

	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.Equal(t, "USD", cfg.Display.Currency)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, "cache:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, 60, cfg.Cache.TTLSeconds)
	assert.InDelta(t, 5.0, cfg.Server.RateLimitPerSecond, 1e-9, "unparsable value is ignored")
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SOLARFOCUS_TEST_DOTENV=loaded\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SOLARFOCUS_TEST_DOTENV") })

	require.NoError(t, config.LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "loaded", os.Getenv("SOLARFOCUS_TEST_DOTENV"))
}

func TestCheckVersion(t *testing.T) {
	assert.NoError(t, config.CheckVersion(""))
	assert.NoError(t, config.CheckVersion("1.0.0"))
	assert.NoError(t, config.CheckVersion("1.4.2"))
	assert.ErrorIs(t, config.CheckVersion("0.9.0"), config.ErrUnsupportedVersion)
	assert.ErrorIs(t, config.CheckVersion("2.0.0"), config.ErrUnsupportedVersion)
	assert.ErrorIs(t, config.CheckVersion("latest"), config.ErrUnsupportedVersion)
}

func TestGetSet(t *testing.T) {
	cfg := config.Default()

	require.NoError(t, cfg.Set("display.currency", "usd"))
	got, err := cfg.Get("display.currency")
	require.NoError(t, err)
	assert.Equal(t, "USD", got)

	require.NoError(t, cfg.Set("cache.ttl_seconds", "120"))
	assert.Equal(t, 120, cfg.Cache.TTLSeconds)

	require.Error(t, cfg.Set("cache.ttl_seconds", "soon"))

	_, err = cfg.Get("plugins.aws")
	require.ErrorIs(t, err, config.ErrUnknownKey)
	require.ErrorIs(t, cfg.Set("plugins.aws", "x"), config.ErrUnknownKey)

	assert.Contains(t, config.Keys(), "output.default_format")
	assert.IsIncreasing(t, config.Keys())
}

func TestHomeDir_Env(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SOLARFOCUS_HOME", dir)
	assert.Equal(t, dir, config.HomeDir())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), config.DefaultPath())
}

func TestLoggingConfig_ToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "debug", Format: "console"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, "stderr", got.Output)
	assert.Equal(t, "debug", got.Level)

	lc.File = "/tmp/solarfocus.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, "file", got.Output)
	assert.Equal(t, "/tmp/solarfocus.log", got.File)
}
