// Package config loads solarfocus settings from a YAML file, an optional
// .env file and SOLARFOCUS_* environment variables, in increasing order of
// precedence. CLI flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the config schema version written by `config init`.
const CurrentVersion = "1.0.0"

// Output formats.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// Cache backends.
const (
	CacheBackendNone   = "none"
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

const outputTypeFile = "file"

// Config validation errors.
var (
	ErrInvalidOutputFormat = errors.New("output format must be table, json or ndjson")
	ErrInvalidLocale       = errors.New("locale must be en or pt-BR")
	ErrCurrencyRequired    = errors.New("display currency is required")
	ErrInvalidCacheBackend = errors.New("cache backend must be none, memory or redis")
	ErrRedisAddrRequired   = errors.New("redis address is required for the redis cache backend")
	ErrInvalidRateLimit    = errors.New("rate limit must be positive")
	ErrServerAddrRequired  = errors.New("server address is required")
)

// Config is the full solarfocus configuration.
type Config struct {
	Version string        `yaml:"version"`
	Output  OutputConfig  `yaml:"output"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Cache   CacheConfig   `yaml:"cache"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	// DefaultFormat is table, json or ndjson.
	DefaultFormat string `yaml:"default_format"`
	// Locale selects number separators: "en" or "pt-BR".
	Locale string `yaml:"locale"`
}

// DisplayConfig controls currency presentation. Amounts are never converted.
type DisplayConfig struct {
	// Currency is an ISO 4217 code, e.g. "BRL".
	Currency string `yaml:"currency"`
	// Symbol overrides the symbol derived from Currency.
	Symbol string `yaml:"symbol,omitempty"`
}

// ServerConfig controls `solarfocus serve`.
type ServerConfig struct {
	Addr               string   `yaml:"addr"`
	RateLimitPerSecond float64  `yaml:"rate_limit_per_second"`
	RateLimitBurst     int      `yaml:"rate_limit_burst"`
	AllowedOrigins     []string `yaml:"allowed_origins,omitempty"`
	ReadTimeoutSeconds int      `yaml:"read_timeout_seconds"`
}

// CacheConfig controls estimate caching.
type CacheConfig struct {
	Backend    string `yaml:"backend"`
	RedisAddr  string `yaml:"redis_addr,omitempty"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Locale:        "en",
		},
		Display: DisplayConfig{
			Currency: "BRL",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "json",
		},
		Server: ServerConfig{
			Addr:               ":8080",
			RateLimitPerSecond: 5,
			RateLimitBurst:     10,
			AllowedOrigins:     []string{"*"},
			ReadTimeoutSeconds: 15,
		},
		Cache: CacheConfig{
			Backend:    CacheBackendMemory,
			TTLSeconds: 3600,
		},
	}
}

// HomeDir returns the solarfocus directory: $SOLARFOCUS_HOME or ~/.solarfocus.
func HomeDir() string {
	if dir := os.Getenv("SOLARFOCUS_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".solarfocus"
	}
	return filepath.Join(home, ".solarfocus")
}

// DefaultPath returns the path of the global config file.
func DefaultPath() string {
	return filepath.Join(HomeDir(), "config.yaml")
}

// New builds the effective configuration: defaults, then the global config
// file, then a project overlay (.solarfocus.yaml in the working directory),
// then .env, then environment variables. Unreadable files are skipped.
func New() *Config {
	cfg := Default()

	if err := cfg.LoadFile(DefaultPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", err)
	}
	if _, err := os.Stat(ProjectOverlayFile); err == nil {
		if mergeErr := ShallowMergeYAML(cfg, ProjectOverlayFile); mergeErr != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: ignoring project config: %v\n", mergeErr)
		}
	}

	_ = LoadDotEnv()
	cfg.ApplyEnv(os.LookupEnv)
	return cfg
}

// LoadFile reads a YAML config file onto cfg. Keys missing from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Save writes cfg as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// Validate checks every section and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	if err := CheckVersion(c.Version); err != nil {
		errs = append(errs, err)
	}

	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON, FormatNDJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.DefaultFormat))
	}

	switch c.Output.Locale {
	case "en", "pt-BR":
	default:
		errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidLocale, c.Output.Locale))
	}

	if c.Display.Currency == "" {
		errs = append(errs, ErrCurrencyRequired)
	}

	if c.Server.Addr == "" {
		errs = append(errs, ErrServerAddrRequired)
	}
	if c.Server.RateLimitPerSecond <= 0 || c.Server.RateLimitBurst <= 0 {
		errs = append(errs, ErrInvalidRateLimit)
	}

	switch c.Cache.Backend {
	case CacheBackendNone, CacheBackendMemory:
	case CacheBackendRedis:
		if c.Cache.RedisAddr == "" {
			errs = append(errs, ErrRedisAddrRequired)
		}
	default:
		errs = append(errs, fmt.Errorf("%w: got %q", ErrInvalidCacheBackend, c.Cache.Backend))
	}

	return errors.Join(errs...)
}

//nolint:gochecknoglobals // Process-wide config shared by CLI commands.
var (
	globalConfig   *Config
	globalConfigMu sync.RWMutex
)

// GetGlobalConfig returns the process-wide config, loading it on first use.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	cfg := globalConfig
	globalConfigMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if globalConfig == nil {
		globalConfig = New()
	}
	return globalConfig
}

// SetGlobalConfig replaces the process-wide config. Passing nil forces a
// reload on next access.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// GetDefaultOutputFormat returns the configured default output format.
func GetDefaultOutputFormat() string {
	return GetGlobalConfig().Output.DefaultFormat
}
