package config

import (
	"errors"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables recognised by ApplyEnv.
const (
	EnvOutputFormat = "SOLARFOCUS_OUTPUT_FORMAT"
	EnvLocale       = "SOLARFOCUS_LOCALE"
	EnvCurrency     = "SOLARFOCUS_CURRENCY"
	EnvLogLevel     = "SOLARFOCUS_LOG_LEVEL"
	EnvLogFormat    = "SOLARFOCUS_LOG_FORMAT"
	EnvLogFile      = "SOLARFOCUS_LOG_FILE"
	EnvServerAddr   = "SOLARFOCUS_SERVER_ADDR"
	EnvRateLimit    = "SOLARFOCUS_RATE_LIMIT"
	EnvCacheBackend = "SOLARFOCUS_CACHE_BACKEND"
	EnvRedisAddr    = "SOLARFOCUS_REDIS_ADDR"
	EnvCacheTTL     = "SOLARFOCUS_CACHE_TTL"
)

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. Missing files are not errors.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var errs []error
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ApplyEnv overrides config values from environment variables. Values that
// fail to parse are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str(EnvOutputFormat, &c.Output.DefaultFormat)
	str(EnvLocale, &c.Output.Locale)
	str(EnvCurrency, &c.Display.Currency)
	str(EnvLogLevel, &c.Logging.Level)
	str(EnvLogFormat, &c.Logging.Format)
	str(EnvLogFile, &c.Logging.File)
	str(EnvServerAddr, &c.Server.Addr)
	str(EnvCacheBackend, &c.Cache.Backend)
	str(EnvRedisAddr, &c.Cache.RedisAddr)

	if v, ok := lookup(EnvRateLimit); ok {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			c.Server.RateLimitPerSecond = rate
		}
	}
	if v, ok := lookup(EnvCacheTTL); ok {
		if ttl, err := strconv.Atoi(v); err == nil {
			c.Cache.TTLSeconds = ttl
		}
	}
}
