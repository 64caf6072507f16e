package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrUnknownKey is returned by Get and Set for keys not in Keys().
var ErrUnknownKey = errors.New("unknown config key")

type field struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

//nolint:gochecknoglobals // Static table of dotted config keys.
var fields = map[string]field{
	"version": {
		get: func(c *Config) string { return c.Version },
		set: func(c *Config, v string) error { c.Version = v; return nil },
	},
	"output.default_format": {
		get: func(c *Config) string { return c.Output.DefaultFormat },
		set: func(c *Config, v string) error { c.Output.DefaultFormat = v; return nil },
	},
	"output.locale": {
		get: func(c *Config) string { return c.Output.Locale },
		set: func(c *Config, v string) error { c.Output.Locale = v; return nil },
	},
	"display.currency": {
		get: func(c *Config) string { return c.Display.Currency },
		set: func(c *Config, v string) error { c.Display.Currency = strings.ToUpper(v); return nil },
	},
	"display.symbol": {
		get: func(c *Config) string { return c.Display.Symbol },
		set: func(c *Config, v string) error { c.Display.Symbol = v; return nil },
	},
	"logging.level": {
		get: func(c *Config) string { return c.Logging.Level },
		set: func(c *Config, v string) error { c.Logging.Level = v; return nil },
	},
	"logging.format": {
		get: func(c *Config) string { return c.Logging.Format },
		set: func(c *Config, v string) error { c.Logging.Format = v; return nil },
	},
	"logging.file": {
		get: func(c *Config) string { return c.Logging.File },
		set: func(c *Config, v string) error { c.Logging.File = v; return nil },
	},
	"server.addr": {
		get: func(c *Config) string { return c.Server.Addr },
		set: func(c *Config, v string) error { c.Server.Addr = v; return nil },
	},
	"server.rate_limit_per_second": {
		get: func(c *Config) string { return strconv.FormatFloat(c.Server.RateLimitPerSecond, 'f', -1, 64) },
		set: func(c *Config, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return err
			}
			c.Server.RateLimitPerSecond = f
			return nil
		},
	},
	"server.rate_limit_burst": {
		get: func(c *Config) string { return strconv.Itoa(c.Server.RateLimitBurst) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			c.Server.RateLimitBurst = n
			return nil
		},
	},
	"cache.backend": {
		get: func(c *Config) string { return c.Cache.Backend },
		set: func(c *Config, v string) error { c.Cache.Backend = v; return nil },
	},
	"cache.redis_addr": {
		get: func(c *Config) string { return c.Cache.RedisAddr },
		set: func(c *Config, v string) error { c.Cache.RedisAddr = v; return nil },
	},
	"cache.ttl_seconds": {
		get: func(c *Config) string { return strconv.Itoa(c.Cache.TTLSeconds) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			c.Cache.TTLSeconds = n
			return nil
		},
	},
}

// Keys returns every dotted key accepted by Get and Set, sorted.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key such as "output.default_format".
func (c *Config) Get(key string) (string, error) {
	f, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return f.get(c), nil
}

// Set assigns a dotted key from its string form.
func (c *Config) Set(key, value string) error {
	f, ok := fields[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	if err := f.set(c, value); err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", value, key, err)
	}
	return nil
}
