package cache

import (
	"context"
	"fmt"

	"github.com/rshade/solarfocus/internal/config"
)

// Open builds the Store selected by cfg. It returns a nil Store when the
// backend is "none".
func Open(ctx context.Context, cfg config.CacheConfig) (Store, error) {
	ttl, err := TTLFromSeconds(cfg.TTLSeconds)
	if err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case config.CacheBackendNone:
		return nil, nil //nolint:nilnil // A nil Store disables caching.
	case config.CacheBackendMemory, "":
		return NewMemoryStore(ttl), nil
	case config.CacheBackendRedis:
		return NewRedisStore(ctx, cfg.RedisAddr, ttl)
	default:
		return nil, fmt.Errorf("%w: got %q", config.ErrInvalidCacheBackend, cfg.Backend)
	}
}
