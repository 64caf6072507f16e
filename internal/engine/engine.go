package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/rshade/solarfocus/internal/economics"
	"github.com/rshade/solarfocus/internal/engine/cache"
	"github.com/rshade/solarfocus/internal/greenops"
	"github.com/rshade/solarfocus/internal/logging"
)

// Engine validates inputs, runs the calculators and optionally caches the
// combined result. The zero value is not usable; call New.
type Engine struct {
	cache cache.Store
}

// Option configures an Engine.
type Option func(*Engine)

// WithCache stores estimates in s. A nil store disables caching.
func WithCache(s cache.Store) Option {
	return func(e *Engine) { e.cache = s }
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compute validates in and returns its Estimate without consulting any
// cache. It is a pure function of in.
func Compute(in Input) (*Estimate, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	econ := economics.Compute(in.ConsumptionKWh, in.Bill)
	impact := greenops.ComputeImpact(in.ConsumptionKWh)

	return &Estimate{
		Input:                   in,
		Economics:               econ,
		PaybackYears:            econ.PaybackYears(),
		Environmental:           impact,
		Equivalencies:           greenops.ImpactEquivalencies(impact),
		LifetimeEnergyOffsetKWh: economics.LifetimeEnergyOffsetKWh(in.ConsumptionKWh),
		Chart:                   NewComparisonChart(econ, in.Bill),
	}, nil
}

// Estimate returns the estimate for in, serving it from the cache when one
// is configured. Cache failures are logged and never fail the request.
func (e *Engine) Estimate(ctx context.Context, in Input) (*Estimate, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	if err := ValidateInput(in); err != nil {
		log.Debug().
			Ctx(ctx).
			Str("component", "engine").
			Err(err).
			Msg("rejected estimate input")
		return nil, err
	}

	key := cache.Key(in.ConsumptionKWh, in.Bill)
	if cached, ok := e.lookup(ctx, key); ok {
		cached.Input.Label = in.Label
		return cached, nil
	}

	est, err := Compute(in)
	if err != nil {
		return nil, err
	}

	e.store(ctx, key, est)

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Float64("consumption_kwh", in.ConsumptionKWh).
		Float64("bill", in.Bill).
		Str("payback_status", est.Economics.PaybackStatus.String()).
		Dur("duration", time.Since(start)).
		Msg("estimate computed")

	return est, nil
}

func (e *Engine) lookup(ctx context.Context, key string) (*Estimate, bool) {
	if e.cache == nil {
		return nil, false
	}
	log := logging.FromContext(ctx)

	data, err := e.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheNotFound) && !errors.Is(err, cache.ErrCacheExpired) {
			log.Warn().Ctx(ctx).Str("component", "engine").Err(err).Msg("cache read failed")
		}
		return nil, false
	}

	var est Estimate
	if err = json.Unmarshal(data, &est); err != nil {
		log.Warn().Ctx(ctx).Str("component", "engine").Err(err).Msg("discarding undecodable cache entry")
		_ = e.cache.Delete(ctx, key)
		return nil, false
	}
	est.Cached = true

	log.Debug().Ctx(ctx).Str("component", "engine").Str("cache_key", key).Msg("cache hit")
	return &est, true
}

func (e *Engine) store(ctx context.Context, key string, est *Estimate) {
	if e.cache == nil {
		return
	}
	data, err := json.Marshal(est)
	if err != nil {
		logging.FromContext(ctx).Warn().Ctx(ctx).Err(err).Msg("encoding estimate for cache")
		return
	}
	if err = e.cache.Set(ctx, key, data); err != nil {
		logging.FromContext(ctx).Warn().Ctx(ctx).Str("component", "engine").Err(err).Msg("cache write failed")
	}
}

// SweepCache drops expired entries from caches that keep them in memory and
// reports how many were removed and how many remain. It is a no-op for other
// backends.
func (e *Engine) SweepCache() (removed, remaining int) {
	sw, ok := e.cache.(cache.Sweeper)
	if !ok {
		return 0, 0
	}
	removed = sw.CleanupExpired()
	return removed, sw.Len()
}

// Close releases the cache, if any.
func (e *Engine) Close() error {
	if e.cache == nil {
		return nil
	}
	if err := e.cache.Close(); err != nil {
		return fmt.Errorf("closing cache: %w", err)
	}
	return nil
}
