package batch

import (
	"context"
	"fmt"

	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/logging"
)

// Result is the outcome for one household. Exactly one of Estimate and Err
// is set.
type Result struct {
	Row      int              `json:"row"`
	Label    string           `json:"label,omitempty"`
	Estimate *engine.Estimate `json:"estimate,omitempty"`
	Err      error            `json:"-"`

	// Error is Err's message, for JSON output.
	Error string `json:"error,omitempty"`
}

// Options configures Run.
type Options struct {
	// BatchSize defaults to DefaultBatchSize.
	BatchSize int

	// Concurrency bounds the batches estimated at once. Zero selects
	// runtime.NumCPU(); one estimates the batches in order.
	Concurrency int

	// OnProgress is called after each batch.
	OnProgress ProgressCallback
}

// Estimator is the engine method Run depends on.
type Estimator interface {
	Estimate(ctx context.Context, in engine.Input) (*engine.Estimate, error)
}

// Run estimates every household. Results are returned in input order.
// Per-household failures are recorded in the Result; the returned error is
// reserved for cancellation and invalid options.
func Run(ctx context.Context, est Estimator, households []Household, opts Options) ([]Result, error) {
	size := opts.BatchSize
	if size == 0 {
		size = DefaultBatchSize
	}
	proc, err := NewProcessor[Household](size)
	if err != nil {
		return nil, err
	}
	proc.WithProgressCallback(opts.OnProgress)

	log := logging.FromContext(ctx)
	results := make([]Result, len(households))

	estimateBatch := func(ctx context.Context, batch []Household, offset int) error {
		for i, h := range batch {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			results[offset+i] = estimateOne(ctx, est, h)
		}
		return nil
	}
	if opts.Concurrency == 1 {
		err = proc.Process(ctx, households, estimateBatch)
	} else {
		err = proc.ProcessConcurrent(ctx, households, estimateBatch, opts.Concurrency)
	}
	if err != nil {
		return nil, fmt.Errorf("batch estimation: %w", err)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	log.Info().
		Ctx(ctx).
		Str("component", "batch").
		Int("households", len(households)).
		Int("batch_size", proc.BatchSize()).
		Int("failed", failed).
		Msg("batch estimation complete")

	return results, nil
}

func estimateOne(ctx context.Context, est Estimator, h Household) Result {
	r := Result{Row: h.Row, Label: h.Input.Label}
	if h.Err != nil {
		r.Err = fmt.Errorf("%s: %w", formatRowRef(h), h.Err)
		r.Error = r.Err.Error()
		return r
	}

	e, err := est.Estimate(ctx, h.Input)
	if err != nil {
		r.Err = fmt.Errorf("%s: %w", formatRowRef(h), err)
		r.Error = r.Err.Error()
		return r
	}
	r.Estimate = e
	return r
}
