package batch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessor_Process(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	t.Run("Sequential", func(t *testing.T) {
		p, err := NewProcessor[int](10)
		require.NoError(t, err)

		var offsets []int
		var processed int
		callback := func(_ context.Context, batch []int, offset int) error {
			offsets = append(offsets, offset)
			processed += len(batch)
			return nil
		}

		require.NoError(t, p.Process(context.Background(), items, callback))
		assert.Equal(t, 25, processed)
		assert.Equal(t, []int{0, 10, 20}, offsets)
	})

	t.Run("Concurrent", func(t *testing.T) {
		p, err := NewProcessor[int](5)
		require.NoError(t, err)

		var processed int32
		var inFlight, peak int32
		callback := func(_ context.Context, batch []int, _ int) error {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				old := atomic.LoadInt32(&peak)
				if n <= old || atomic.CompareAndSwapInt32(&peak, old, n) {
					break
				}
			}
			atomic.AddInt32(&processed, int32(len(batch)))
			atomic.AddInt32(&inFlight, -1)
			return nil
		}

		require.NoError(t, p.ProcessConcurrent(context.Background(), items, callback, 2))
		assert.Equal(t, int32(25), processed)
		assert.LessOrEqual(t, peak, int32(2))
	})

	t.Run("ErrorHandling", func(t *testing.T) {
		p, err := NewProcessor[int](10)
		require.NoError(t, err)
		callback := func(_ context.Context, _ []int, offset int) error {
			if offset == 10 {
				return errors.New("fail")
			}
			return nil
		}

		err = p.Process(context.Background(), items, callback)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "batch 1 failed")
	})

	t.Run("EmptyItems", func(t *testing.T) {
		p, _ := NewProcessor[int](DefaultBatchSize)
		assert.ErrorIs(t, p.Process(context.Background(), nil, nil), ErrEmptyItems)
	})

	t.Run("NilCallback", func(t *testing.T) {
		p, _ := NewProcessor[int](DefaultBatchSize)
		assert.ErrorIs(t, p.Process(context.Background(), items, nil), ErrNilCallback)
	})

	t.Run("InvalidBatchSize", func(t *testing.T) {
		_, err := NewProcessor[int](0)
		require.ErrorIs(t, err, ErrInvalidBatchSize)
		_, err = NewProcessor[int](2000)
		require.ErrorIs(t, err, ErrInvalidBatchSize)
	})

	t.Run("Cancelled", func(t *testing.T) {
		p, _ := NewProcessor[int](5)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := p.Process(ctx, items, func(context.Context, []int, int) error { return nil })
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Progress", func(t *testing.T) {
		p, _ := NewProcessor[int](10)
		var mu sync.Mutex
		var last ProgressSnapshot
		p.WithProgressCallback(func(s ProgressSnapshot) {
			mu.Lock()
			defer mu.Unlock()
			if s.ProcessedItems > last.ProcessedItems {
				last = s
			}
		})

		require.NoError(t, p.ProcessConcurrent(context.Background(), items,
			func(context.Context, []int, int) error { return nil }, 3))
		assert.True(t, last.IsComplete())
		assert.Equal(t, 3, last.ProcessedBatches)
		assert.InDelta(t, 100.0, last.PercentComplete, 1e-9)
	})
}

func TestCalculateBatches(t *testing.T) {
	p, _ := NewProcessor[int](10)
	assert.Equal(t, [][2]int{{0, 10}, {10, 20}, {20, 25}}, p.CalculateBatches(25))
	assert.Equal(t, [][2]int{{0, 10}}, p.CalculateBatches(10))
	assert.Empty(t, p.CalculateBatches(0))
	assert.Equal(t, 10, p.BatchSize())
}
