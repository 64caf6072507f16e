package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/solarfocus/internal/config"
)

func TestEntry(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	entry := NewEntry("k", []byte("v"), now, time.Minute)

	assert.False(t, entry.IsExpiredAt(now))
	assert.False(t, entry.IsExpiredAt(now.Add(time.Minute)))
	assert.True(t, entry.IsExpiredAt(now.Add(time.Minute+time.Nanosecond)))
}

func TestKey(t *testing.T) {
	a := Key(300, 250)
	assert.Len(t, a, 64)
	assert.Equal(t, a, Key(300, 250), "keys are deterministic")
	assert.NotEqual(t, a, Key(250, 300), "argument order matters")
	assert.NotEqual(t, a, Key(300, 250.01))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(time.Minute)
	store.now = func() time.Time { return now }

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "a", []byte(`{"x":1}`)))
		got, err := store.Get(ctx, "a")
		require.NoError(t, err)
		assert.JSONEq(t, `{"x":1}`, string(got))
	})

	t.Run("SetCopiesData", func(t *testing.T) {
		buf := []byte("original")
		require.NoError(t, store.Set(ctx, "copy", buf))
		buf[0] = 'X'
		got, err := store.Get(ctx, "copy")
		require.NoError(t, err)
		assert.Equal(t, "original", string(got))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrCacheNotFound)
	})

	t.Run("EmptyKey", func(t *testing.T) {
		_, err := store.Get(ctx, "")
		require.ErrorIs(t, err, ErrInvalidCacheKey)
		require.ErrorIs(t, store.Set(ctx, "", nil), ErrInvalidCacheKey)
		require.ErrorIs(t, store.Delete(ctx, ""), ErrInvalidCacheKey)
	})

	t.Run("Expired", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "old", []byte("v")))
		now = now.Add(2 * time.Minute)
		_, err := store.Get(ctx, "old")
		require.ErrorIs(t, err, ErrCacheExpired)
		_, err = store.Get(ctx, "old")
		assert.ErrorIs(t, err, ErrCacheNotFound, "expired entries are dropped on access")
	})

	t.Run("CleanupExpired", func(t *testing.T) {
		require.NoError(t, store.Close())
		require.NoError(t, store.Set(ctx, "one", []byte("1")))
		require.NoError(t, store.Set(ctx, "two", []byte("2")))
		now = now.Add(2 * time.Minute)
		require.NoError(t, store.Set(ctx, "fresh", []byte("3")))

		assert.Equal(t, 2, store.CleanupExpired())
		assert.Equal(t, 1, store.Len())
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "gone", []byte("v")))
		require.NoError(t, store.Delete(ctx, "gone"))
		require.NoError(t, store.Delete(ctx, "gone"))
		_, err := store.Get(ctx, "gone")
		assert.ErrorIs(t, err, ErrCacheNotFound)
	})
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := Key(float64(i), 100)
			_ = store.Set(ctx, key, []byte("v"))
			_, _ = store.Get(ctx, key)
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, store.Len())
}

// fakeRedis records calls and returns canned results.
type fakeRedis struct {
	data   map[string]string
	ttl    time.Duration
	getErr error
	closed bool
}

func newFakeRedis() *fakeRedis { return &fakeRedis{data: map[string]string{}} }

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, exp time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	f.ttl = exp
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(f.data, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func (f *fakeRedis) Ping(_ context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (f *fakeRedis) Close() error {
	f.closed = true
	return nil
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	store := newRedisStore(client, "test:", 5*time.Minute)

	require.NoError(t, store.Set(ctx, "k", []byte("payload")))
	assert.Equal(t, "payload", client.data["test:k"], "keys are prefixed")
	assert.Equal(t, 5*time.Minute, client.ttl)

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))

	require.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Get(ctx, "k")
	require.ErrorIs(t, err, ErrCacheNotFound)

	client.getErr = errors.New("connection reset")
	_, err = store.Get(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheNotFound)

	_, err = store.Get(ctx, "")
	require.ErrorIs(t, err, ErrInvalidCacheKey)

	require.NoError(t, store.Close())
	assert.True(t, client.closed)
}

func TestNewRedisStore_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisStore(ctx, "127.0.0.1:1", time.Minute)
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, config.CacheConfig{Backend: config.CacheBackendNone})
	require.NoError(t, err)
	assert.Nil(t, store)

	store, err = Open(ctx, config.CacheConfig{Backend: config.CacheBackendMemory, TTLSeconds: 120})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	_, err = Open(ctx, config.CacheConfig{Backend: "memcached"})
	require.ErrorIs(t, err, config.ErrInvalidCacheBackend)

	_, err = Open(ctx, config.CacheConfig{Backend: config.CacheBackendMemory, TTLSeconds: 5})
	require.ErrorIs(t, err, ErrInvalidTTL)
}

func TestTTL(t *testing.T) {
	d, err := TTLFromSeconds(0)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, d)

	_, err = TTLFromSeconds(MaxTTLSeconds + 1)
	require.ErrorIs(t, err, ErrInvalidTTL)

	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "3600", want: 3600},
		{in: "30m", want: 1800},
		{in: "1h30m", want: 5400},
		{in: "10", wantErr: true},
		{in: "soon", wantErr: true},
		{in: "8d", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, parseErr := ParseTTL(tt.in)
			if tt.wantErr {
				assert.Error(t, parseErr)
				return
			}
			require.NoError(t, parseErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45s", FormatDuration(45*time.Second))
	assert.Equal(t, "30m", FormatDuration(30*time.Minute))
	assert.Equal(t, "1h", FormatDuration(time.Hour))
	assert.Equal(t, "1h30m", FormatDuration(90*time.Minute))
	assert.Equal(t, "2d", FormatDuration(48*time.Hour))
	assert.Equal(t, "1d3h", FormatDuration(27*time.Hour))
}
