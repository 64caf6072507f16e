package cache

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Common cache errors.
var (
	ErrCacheNotFound   = errors.New("cache entry not found")
	ErrCacheExpired    = errors.New("cache entry expired")
	ErrInvalidCacheKey = errors.New("cache key cannot be empty")
)

// Store is a key/value cache with backend-defined expiration.
// Implementations are safe for concurrent use.
type Store interface {
	// Get returns the payload for key, or ErrCacheNotFound / ErrCacheExpired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores data under key, overwriting any existing entry.
	Set(ctx context.Context, key string, data []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Sweeper is implemented by stores that keep expired entries until they are
// swept. Stores whose backend expires keys itself, like Redis, do not
// implement it.
type Sweeper interface {
	// CleanupExpired removes every expired entry and returns how many were
	// dropped.
	CleanupExpired() int

	// Len returns the number of stored entries.
	Len() int
}

// MemoryStore is an in-process Store with per-entry TTL.
type MemoryStore struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewMemoryStore creates an empty in-memory store whose entries live for ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*Entry),
	}
}

// Get retrieves a cached payload. Expired entries are removed on access.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidCacheKey
	}

	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrCacheNotFound
	}

	if entry.IsExpiredAt(s.now()) {
		s.mu.Lock()
		if current, still := s.entries[key]; still && current == entry {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, ErrCacheExpired
	}

	return entry.Data, nil
}

// Set stores a copy of data under key.
func (s *MemoryStore) Set(_ context.Context, key string, data []byte) error {
	if key == "" {
		return ErrInvalidCacheKey
	}

	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = NewEntry(key, buf, s.now(), s.ttl)
	return nil
}

// Delete removes key. Returns nil if the entry doesn't exist.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrInvalidCacheKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

// CleanupExpired removes every expired entry and returns how many were
// dropped.
func (s *MemoryStore) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, entry := range s.entries {
		if entry.IsExpiredAt(now) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, including expired ones not yet
// cleaned up.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close drops all entries.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*Entry)
	return nil
}
