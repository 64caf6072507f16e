package cache

import "time"

// Entry is a single cached value with TTL metadata.
type Entry struct {
	// Key is the cache key (see Key).
	Key string

	// Data is the cached payload, typically an encoded estimate.
	Data []byte

	// CreatedAt is when the entry was stored.
	CreatedAt time.Time

	// ExpiresAt is when the entry stops being served.
	ExpiresAt time.Time
}

// NewEntry creates an entry stored at now that lives for ttl.
func NewEntry(key string, data []byte, now time.Time, ttl time.Duration) *Entry {
	return &Entry{
		Key:       key,
		Data:      data,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpiredAt reports whether the entry has expired at t.
func (e *Entry) IsExpiredAt(t time.Time) bool {
	return t.After(e.ExpiresAt)
}
