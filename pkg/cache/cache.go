// Package cache stores computed layouts and rendered artifacts between runs.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance, for teams running orgchart in CI
//   - [MemoryCache]: a bounded in-process LRU, used as the pipeline memo
//   - [NullCache]: stores nothing (--no-cache)
//
// # Keys
//
// Entries are content-addressed. A [Keyer] derives keys from the SHA-256 of
// the normalized roster plus every option that changes the output, so a
// stale entry is never returned for different input; it simply stops being
// asked for and expires.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Clear removes every entry owned by this cache.
	Clear(ctx context.Context) error
	Close() error
}

// Default lifetimes.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 30 * 24 * time.Hour
)
