package cache

import (
	"context"
	"time"
)

// Cache is a key/value store of opaque (already serialised) values.
type Cache interface {
	// Get returns the value stored under key. The boolean is false on a miss;
	// a miss is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set unconditionally stores value under key for ttl.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// DeleteByPattern removes every key matching the glob pattern. The
	// operation is not atomic: keys written concurrently may survive.
	DeleteByPattern(ctx context.Context, pattern string) error
}

// StatsReporter is implemented by caches that keep operation counters.
type StatsReporter interface {
	Stats() StatsSnapshot
}

// StatsSnapshot is a point-in-time copy of the cache counters.
type StatsSnapshot struct {
	Hits      uint64  `json:"hits"`
	Misses    uint64  `json:"misses"`
	Sets      uint64  `json:"sets"`
	Deletes   uint64  `json:"deletes"`
	Errors    uint64  `json:"errors"`
	HitRate   float64 `json:"hitRate"`
	TotalGets uint64  `json:"totalGets"`
}
