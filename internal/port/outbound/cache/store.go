package cache

import (
	"context"
	"time"
)

// Store is a generic key/value cache with optional index sets.
//
// The cache is an availability layer, not a system of record: every
// implementation must absorb transport failures internally (log and
// degrade to a miss or a no-op) rather than surface them. Callers
// therefore get no error returns and never branch on cache health.
type Store interface {
	// Set stores value under key with the given TTL and adds the key
	// to each of the named index sets.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration, indexes ...string)

	// Get retrieves the value under key. The second return is false
	// on a miss or when the cache is unavailable.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Delete removes key, its value, and its membership in every
	// index set it was added to.
	Delete(ctx context.Context, keys ...string)

	// GetIndex returns the values of every live key in the union of
	// the named index sets. Expired members are pruned as a side
	// effect. The second return is false when the union is empty or
	// the cache is unavailable.
	GetIndex(ctx context.Context, indexes ...string) ([][]byte, bool)

	// DeleteIndexGroup removes every key in the named index sets
	// along with the sets themselves.
	DeleteIndexGroup(ctx context.Context, indexes ...string)
}
