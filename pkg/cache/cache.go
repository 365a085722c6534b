// Package cache wraps an expiring in-memory cache behind a get-or-fetch
// contract. It is used for slow-changing reference reads from the registry
// (type catalogs, site/location maps); asset and device reads are never
// cached because the lifecycle workflows mutate them.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ReadCache is a TTL read-through cache. Entries expire on their own TTL
// or are dropped all at once by Flush; mutating endpoints do not
// invalidate entries.
type ReadCache struct {
	backing *gocache.Cache
}

// New creates an empty read cache.
func New() *ReadCache {
	return &ReadCache{
		backing: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

// GetOrFetch returns the cached value for key, or calls fetch and caches
// its result for ttl. A fetch error is returned as-is and nothing is
// cached, so the next call retries upstream.
func (rc *ReadCache) GetOrFetch(key string, ttl time.Duration, fetch func() (interface{}, error)) (interface{}, error) {
	if value, ok := rc.backing.Get(key); ok {
		return value, nil
	}

	value, err := fetch()
	if err != nil {
		return nil, err
	}

	rc.backing.Set(key, value, ttl)

	return value, nil
}

// Invalidate drops a single key.
func (rc *ReadCache) Invalidate(key string) {
	rc.backing.Delete(key)
}

// Flush drops every cached entry.
func (rc *ReadCache) Flush() {
	rc.backing.Flush()
}
