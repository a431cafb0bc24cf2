// Package cache memoizes public content responses for a fixed lifetime.
// Staleness within the window is acceptable; unrelated fetches may race
// freely and the last writer wins.
package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultTTL is the staleness window for public content.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value    any
	fetched  time.Time
}

// Cache is a TTL-bounded memo keyed by request identity.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]entry
}

// New returns a cache with the given lifetime; ttl <= 0 means DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{ttl: ttl, now: time.Now, entries: make(map[string]entry)}
}

func (c *Cache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.fetched) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, fetched: c.now()}
}

// Invalidate drops one key, e.g. after an admin mutation of the same
// resource.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Through returns the cached value for key when it is still fresh,
// otherwise calls fetch and stores the result. Errors are never cached.
func Through[T any](ctx context.Context, c *Cache, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	if c != nil {
		if v, ok := c.get(key); ok {
			if typed, ok := v.(T); ok {
				return typed, nil
			}
		}
	}

	v, err := fetch(ctx)
	if err != nil {
		return v, err
	}
	if c != nil {
		c.put(key, v)
	}
	return v, nil
}
