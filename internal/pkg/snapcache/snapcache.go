// Package snapcache provides a read-through snapshot cache for list views.
// A loaded snapshot is served to every reader until its key is invalidated;
// concurrent loads of the same key are coalesced into a single loader call.
package snapcache

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// LoadFunc produces a fresh snapshot for a key.
type LoadFunc func(ctx context.Context) (interface{}, error)

type cachedEntry struct {
	value interface{}
}

// Cache is a keyed snapshot cache. Each key carries a generation counter
// that is bumped on invalidation; a loader that was started before the
// bump may still hand its result to waiting callers, but the result is
// not stored, so a stale snapshot can never outlive an invalidation.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cachedEntry
	gens    map[string]uint64
	group   singleflight.Group
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]cachedEntry),
		gens:    make(map[string]uint64),
	}
}

// Get returns the cached snapshot for key, loading it with load on a miss.
// Concurrent callers for the same key share one loader invocation. Loader
// errors are returned to every waiting caller and nothing is cached.
func (c *Cache) Get(ctx context.Context, key string, load LoadFunc) (interface{}, error) {
	c.mu.Lock()
	if entry, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return entry.value, nil
	}
	gen := c.gens[key]
	c.gens[key] = gen // materialize the key so prefix invalidation sees in-flight loads
	c.mu.Unlock()

	value, err, _ := c.group.Do(key, func() (interface{}, error) {
		loaded, err := load(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.gens[key] == gen {
			c.entries[key] = cachedEntry{value: loaded}
		}
		c.mu.Unlock()

		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Invalidate drops the snapshot for key. The next Get for the key loads a
// fresh snapshot, and any load already in flight is prevented from storing
// its result.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.gens[key]++
	c.mu.Unlock()
	c.group.Forget(key)
}

// InvalidatePrefix invalidates every key that starts with prefix.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	var matched []string
	for key := range c.gens {
		if strings.HasPrefix(key, prefix) {
			matched = append(matched, key)
		}
	}
	for _, key := range matched {
		delete(c.entries, key)
		c.gens[key]++
	}
	c.mu.Unlock()

	for _, key := range matched {
		c.group.Forget(key)
	}
}

// Contains reports whether a snapshot is currently cached for key.
func (c *Cache) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Get loads a typed snapshot through cache c.
func Get[T any](ctx context.Context, c *Cache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	value, err := c.Get(ctx, key, func(ctx context.Context) (interface{}, error) {
		return load(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("snapcache: cached value for key %q has type %T", key, value)
	}
	return typed, nil
}
