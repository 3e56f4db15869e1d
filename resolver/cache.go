package resolver

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/dhamidi/jtype/typeexpr"
)

type cacheEntry struct {
	handle typeexpr.Handle
	err    error
}

// Cache memoizes another resolver, including its failures. Concurrent
// lookups of the same name call the underlying resolver once.
type Cache struct {
	next  typeexpr.Resolver
	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func NewCache(next typeexpr.Resolver) *Cache {
	return &Cache{
		next:    next,
		entries: make(map[string]cacheEntry),
	}
}

func (c *Cache) Resolve(name string) (typeexpr.Handle, error) {
	c.mu.RLock()
	e, ok := c.entries[name]
	c.mu.RUnlock()
	if ok {
		return e.handle, e.err
	}

	v, _, _ := c.group.Do(name, func() (any, error) {
		c.mu.RLock()
		cached, ok := c.entries[name]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		h, err := c.next.Resolve(name)
		entry := cacheEntry{handle: h, err: err}
		c.mu.Lock()
		c.entries[name] = entry
		c.mu.Unlock()
		return entry, nil
	})
	e = v.(cacheEntry)
	return e.handle, e.err
}

// Len returns the number of cached names, hits and misses alike.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reset drops every cached result.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
