package preview

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/filecatalog/internal/metrics"
)

// Cache holds decoded previews with least-recently-used eviction. Get
// counts as a use; Put of a present key replaces the entry and refreshes
// it.
type Cache struct {
	lru      *lru.Cache[Key, *Entry]
	purging  bool
	capacity int
}

// NewCache creates a cache holding at most capacity entries. Capacities
// below one are raised to one.
func NewCache(capacity int) *Cache {
	if capacity < 1 {
		capacity = 1
	}
	c := &Cache{capacity: capacity}
	// NewWithEvict only fails for a non-positive size.
	c.lru, _ = lru.NewWithEvict[Key, *Entry](capacity, c.onEvict)
	return c
}

func (c *Cache) onEvict(Key, *Entry) {
	if !c.purging {
		metrics.PreviewCacheEvictions.Inc()
	}
}

// Capacity returns the maximum number of entries.
func (c *Cache) Capacity() int { return c.capacity }

// Get returns the entry for key and marks it most recently used.
func (c *Cache) Get(key Key) (*Entry, bool) {
	e, ok := c.lru.Get(key)
	if ok {
		metrics.PreviewCacheHits.Inc()
	} else {
		metrics.PreviewCacheMisses.Inc()
	}
	return e, ok
}

// Put stores e under key, evicting the least recently used entry when
// full.
func (c *Cache) Put(key Key, e *Entry) {
	before := c.lru.Len()
	c.lru.Add(key, e)
	metrics.PreviewCacheEntries.Add(float64(c.lru.Len() - before))
}

// Clear drops every entry.
func (c *Cache) Clear() {
	n := c.lru.Len()
	c.purging = true
	c.lru.Purge()
	c.purging = false
	metrics.PreviewCacheEntries.Sub(float64(n))
}

// Len returns the number of cached entries.
func (c *Cache) Len() int { return c.lru.Len() }

// Keys returns the cached keys, least recently used first.
func (c *Cache) Keys() []Key { return c.lru.Keys() }
