package complete

import (
	"notemark/internal/marker"
	"notemark/internal/source"
)

// DefaultCacheCapacity bounds the completion cache.
const DefaultCacheCapacity = 50

type cacheKey struct {
	kind  marker.Kind
	query string
}

type cacheEntry struct {
	result []marker.Candidate
	anchor source.Span
}

// Cache memoizes ranked completion results keyed by (kind, query).
// Eviction is insertion-order FIFO, not true LRU: once the capacity is
// exceeded, the single oldest entry goes. The cache is session-scoped,
// owned exclusively by the Source, and explicitly clearable.
type Cache struct {
	capacity int
	entries  map[cacheKey]cacheEntry
	order    []cacheKey
}

// NewCache creates a cache with the given capacity; non-positive values
// fall back to DefaultCacheCapacity.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[cacheKey]cacheEntry, capacity),
		order:    make([]cacheKey, 0, capacity),
	}
}

// Get returns the cached ranked result if present and if the cached
// anchor still lines up with the current one. Buffers are re-created
// per snapshot, so consistency compares offsets, not file identity.
func (c *Cache) Get(kind marker.Kind, query string, anchor source.Span) ([]marker.Candidate, bool) {
	e, ok := c.entries[cacheKey{kind: kind, query: query}]
	if !ok {
		return nil, false
	}
	if e.anchor.Start != anchor.Start || e.anchor.End != anchor.End {
		return nil, false
	}
	return e.result, true
}

// Put stores a result, evicting the oldest entry past capacity.
func (c *Cache) Put(kind marker.Kind, query string, anchor source.Span, result []marker.Candidate) {
	key := cacheKey{kind: kind, query: query}
	if _, exists := c.entries[key]; !exists {
		if len(c.order) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = cacheEntry{result: result, anchor: anchor}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.entries = make(map[cacheKey]cacheEntry, c.capacity)
	c.order = c.order[:0]
}
