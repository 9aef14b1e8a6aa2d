// Package cache memoizes route resolutions in a bounded LRU.
//
// The cache is purely an optimization: a hit returns exactly what resolving
// again would return, as long as the route tree has not changed. Replacing the
// tree must be followed by InvalidateAll.
package cache

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/rohanthewiz/serr"
)

// Key identifies one resolution.
//
// Path resolutions only set CurrentPath. Named outlet resolutions also carry
// the parent entry (its node ID and consumed path) and the outlet name, since
// the same path resolves differently under each parent and outlet.
type Key struct {
	ParentID    int
	ParentPath  string
	CurrentPath string
	Outlet      string
	HasOutlet   bool
}

func (k Key) String() string {
	if !k.HasOutlet {
		return "/" + k.CurrentPath
	}
	return "/" + k.CurrentPath + " @" + strconv.Itoa(k.ParentID) + ":/" + k.ParentPath + " [" + k.Outlet + "]"
}

// Cache is a thread-safe LRU of resolutions with hit/miss accounting.
//
// All methods are safe on a nil *Cache, which behaves as a disabled cache:
// lookups miss without counting and GetOrResolve always resolves.
type Cache[V any] struct {
	mu       sync.Mutex
	lru      *simplelru.LRU[Key, V]
	capacity int
	gen      uint64 // bumped by InvalidateAll, guarded by mu

	hits          atomic.Uint64
	misses        atomic.Uint64
	evictions     atomic.Uint64
	invalidations atomic.Uint64
	size          atomic.Int64
}

// New creates a cache holding at most capacity entries.
func New[V any](capacity int) (*Cache[V], error) {
	if capacity < 1 {
		return nil, serr.New("cache capacity must be positive", "capacity", strconv.Itoa(capacity))
	}

	lru, err := simplelru.NewLRU[Key, V](capacity, nil)
	if err != nil {
		return nil, serr.Wrap(err, "capacity", strconv.Itoa(capacity))
	}

	return &Cache[V]{lru: lru, capacity: capacity}, nil
}

// Get returns a cached value and marks it most recently used.
func (c *Cache[V]) Get(key Key) (V, bool) {
	if c == nil {
		var zero V
		return zero, false
	}

	c.mu.Lock()
	v, ok := c.lru.Get(key)
	c.mu.Unlock()

	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Add stores a value, evicting the least recently used entry when full.
func (c *Cache[V]) Add(key Key, value V) {
	if c == nil {
		return
	}

	c.mu.Lock()
	c.add(key, value)
	c.mu.Unlock()
}

// add must be called with mu held.
func (c *Cache[V]) add(key Key, value V) {
	if c.lru.Add(key, value) {
		c.evictions.Add(1)
	}
	c.size.Store(int64(c.lru.Len()))
}

// GetOrResolve returns the cached value for key, or calls resolve and caches
// its result. resolve runs without the lock held, so concurrent misses on the
// same key may each resolve; the results are identical by construction.
//
// A result computed while InvalidateAll ran is returned but not stored, so a
// resolution against a replaced tree never outlives the invalidation.
func (c *Cache[V]) GetOrResolve(key Key, resolve func() V) V {
	if c == nil {
		return resolve()
	}

	c.mu.Lock()
	v, ok := c.lru.Get(key)
	gen := c.gen
	c.mu.Unlock()

	if ok {
		c.hits.Add(1)
		return v
	}
	c.misses.Add(1)

	v = resolve()

	c.mu.Lock()
	if c.gen == gen {
		c.add(key, v)
	}
	c.mu.Unlock()

	return v
}

// InvalidateAll drops every entry.
func (c *Cache[V]) InvalidateAll() {
	if c == nil {
		return
	}

	c.mu.Lock()
	c.lru.Purge()
	c.gen++
	c.size.Store(0)
	c.mu.Unlock()

	c.invalidations.Add(1)
}

// Contains reports whether key is cached without touching recency or counters.
func (c *Cache[V]) Contains(key Key) bool {
	if c == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Contains(key)
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	if c == nil {
		return 0
	}
	return int(c.size.Load())
}

func (c *Cache[V]) Capacity() int {
	if c == nil {
		return 0
	}
	return c.capacity
}

// Stats returns a snapshot of the counters.
func (c *Cache[V]) Stats() Stats {
	if c == nil {
		return Stats{}
	}

	return Stats{
		Hits:          c.hits.Load(),
		Misses:        c.misses.Load(),
		Evictions:     c.evictions.Load(),
		Invalidations: c.invalidations.Load(),
		Size:          int(c.size.Load()),
		Capacity:      c.capacity,
	}
}

// ResetStats zeroes the counters. Cached entries are kept.
func (c *Cache[V]) ResetStats() {
	if c == nil {
		return
	}

	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
	c.invalidations.Store(0)
}
