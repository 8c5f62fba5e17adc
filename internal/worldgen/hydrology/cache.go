package hydrology

import "sync"

// Key identifies one region-scoped network.
type Key struct {
	RX, RZ int64
	Size   int64
}

type cacheEntry struct {
	ready chan struct{}
	net   *Network
}

// Cache is an explicit, caller-owned store of generated networks. When full,
// the oldest completed entry is evicted (FIFO). Concurrent Gets for the same
// uncached key run the generator exactly once; every caller observes the
// same immutable network.
type Cache struct {
	mu      sync.Mutex
	max     int
	entries map[Key]*cacheEntry
	order   []Key
}

// NewCache builds a cache holding at most max networks. max <= 0 means
// unbounded.
func NewCache(max int) *Cache {
	return &Cache{
		max:     max,
		entries: map[Key]*cacheEntry{},
	}
}

// Get returns the cached network for k, running generate at most once per
// key across all concurrent callers.
func (c *Cache) Get(k Key, generate func() *Network) *Network {
	c.mu.Lock()
	if e, ok := c.entries[k]; ok {
		c.mu.Unlock()
		<-e.ready
		return e.net
	}
	e := &cacheEntry{ready: make(chan struct{})}
	c.entries[k] = e
	c.order = append(c.order, k)
	c.evictLocked()
	c.mu.Unlock()

	e.net = generate()
	close(e.ready)
	return e.net
}

// evictLocked drops the oldest completed entries until within bound.
// In-flight entries are skipped; their waiters hold the entry pointer, so
// dropping the map reference would strand the bound anyway.
func (c *Cache) evictLocked() {
	if c.max <= 0 {
		return
	}
	for len(c.entries) > c.max {
		idx := -1
		for i, k := range c.order {
			e, ok := c.entries[k]
			if !ok {
				idx = i // stale order entry, drop it
				break
			}
			select {
			case <-e.ready:
				delete(c.entries, k)
				idx = i
			default:
			}
			if idx >= 0 {
				break
			}
		}
		if idx < 0 {
			return // everything in flight; try again on a later Get
		}
		c.order = append(c.order[:idx], c.order[idx+1:]...)
	}
}

// Len reports how many networks are currently cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear empties the cache. Networks already handed out stay valid (they are
// immutable).
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = map[Key]*cacheEntry{}
	c.order = nil
}
