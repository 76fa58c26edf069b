package vahan

import (
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// DefaultCacheTTL is how long a fetched detail page is reused before
// the upstream is contacted again.
const DefaultCacheTTL = 5 * time.Minute

type cacheEntry struct {
	html    string
	fetched time.Time
}

// Cache is a per-process TTL cache of fetched detail pages, keyed by
// a hash of the canonicalized RC number. A nil Cache or a TTL <= 0
// disables caching: Get always misses, Put is a no-op.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[uint64]cacheEntry
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithCacheClock sets the time source used for freshness checks.
// Defaults to time.Now.
func WithCacheClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		c.now = now
	}
}

// NewCache creates a Cache with the given TTL. A TTL <= 0 returns a
// disabled cache.
func NewCache(ttl time.Duration, opts ...CacheOption) *Cache {
	c := &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[uint64]cacheEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached page for rc if it is still fresh.
func (c *Cache) Get(rc string) (string, bool) {
	if c == nil || c.ttl <= 0 {
		return "", false
	}
	key := cacheKey(rc)

	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return "", false
	}
	if c.now().Sub(e.fetched) >= c.ttl {
		delete(c.entries, key)
		return "", false
	}
	return e.html, true
}

// Put stores the fetched page for rc.
func (c *Cache) Put(rc, html string) {
	if c == nil || c.ttl <= 0 {
		return
	}
	key := cacheKey(rc)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{html: html, fetched: c.now()}
}

// Len returns the number of stored entries, fresh or not.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func cacheKey(rc string) uint64 {
	return xxhash.Sum64String(CanonicalRC(rc))
}
