package extract

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// result is a cached extraction outcome. domain is an owned copy; cached
// values outlive the line buffer the hostname was sliced from.
type result struct {
	domain string
	ok     bool
}

// Cached memoizes an inner Extractor with an LRU keyed by hostname.
// It tracks hits, misses, and evictions. Worthwhile only when the input
// repeats hostnames; each lookup copies the hostname into a string key.
type Cached struct {
	inner     Extractor
	lru       *lru.Cache[string, result]
	hits      uint64
	misses    uint64
	evictions uint64
}

// NewCached wraps inner with an LRU of the given size. Size <= 0 returns
// inner unchanged (no caching layer).
func NewCached(inner Extractor, size int) (Extractor, error) {
	if size <= 0 {
		return inner, nil
	}
	c := &Cached{inner: inner}
	cache, err := lru.NewWithEvict(size, func(string, result) {
		atomic.AddUint64(&c.evictions, 1)
	})
	if err != nil {
		return nil, err
	}
	c.lru = cache
	return c, nil
}

// Domain returns the memoized extraction for host, consulting the inner
// extractor on a miss.
func (c *Cached) Domain(host []byte) ([]byte, bool) {
	if r, ok := c.lru.Get(string(host)); ok {
		atomic.AddUint64(&c.hits, 1)
		if !r.ok {
			return nil, false
		}
		return []byte(r.domain), true
	}
	atomic.AddUint64(&c.misses, 1)

	domain, ok := c.inner.Domain(host)
	r := result{ok: ok}
	if ok {
		r.domain = string(domain)
	}
	c.lru.Add(string(host), r)
	if !ok {
		return nil, false
	}
	return domain, true
}

// Stats returns cumulative hit/miss/eviction counters.
func (c *Cached) Stats() (hits, misses, evictions uint64) {
	return atomic.LoadUint64(&c.hits), atomic.LoadUint64(&c.misses), atomic.LoadUint64(&c.evictions)
}
