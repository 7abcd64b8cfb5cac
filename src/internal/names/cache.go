package names

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is used by NewCached when size is not positive.
const DefaultCacheSize = 1024

type cacheKey struct {
	name      string
	honorific bool
}

// CachedSplitter memoizes Split results in a bounded LRU. Useful for batch
// input where the same names repeat. Safe for concurrent use.
type CachedSplitter struct {
	splitter *Splitter
	cache    *lru.Cache[cacheKey, Result]
}

// NewCached wraps s (or the default splitter when nil) with an LRU of size entries.
func NewCached(s *Splitter, size int) (*CachedSplitter, error) {
	if s == nil {
		s = std
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, Result](size)
	if err != nil {
		return nil, err
	}
	return &CachedSplitter{splitter: s, cache: cache}, nil
}

// Split returns the cached result for the normalized name, computing it on a miss.
func (c *CachedSplitter) Split(name string, wantHonorific bool) Result {
	key := cacheKey{name: Normalize(name), honorific: wantHonorific}
	if r, ok := c.cache.Get(key); ok {
		return r
	}
	r := c.splitter.Split(key.name, wantHonorific)
	c.cache.Add(key, r)
	return r
}

// Len returns the number of cached names.
func (c *CachedSplitter) Len() int { return c.cache.Len() }
