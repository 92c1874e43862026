package rag

import "sync"

// queryCache memoizes query results keyed by an exact-match digest of the
// query text; queries differing by even whitespace are distinct entries.
// Entries never expire on their own; the only invalidation is a wholesale
// clear, which owners must perform after the corpus changes.
type queryCache struct {
	mu      sync.RWMutex
	entries map[string][]Result
}

func newQueryCache() *queryCache {
	return &queryCache{entries: make(map[string][]Result)}
}

func (c *queryCache) get(key string) ([]Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[key]
	return res, ok
}

func (c *queryCache) put(key string, res []Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = res
}

func (c *queryCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]Result)
}
