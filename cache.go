package jieba

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// lookupCache is an optional bounded cache in front of Dictionary.Find,
// keyed by the substring being looked up. It is pure acceleration for
// embedders that call LookupTag/Find in a hot loop (e.g. a query-time POS
// tagging pass); a disabled cache (the zero value) just misses every time
// and the trie remains the single source of truth. Grounded in
// vthorsteinsson-GoSkrafl's use of github.com/hashicorp/golang-lru for a
// read-through cache in front of a dictionary structure.
type lookupCache struct {
	c *lru.Cache[string, *DictUnit]
}

// enable turns on caching with room for size entries. size <= 0
// leaves caching disabled.
func (lc *lookupCache) enable(size int) {
	if size <= 0 {
		lc.c = nil
		return
	}
	c, err := lru.New[string, *DictUnit](size)
	if err != nil {
		lc.c = nil
		return
	}
	lc.c = c
}

// get reports a cache hit; value may legitimately be nil (a cached miss).
func (lc *lookupCache) get(key string) (*DictUnit, bool) {
	if lc.c == nil {
		return nil, false
	}
	return lc.c.Get(key)
}

func (lc *lookupCache) put(key string, v *DictUnit) {
	if lc.c == nil {
		return
	}
	lc.c.Add(key, v)
}

// purge drops a single key, used after insert/delete invalidate it. The
// cache otherwise has no notion of dictionary generation, so a full
// Purge() is the safe fallback callers can reach for after bulk mutation.
func (lc *lookupCache) purge(key string) {
	if lc.c == nil {
		return
	}
	lc.c.Remove(key)
}

// Purge drops every cached entry, e.g. after a bulk LoadUserDict call.
func (lc *lookupCache) Purge() {
	if lc.c == nil {
		return
	}
	lc.c.Purge()
}
