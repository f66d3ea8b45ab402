package jieba

import (
	"github.com/tchap/go-patricia/v2/patricia"
)

// PrefixContainer is the associative prefix container of spec §4.2: exact
// lookup plus enumeration of every stored key that is a prefix of a query.
// Backed by a patricia trie (github.com/tchap/go-patricia) rather than a
// hand-rolled double-array trie — per spec §9 "Trie variant", the public
// prefix-search utility is treated as a black box and "any equivalent
// structure suffices". This is a different container from the Dictionary
// trie in dict.go, which needs per-node entry pointers the patricia trie
// does not expose.
type PrefixContainer struct {
	trie *patricia.Trie
}

// PrefixHit is one result from CommonPrefixSearch: a key of the given byte
// length that prefixes the query, with its associated value.
type PrefixHit struct {
	Length int
	Value  interface{}
}

// nilItem stands in for a nil value inside the patricia trie, which treats a
// nil item as "no key stored here".
type nilItem struct{}

func toItem(v interface{}) patricia.Item {
	if v == nil {
		return nilItem{}
	}
	return v
}

func fromItem(item patricia.Item) interface{} {
	if _, ok := item.(nilItem); ok {
		return nil
	}
	return item
}

// NewPrefixContainer builds a container from keys and their parallel values.
// If values is nil, every key is stored with a nil value (membership-only use).
func NewPrefixContainer(keys [][]byte, values []interface{}) *PrefixContainer {
	t := patricia.NewTrie()
	for i, k := range keys {
		var v interface{}
		if values != nil {
			v = values[i]
		}
		t.Insert(patricia.Prefix(k), toItem(v))
	}
	return &PrefixContainer{trie: t}
}

// ExactLookup returns the value stored for key, if any.
func (c *PrefixContainer) ExactLookup(key []byte) (interface{}, bool) {
	v := c.trie.Get(patricia.Prefix(key))
	if v == nil {
		return nil, false
	}
	return fromItem(v), true
}

// CommonPrefixSearch returns every stored key that is a byte-prefix of
// query, up to max results (0 means unlimited). Order is ascending by
// match length, matching the patricia trie's top-down walk.
func (c *PrefixContainer) CommonPrefixSearch(query []byte, max int) []PrefixHit {
	var hits []PrefixHit
	_ = c.trie.VisitPrefixes(patricia.Prefix(query), func(prefix patricia.Prefix, item patricia.Item) error {
		hits = append(hits, PrefixHit{Length: len(prefix), Value: fromItem(item)})
		if max > 0 && len(hits) >= max {
			return errStopVisit
		}
		return nil
	})
	return hits
}

var errStopVisit = stopVisit{}

type stopVisit struct{}

func (stopVisit) Error() string { return "stop" }

// PrefixSearch returns the longest stored key that prefixes query. On no
// match it returns (0, nil, false) — callers consume nothing (§4.2).
func (c *PrefixContainer) PrefixSearch(query []byte) (length int, value interface{}, found bool) {
	hits := c.CommonPrefixSearch(query, 0)
	if len(hits) == 0 {
		return 0, nil, false
	}
	best := hits[len(hits)-1]
	for _, h := range hits {
		if h.Length > best.Length {
			best = h
		}
	}
	return best.Length, best.Value, true
}

// PrefixMatch returns the longest stored key that prefixes query. On no
// match it consumes one code point, returning that rune's byte length so
// the caller can advance past it (§4.2).
func (c *PrefixContainer) PrefixMatch(query []byte) (length int, value interface{}, found bool) {
	length, value, found = c.PrefixSearch(query)
	if found {
		return length, value, true
	}
	_, n, ok := decodeRuneAt(query, 0)
	if !ok {
		return 0, nil, false
	}
	return n, nil, false
}
