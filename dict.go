package jieba

import (
	"math"
	"sort"
	"sync"

	"golang.org/x/exp/slices"
)

// MaxWordRuneLength bounds how far the dictionary trie walks when building
// a DAG entry list, per spec §3 ("DAG") default of 512.
const MaxWordRuneLength = 512

// minWeightFallback is used before a base dictionary has been loaded, and
// mirrors the teacher's minFloat / the original's MIN_DOUBLE sentinel.
const minWeightFallback = -3.14e100

// DictUnit is the immutable dictionary entry of spec §3: a word (as runes),
// its log-probability weight, and an optional POS tag. Entries live in an
// append-only arena (dict.entries); trie leaves reference them by index,
// never by pointer, so the arena can grow without invalidating leaves
// (spec §9 "Node ownership").
type DictUnit struct {
	Word   []rune
	Weight float64
	Tag    string
}

// WeightPolicy selects the default weight assigned to a user word inserted
// without an explicit frequency (spec §3, §4.3).
type WeightPolicy int

const (
	WeightMin WeightPolicy = iota
	WeightMedian
	WeightMax
)

type trieNode struct {
	children map[rune]*trieNode
	entryIdx int // -1 when this node carries no entry
}

func newTrieNode() *trieNode {
	return &trieNode{entryIdx: -1}
}

// Dictionary is the trie of spec §4.3: rune-keyed edges, optional entry per
// node, DAG construction over a rune window, and dynamic insert/delete of
// user words. Every method takes an internal RWMutex: reads (Find, FindAll)
// under the read lock, and BuildBase/InsertUserWord/DeleteUserWord under the
// write lock, so a mutation is serialized against concurrent reads (spec §5).
type Dictionary struct {
	mu   sync.RWMutex
	root *trieNode

	entries []DictUnit

	freqSum           float64
	minWeight         float64
	maxWeight         float64
	medianWeight      float64
	userDefaultWeight float64

	userSingleRune map[rune]bool

	lookupCache lookupCache
}

// NewDictionary returns an empty dictionary with the fallback minimum
// weight in place; callers populate it via LoadBaseDict/LoadUserDict
// (loader.go) or BuildBase/InsertUserWord directly.
func NewDictionary() *Dictionary {
	return &Dictionary{
		root:           newTrieNode(),
		minWeight:      minWeightFallback,
		userSingleRune: make(map[rune]bool),
	}
}

// baseDictLine is one parsed "word freq tag" line (spec §6).
type baseDictLine struct {
	Word []rune
	Freq float64
	Tag  string
}

// BuildBase loads the base dictionary entries, computing each entry's
// weight as ln(freq/Σfreq) and deriving min/median/max weight over the
// base set (spec §4.3 "Build"). The median is the *lower* median
// (x[len(x)/2] on an ascending-sorted copy), preserved exactly per spec §9
// open question 4 even though it is not a true average.
func (d *Dictionary) BuildBase(lines []baseDictLine, policy WeightPolicy) {
	d.mu.Lock()
	defer d.mu.Unlock()

	sum := 0.0
	for _, l := range lines {
		sum += l.Freq
	}
	d.freqSum = sum

	units := make([]DictUnit, len(lines))
	for i, l := range lines {
		units[i] = DictUnit{Word: l.Word, Weight: math.Log(l.Freq / sum), Tag: l.Tag}
	}

	weights := make([]float64, len(units))
	for i, u := range units {
		weights[i] = u.Weight
	}
	slices.Sort(weights)
	d.minWeight = weights[0]
	d.maxWeight = weights[len(weights)-1]
	d.medianWeight = weights[len(weights)/2]

	switch policy {
	case WeightMin:
		d.userDefaultWeight = d.minWeight
	case WeightMax:
		d.userDefaultWeight = d.maxWeight
	default:
		d.userDefaultWeight = d.medianWeight
	}

	for _, u := range units {
		d.insertLocked(u.Word, u.Weight, u.Tag)
	}
}

// MinWeight is the fallback weight the MP segmenter DP uses for a DAG edge
// with no resolved dictionary entry (spec §3, §4.6).
func (d *Dictionary) MinWeight() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.minWeight
}

// EnableLookupCache turns on a bounded LRU in front of Find/FindWord; see
// cache.go. size <= 0 disables it again.
func (d *Dictionary) EnableLookupCache(size int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lookupCache.enable(size)
}

// IsUserSingleRune reports whether r was inserted as a single-rune user
// word (spec §3 "User-inserted single-rune set"), consulted by the mix
// segmenter to decide whether a lone MP rune should go to the HMM.
func (d *Dictionary) IsUserSingleRune(r rune) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.userSingleRune[r]
}

func (d *Dictionary) insertLocked(word []rune, weight float64, tag string) {
	n := d.root
	for _, r := range word {
		if n.children == nil {
			n.children = make(map[rune]*trieNode)
		}
		child, ok := n.children[r]
		if !ok {
			child = newTrieNode()
			n.children[r] = child
		}
		n = child
	}
	idx := len(d.entries)
	d.entries = append(d.entries, DictUnit{Word: word, Weight: weight, Tag: tag})
	n.entryIdx = idx
	if len(word) == 1 {
		d.userSingleRune[word[0]] = true
	}
}

// InsertUserWord inserts a word with an explicit frequency (weight =
// ln(freq/Σfreq)) or, if freq <= 0, the configured user-default weight
// (spec §4.3 "Mutation"). It fails only when word decodes to nothing.
func (d *Dictionary) InsertUserWord(word []rune, freq float64, tag string) bool {
	if len(word) == 0 {
		return false
	}
	weight := d.userDefaultWeight
	d.mu.RLock()
	sum := d.freqSum
	d.mu.RUnlock()
	if freq > 0 && sum > 0 {
		weight = math.Log(freq / sum)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.insertLocked(word, weight, tag)
	d.lookupCache.purge(string(word))
	return true
}

// DeleteUserWord unlinks the leaf entry for word; the node and any deeper
// subtree stay in place (spec §4.3 "Mutation": "subtrees may remain").
func (d *Dictionary) DeleteUserWord(word []rune) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := d.root
	for _, r := range word {
		if n.children == nil {
			return false
		}
		child, ok := n.children[r]
		if !ok {
			return false
		}
		n = child
	}
	if n.entryIdx == -1 {
		return false
	}
	n.entryIdx = -1
	if len(word) == 1 {
		delete(d.userSingleRune, word[0])
	}
	d.lookupCache.purge(string(word))
	return true
}

// Find walks runes[b:e+1] and returns the entry at that node, if any
// (spec §4.3 "Lookup").
func (d *Dictionary) Find(runes []rune, b, e int) (*DictUnit, bool) {
	if b > e {
		return nil, false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if v, ok := d.lookupCache.get(string(runes[b : e+1])); ok {
		return v, v != nil
	}
	n := d.root
	for i := b; i <= e; i++ {
		if n.children == nil {
			d.lookupCache.put(string(runes[b:e+1]), nil)
			return nil, false
		}
		child, ok := n.children[runes[i]]
		if !ok {
			d.lookupCache.put(string(runes[b:e+1]), nil)
			return nil, false
		}
		n = child
	}
	if n.entryIdx == -1 {
		d.lookupCache.put(string(runes[b:e+1]), nil)
		return nil, false
	}
	entry := &d.entries[n.entryIdx]
	d.lookupCache.put(string(runes[b:e+1]), entry)
	return entry, true
}

// FindWord is a convenience over Find for a whole decoded word, used by
// Segmenter.Find (spec §6 "find(word) -> bool").
func (d *Dictionary) FindWord(word []rune) (*DictUnit, bool) {
	if len(word) == 0 {
		return nil, false
	}
	return d.Find(word, 0, len(word)-1)
}

// DagEdge is one candidate token spec §3 describes as "(j, entry_or_none)":
// a token spanning runes [i, End] inclusive, optionally resolved to a
// dictionary entry.
type DagEdge struct {
	End   int
	Entry *DictUnit
}

// FindAll builds the DAG for runes[b:e+1] relative to position b (so DAG
// index 0 corresponds to rune b). Per spec §4.3 "DAG construction": list i
// always starts with the identity candidate ending at i (its Entry is set
// when that one rune is itself a dictionary word, nil otherwise), then every
// longer entry-bearing node reached while walking the trie from i, in
// ascending order of j, bounded by maxWordLen. A maxWordLen <= 0 leaves only
// the identity candidate, with a nil Entry.
func (d *Dictionary) FindAll(runes []rune, b, e int, maxWordLen int) []Dag {
	d.mu.RLock()
	defer d.mu.RUnlock()

	n := e - b + 1
	dags := make([]Dag, n)
	for i := 0; i < n; i++ {
		dags[i] = append(dags[i], DagEdge{End: i, Entry: nil})

		node := d.root
		limit := maxWordLen
		if limit <= 0 {
			continue
		}
		for j := i; j < n && j-i < limit; j++ {
			if node.children == nil {
				break
			}
			child, ok := node.children[runes[b+j]]
			if !ok {
				break
			}
			node = child
			if node.entryIdx != -1 {
				entry := &d.entries[node.entryIdx]
				if j != i { // the (i, none) identity edge already covers length 1
					dags[i] = append(dags[i], DagEdge{End: j, Entry: entry})
				} else {
					// length-1 dictionary hit: resolve the identity edge itself.
					dags[i][0].Entry = entry
				}
			}
		}
		sort.Slice(dags[i], func(a, c int) bool { return dags[i][a].End < dags[i][c].End })
	}
	return dags
}

// Dag is the candidate list for one start position (spec §3 "DAG").
type Dag []DagEdge
