package jieba

import (
	"sort"

	"golang.org/x/exp/slices"
)

// IDFTable maps a word to its corpus inverse-document-frequency weight
// (spec §4.10 "IDF corpus"). Words absent from the table fall back to the
// table's median weight, the same lower-median convention dict.go's
// BuildBase uses for word weights (spec §9 open question 4 applies the
// same idiom here).
type IDFTable struct {
	weights map[string]float64
	median  float64
}

// NewIDFTable builds a table from parsed "word\tidf" entries; loader.go's
// LoadIDF is the usual way to obtain entries from a corpus file.
func NewIDFTable(entries map[string]float64) *IDFTable {
	t := &IDFTable{weights: entries}
	if len(entries) == 0 {
		return t
	}
	vals := make([]float64, 0, len(entries))
	for _, v := range entries {
		vals = append(vals, v)
	}
	slices.Sort(vals)
	t.median = vals[len(vals)/2]
	return t
}

// Get returns word's IDF weight, or the table's median weight if word was
// never seen in the corpus.
func (t *IDFTable) Get(word string) float64 {
	if v, ok := t.weights[word]; ok {
		return v
	}
	return t.median
}

// TFIDFExtractor implements spec §4.10's TF-IDF keyword extraction: tag
// the sentence with the mix segmenter, filter candidates, weight each
// surviving word by term-frequency * IDF, and return the top K.
type TFIDFExtractor struct {
	mix  *MixSegmenter
	idf  *IDFTable
	stop StopWords
}

// NewTFIDFExtractor builds an extractor over mix, an IDF table, and an
// optional stop-word set (nil disables stop-word filtering).
func NewTFIDFExtractor(mix *MixSegmenter, idf *IDFTable, stop StopWords) *TFIDFExtractor {
	return &TFIDFExtractor{mix: mix, idf: idf, stop: stop}
}

// Extract returns up to topK keywords from runes, highest weight first.
// topK <= 0 means unbounded. allowPOS, if non-empty, restricts candidates
// to those tags (nil/empty allows every tag).
//
// Weight is raw term frequency times IDF, not frequency normalized by
// sentence length, matching the original extractor's scoring exactly (spec
// §4.10 "Scoring"; a normalized variant would rank identically but produce
// different absolute weights).
//
// Ties are broken by first appearance (spec §8 invariant 9): since tokens
// are scanned left to right, a word's first recorded offset is already its
// earliest appearance, so sorting ties by ascending first offset is sorting
// by appearance order.
func (e *TFIDFExtractor) Extract(runes RuneArray, topK int, allowPOS map[string]bool) []Keyword {
	filter := tokenFilter{stop: e.stop, allowPOS: allowPOS}
	tokens := tagTokens(e.mix, runes)

	freq := make(map[string]float64)
	offsets := make(map[string][]int)
	for _, tok := range tokens {
		if !filter.keep(tok.word, tok.tag) {
			continue
		}
		freq[tok.word]++
		offsets[tok.word] = append(offsets[tok.word], int(runes[tok.start].ByteOffset))
	}
	if len(freq) == 0 {
		return nil
	}

	keywords := make([]Keyword, 0, len(freq))
	for w, c := range freq {
		keywords = append(keywords, Keyword{
			Word:    w,
			Weight:  c * e.idf.Get(w),
			Offsets: offsets[w],
		})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Weight != keywords[j].Weight {
			return keywords[i].Weight > keywords[j].Weight
		}
		return keywords[i].Offsets[0] < keywords[j].Offsets[0]
	})
	if topK > 0 && topK < len(keywords) {
		keywords = keywords[:topK]
	}
	return keywords
}
