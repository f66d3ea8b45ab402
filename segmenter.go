package jieba

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Segmenter is the public façade of spec §6: it owns a Dictionary and an
// HMMModel and wires every segmentation mode (MP, mix, full, query) and
// both keyword extractors on top of them, mirroring the aggregate
// "Segmentor" type spec.md's original source groups these components
// into.
type Segmenter struct {
	dict *Dictionary
	hmm  *HMMModel

	mp    *MPSegmenter
	mix   *MixSegmenter
	full  *FullSegmenter
	query *QuerySegmenter

	mu         sync.RWMutex
	separators []rune

	maxWordRuneLength int

	stop     StopWords
	idf      *IDFTable
	tfidf    *TFIDFExtractor
	textrank *TextRankExtractor

	logger *zap.Logger
}

// NewSegmenter builds a Segmenter over dict and hmm, applying opts on top
// of the defaults (spec §6 "Construction"). hmm may be nil: CutSmall,
// CutAll, LookupTag and the dictionary operations never use it, while
// CutHMM and the mix-backed operations (Cut, CutForSearch, Tag, CutParallel
// and both extractors) panic as soon as they hand the HMM a run of two or
// more runes.
func NewSegmenter(dict *Dictionary, hmm *HMMModel, opts ...Option) *Segmenter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.LookupCacheSize > 0 {
		dict.EnableLookupCache(cfg.LookupCacheSize)
	}

	mp := NewMPSegmenter(dict, cfg.MaxWordRuneLength)
	mix := NewMixSegmenter(dict, mp, hmm)
	full := NewFullSegmenter(dict, cfg.MaxWordRuneLength)
	query := NewQuerySegmenter(dict, mix)

	s := &Segmenter{
		dict:              dict,
		hmm:               hmm,
		mp:                mp,
		mix:               mix,
		full:              full,
		query:             query,
		separators:        cfg.Separators,
		maxWordRuneLength: cfg.MaxWordRuneLength,
		idf:               NewIDFTable(nil),
		logger:            cfg.Logger,
	}
	s.rebuildExtractors(cfg.TextRankSpan, cfg.TextRankIters, cfg.TextRankDamping)
	return s
}

func (s *Segmenter) rebuildExtractors(span, iters int, damping float64) {
	s.tfidf = NewTFIDFExtractor(s.mix, s.idf, s.stop)
	s.textrank = NewTextRankExtractor(s.mix, s.stop, span, iters, damping)
}

func (s *Segmenter) currentSeparators() []rune {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.separators
}

// ResetSeparators replaces the sentence-splitting separator set used by
// Cut/CutAll/CutForSearch/CutHMM/CutSmall. Duplicate runes are rejected
// (spec §4.5 "Reconfiguration").
func (s *Segmenter) ResetSeparators(seps []rune) error {
	if _, err := ResetSeparators(seps); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.separators = seps
	return nil
}

// SetStopWords installs the stop-word set used by both keyword extractors.
func (s *Segmenter) SetStopWords(stop StopWords) {
	s.stop = stop
	s.tfidf = NewTFIDFExtractor(s.mix, s.idf, s.stop)
	s.textrank = NewTextRankExtractor(s.mix, s.stop, s.textrank.span, s.textrank.iterCount, s.textrank.damping)
}

// SetIDFTable installs the IDF corpus used by ExtractTFIDF.
func (s *Segmenter) SetIDFTable(idf *IDFTable) {
	s.idf = idf
	s.tfidf = NewTFIDFExtractor(s.mix, s.idf, s.stop)
}

// decodeLossy decodes text like DecodeRunes, but tolerates malformed UTF-8
// by logging a warning and skipping one byte instead of failing the whole
// call (spec §7 "Diagnostics": a segmentation call logs and continues
// rather than aborting on a single bad byte). The strict DecodeRunes
// remains available as public API for callers that want a hard failure
// on malformed input.
func (s *Segmenter) decodeLossy(text []byte) RuneArray {
	out := make(RuneArray, 0, len(text))
	byteOff, runeOff := 0, uint32(0)
	for byteOff < len(text) {
		r, n, ok := decodeRuneAt(text, byteOff)
		if !ok {
			s.logger.Warn("invalid utf-8, skipping byte", zap.Int("offset", byteOff))
			byteOff++
			continue
		}
		out = append(out, RuneUnit{
			Rune:       r,
			ByteOffset: uint32(byteOff),
			ByteLen:    uint32(n),
			RuneOffset: runeOff,
			RuneLen:    1,
		})
		byteOff += n
		runeOff++
	}
	return out
}

// eachBlock decodes text and runs fn over every separator-delimited content
// block, in order, flattening the per-block rune-index ranges back into
// whole-sentence ranges. A separator rune is passed through untouched as its
// own token rather than being handed to fn (spec §4.5/§8.1: separators are
// part of the emitted token stream, not segmentation input).
func (s *Segmenter) eachBlock(text string, fn func(block []rune) [][2]int) []string {
	runes := s.decodeLossy([]byte(text))
	bare := runes.Runes()
	pf := NewPreFilter(runes, s.currentSeparators())

	var words []string
	for pf.HasNext() {
		start, end, isSep := pf.Next()
		if isSep {
			words = append(words, string(bare[start:end+1]))
			continue
		}
		block := bare[start : end+1]
		for _, r := range fn(block) {
			words = append(words, string(block[r[0]:r[1]+1]))
		}
	}
	return words
}

// Cut returns the mix segmentation of text (spec §6 "cut").
func (s *Segmenter) Cut(text string) []string {
	return s.eachBlock(text, s.mix.Cut)
}

// CutAll returns the full-mode segmentation of text (spec §6 "cut_all").
func (s *Segmenter) CutAll(text string) []string {
	return s.eachBlock(text, s.full.Cut)
}

// CutForSearch returns the query-mode segmentation of text (spec §6
// "cut_for_search").
func (s *Segmenter) CutForSearch(text string) []string {
	return s.eachBlock(text, s.query.Cut)
}

// CutHMM returns the pure-HMM segmentation of text (spec §6 "cut_hmm").
func (s *Segmenter) CutHMM(text string) []string {
	return s.eachBlock(text, s.hmm.CutHMM)
}

// CutSmall returns the MP segmentation of text with maxWordLen in place
// of the configured default, for callers that want shorter candidate
// words than the segmenter's usual DAG walk considers (spec §6
// "cut_small").
func (s *Segmenter) CutSmall(text string, maxWordLen int) []string {
	mp := NewMPSegmenter(s.dict, maxWordLen)
	return s.eachBlock(text, mp.Cut)
}

// Tag returns the mix segmentation of text with a POS tag per word
// (spec §6 "tag"). Separator runes are tagged in place via LookupTag rather
// than run through the mix segmenter, since they are emitted as their own
// token (spec §4.5/§8.1).
func (s *Segmenter) Tag(text string) []TaggedWord {
	runes := s.decodeLossy([]byte(text))
	bare := runes.Runes()
	pf := NewPreFilter(runes, s.currentSeparators())

	var tagged []TaggedWord
	for pf.HasNext() {
		start, end, isSep := pf.Next()
		if isSep {
			word := bare[start : end+1]
			tagged = append(tagged, TaggedWord{Word: string(word), Tag: s.mix.LookupTag(word)})
			continue
		}
		tagged = append(tagged, s.mix.Tag(bare[start:end+1])...)
	}
	return tagged
}

// LookupTag resolves the POS tag for a single word (spec §6 "lookup_tag").
func (s *Segmenter) LookupTag(word string) string {
	return s.mix.LookupTag([]rune(word))
}

// InsertUserWord adds word to the dictionary (spec §6 "insert_user_word").
func (s *Segmenter) InsertUserWord(word string, freq float64, tag string) bool {
	return s.dict.InsertUserWord([]rune(word), freq, tag)
}

// DeleteUserWord removes word's entry from the dictionary (spec §6
// "delete_user_word").
func (s *Segmenter) DeleteUserWord(word string) bool {
	return s.dict.DeleteUserWord([]rune(word))
}

// Find reports whether word is present in the dictionary (spec §6
// "find").
func (s *Segmenter) Find(word string) bool {
	_, ok := s.dict.FindWord([]rune(word))
	return ok
}

func allowPOSSet(tags []string) map[string]bool {
	if len(tags) == 0 {
		return nil
	}
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	return set
}

// ExtractTFIDF extracts up to topK keywords from text by TF-IDF weight
// (spec §6 "extract_tfidf"). allowPOS, if non-empty, restricts candidates
// to those POS tags.
func (s *Segmenter) ExtractTFIDF(text string, topK int, allowPOS []string) []Keyword {
	runes := s.decodeLossy([]byte(text))
	return s.tfidf.Extract(runes, topK, allowPOSSet(allowPOS))
}

// ExtractTextRank extracts up to topK keywords from text by TextRank
// weight (spec §6 "extract_textrank").
func (s *Segmenter) ExtractTextRank(text string, topK int, allowPOS []string) []Keyword {
	runes := s.decodeLossy([]byte(text))
	return s.textrank.Extract(runes, topK, allowPOSSet(allowPOS))
}

type parallelBlock struct {
	id   int
	text []rune
	sep  bool
}

type parallelResult struct {
	id     int
	tokens []string
}

// CutParallel runs the mix segmentation of text across numWorkers
// goroutines, one per separator-delimited block, fanning results back
// together at the end. If ordered is true, output is sorted back into
// input block order before returning; skipping that sort is faster but the
// resulting token order is then whatever order workers happened to finish
// in. Spec §6 doesn't require a concurrent Cut variant, but the block-at-
// a-time worker pool this is built from is otherwise idle capability worth
// keeping for callers segmenting many blocks of text at once.
func (s *Segmenter) CutParallel(text string, numWorkers int, ordered bool) []string {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	runes := s.decodeLossy([]byte(text))
	bare := runes.Runes()
	pf := NewPreFilter(runes, s.currentSeparators())

	var blocks []parallelBlock
	id := 0
	for pf.HasNext() {
		start, end, isSep := pf.Next()
		blocks = append(blocks, parallelBlock{id: id, text: bare[start : end+1], sep: isSep})
		id++
	}
	if len(blocks) == 0 {
		return nil
	}

	work := make(chan parallelBlock, len(blocks))
	for _, b := range blocks {
		work <- b
	}
	close(work)

	results := make(chan parallelResult, len(blocks))
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for b := range work {
				var tokens []string
				if b.sep {
					tokens = []string{string(b.text)}
				} else {
					for _, r := range s.mix.Cut(b.text) {
						tokens = append(tokens, string(b.text[r[0]:r[1]+1]))
					}
				}
				results <- parallelResult{id: b.id, tokens: tokens}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]parallelResult, 0, len(blocks))
	for r := range results {
		collected = append(collected, r)
	}
	if ordered {
		sort.Slice(collected, func(i, j int) bool { return collected[i].id < collected[j].id })
	}
	var words []string
	for _, r := range collected {
		words = append(words, r.tokens...)
	}
	return words
}
