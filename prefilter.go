package jieba

// defaultSeparators are the rune boundaries the pre-filter splits on before
// any segmenter sees a sentence (spec §4.5): space, tab, newline, the
// fullwidth comma U+FF0C, and the ideographic full stop U+3002.
var defaultSeparators = []rune{' ', '\t', '\n', '，', '。'}

// PreFilter walks a RuneArray and yields contiguous runs between separator
// runes, plus the separator runes themselves (spec §4.5): every separator is
// emitted as its own one-rune [begin, begin] range, exactly as the original
// pre_filter.h's Next() does, so callers recover full byte coverage of the
// source text (spec §8.1) instead of silently losing separator characters.
type PreFilter struct {
	runes RuneArray
	seps  map[rune]bool
	pos   int
}

// NewPreFilter builds a filter over runes using seps as the separator set;
// a nil or empty seps falls back to defaultSeparators.
func NewPreFilter(runes RuneArray, seps []rune) *PreFilter {
	if len(seps) == 0 {
		seps = defaultSeparators
	}
	set := make(map[rune]bool, len(seps))
	for _, r := range seps {
		set[r] = true
	}
	return &PreFilter{runes: runes, seps: set}
}

// HasNext reports whether another run remains.
func (pf *PreFilter) HasNext() bool {
	return pf.pos < len(pf.runes)
}

// Next returns the next run's inclusive [start, end] rune index range and
// reports whether it is a single separator rune rather than a content run.
// It panics if called after HasNext reports false, matching the teacher's
// "call HasNext first" iterator convention.
func (pf *PreFilter) Next() (start, end int, isSep bool) {
	start = pf.pos
	if pf.seps[pf.runes[pf.pos].Rune] {
		pf.pos++
		return start, start, true
	}
	for pf.pos < len(pf.runes) && !pf.seps[pf.runes[pf.pos].Rune] {
		pf.pos++
	}
	return start, pf.pos - 1, false
}

// ResetSeparators replaces the separator set. Duplicate runes in seps are
// rejected with ErrDuplicateSeparator (spec §4.5 "Reconfiguration") rather
// than silently deduplicated, since a caller passing duplicates likely made
// a mistake building the list.
func ResetSeparators(seps []rune) (map[rune]bool, error) {
	set := make(map[rune]bool, len(seps))
	for _, r := range seps {
		if set[r] {
			return nil, errDuplicateSeparator(r)
		}
		set[r] = true
	}
	return set, nil
}
