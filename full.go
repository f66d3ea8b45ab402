package jieba

// FullSegmenter is the full-mode segmenter of spec §4.8: emit every
// dictionary match of two or more runes starting at each position, then
// backfill any rune left uncovered by those matches as its own token.
// Unlike MP it does not choose a single best path — overlapping matches
// are all kept.
type FullSegmenter struct {
	dict       *Dictionary
	maxWordLen int
}

// NewFullSegmenter returns a full-mode segmenter bound to dict.
func NewFullSegmenter(dict *Dictionary, maxWordLen int) *FullSegmenter {
	return &FullSegmenter{dict: dict, maxWordLen: maxWordLen}
}

// Cut returns every emitted token as an inclusive [start, end] rune-index
// range, in left-to-right, then-ascending-length order.
//
// maxIdx tracks the rightmost rune index covered by any multi-rune match
// emitted so far; a position not covered by one (maxIdx < i) falls back to
// a single-rune token, exactly as cppjieba's full-segment coverage scan
// does (spec §4.8 "Coverage").
func (f *FullSegmenter) Cut(runes []rune) [][2]int {
	n := len(runes)
	if n == 0 {
		return nil
	}

	dags := f.dict.FindAll(runes, 0, n-1, f.maxWordLen)
	var out [][2]int
	maxIdx := -1

	for i := 0; i < n; i++ {
		for _, edge := range dags[i] {
			if edge.Entry != nil && edge.End > i {
				out = append(out, [2]int{i, edge.End})
				if edge.End > maxIdx {
					maxIdx = edge.End
				}
			}
		}
		if maxIdx < i {
			out = append(out, [2]int{i, i})
			maxIdx = i
		}
	}
	return out
}
