package jieba

// QuerySegmenter is the query-mode segmenter of spec §4.9: run mix
// segmentation, then for each resulting word long enough also emit its
// dictionary-recognized 2-rune and 3-rune sub-windows, on top of the word
// itself. This is meant for search-index tokenization, where recall
// matters more than picking one canonical split.
type QuerySegmenter struct {
	dict *Dictionary
	mix  *MixSegmenter
}

// NewQuerySegmenter builds a query segmenter over dict and an existing
// mix segmenter.
func NewQuerySegmenter(dict *Dictionary, mix *MixSegmenter) *QuerySegmenter {
	return &QuerySegmenter{dict: dict, mix: mix}
}

// Cut returns the query segmentation of runes as inclusive [start, end]
// rune-index ranges, including duplicated/overlapping sub-window tokens.
//
// The length thresholds below (> 2 runes for 2-rune sub-windows, > 3 runes
// for 3-rune sub-windows) reproduce an off-by-one quirk of the source this
// was distilled from: a 3-rune word qualifies for 2-rune sub-windows but
// NOT for 3-rune ones (a 3-rune sub-window of a 3-rune word is just the
// word itself, so the original guards it out with a strict "length > 3"
// rather than ">= 3"), and a 2-rune word never qualifies for sub-windows
// at all even though two 1-rune windows would technically fit. Spec §9
// open question 1 directs preserving this instead of "fixing" it.
func (q *QuerySegmenter) Cut(runes []rune) [][2]int {
	mixTokens := q.mix.Cut(runes)
	var out [][2]int

	for _, tok := range mixTokens {
		start, end := tok[0], tok[1]
		length := end - start + 1

		if length > 2 {
			for i := start; i+1 <= end; i++ {
				if _, ok := q.dict.Find(runes, i, i+1); ok {
					out = append(out, [2]int{i, i + 1})
				}
			}
		}
		if length > 3 {
			for i := start; i+2 <= end; i++ {
				if _, ok := q.dict.Find(runes, i, i+2); ok {
					out = append(out, [2]int{i, i + 2})
				}
			}
		}
		out = append(out, tok)
	}
	return out
}
