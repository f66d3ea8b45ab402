package jieba

// MixSegmenter is the mix segmenter of spec §4.7: run MP first, then
// re-decode any run of consecutive single-rune MP tokens through the HMM,
// on the theory that MP only falls back to one rune at a time when it found
// no dictionary entry at all, which is exactly the situation the HMM is
// trained to resolve (unknown multi-rune words).
type MixSegmenter struct {
	dict *Dictionary
	mp   *MPSegmenter
	hmm  *HMMModel
}

// NewMixSegmenter builds a mix segmenter over a shared dictionary, MP
// segmenter, and HMM model.
func NewMixSegmenter(dict *Dictionary, mp *MPSegmenter, hmm *HMMModel) *MixSegmenter {
	return &MixSegmenter{dict: dict, mp: mp, hmm: hmm}
}

// mergeable reports whether the MP token at runes[idx] is a single rune not
// already present in the user's single-rune set (spec §4.7 "Splice
// candidates": a user-forced single-rune word must not be re-merged by the
// HMM pass). This matches the original mix_seg.h merge condition exactly:
// left==right and not a user single-rune word, with no script restriction,
// so a run of unknown single-rune ASCII tokens (e.g. "i P h o n e 6") is
// spliced back into one word just like a run of unknown Han runes is.
func (m *MixSegmenter) mergeable(runes []rune, tok [2]int) bool {
	return tok[0] == tok[1] && !m.dict.IsUserSingleRune(runes[tok[0]])
}

// Cut returns the mix segmentation of runes as inclusive [start, end]
// rune-index ranges.
func (m *MixSegmenter) Cut(runes []rune) [][2]int {
	mpTokens := m.mp.Cut(runes)
	var out [][2]int

	i := 0
	for i < len(mpTokens) {
		if !m.mergeable(runes, mpTokens[i]) {
			out = append(out, mpTokens[i])
			i++
			continue
		}
		j := i
		for j < len(mpTokens) && m.mergeable(runes, mpTokens[j]) {
			j++
		}
		start := mpTokens[i][0]
		end := mpTokens[j-1][1]
		for _, ht := range m.hmm.CutHMM(runes[start : end+1]) {
			out = append(out, [2]int{start + ht[0], start + ht[1]})
		}
		i = j
	}
	return out
}

// TaggedWord pairs a decoded word with its part-of-speech tag (spec §4.7
// "Tagging").
type TaggedWord struct {
	Word string
	Tag  string
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

// guessTag assigns a fallback tag to a word the dictionary has no entry
// for (spec §4.7 "Tagging heuristic"), reproducing post_tagger.h's
// SpecialRule exactly: scan runes from the left, counting every ASCII rune
// (< 0x80, not just letters) into eng, and every ASCII digit among those
// into m, stopping early once eng reaches half the word's rune length. No
// ASCII rune seen at all gives "x"; all counted ASCII runes being digits
// gives "m"; otherwise "eng". The early stop on eng < len/2 is a source
// quirk, not a bug: it inspects only a small leading slice of long words,
// which is why e.g. "iPhone6" resolves from just "iPh".
func guessTag(word []rune) string {
	m, eng := 0, 0
	half := len(word) / 2
	for i := 0; i < len(word) && eng < half; i++ {
		if word[i] < 0x80 {
			eng++
			if isASCIIDigit(word[i]) {
				m++
			}
		}
	}
	switch {
	case eng == 0:
		return "x"
	case m == eng:
		return "m"
	default:
		return "eng"
	}
}

// LookupTag resolves word's tag: a dictionary hit with a non-empty tag
// wins, otherwise guessTag decides (spec §6 "lookup_tag").
func (m *MixSegmenter) LookupTag(word []rune) string {
	if unit, ok := m.dict.FindWord(word); ok && unit.Tag != "" {
		return unit.Tag
	}
	return guessTag(word)
}

// Tag runs Cut and resolves a tag for every resulting word (spec §4.7,
// §6 "tag").
func (m *MixSegmenter) Tag(runes []rune) []TaggedWord {
	ranges := m.Cut(runes)
	out := make([]TaggedWord, len(ranges))
	for i, r := range ranges {
		word := runes[r[0] : r[1]+1]
		out[i] = TaggedWord{Word: string(word), Tag: m.LookupTag(word)}
	}
	return out
}
