package jieba

// MPSegmenter is the maximum-probability segmenter of spec §4.6: build the
// DAG over a sentence, then pick the path maximizing the sum of edge
// log-weights via a right-to-left dynamic program.
type MPSegmenter struct {
	dict       *Dictionary
	maxWordLen int
}

// NewMPSegmenter returns a segmenter bound to dict, walking the DAG up to
// maxWordLen runes per candidate (spec §4.3 "DAG construction").
func NewMPSegmenter(dict *Dictionary, maxWordLen int) *MPSegmenter {
	return &MPSegmenter{dict: dict, maxWordLen: maxWordLen}
}

// Cut returns the maximum-probability segmentation of runes as inclusive
// [start, end] rune-index ranges.
//
// The DP fills dp[i] = best attainable log-probability sum for runes[i:],
// computed back-to-front so dp[i] only depends on already-solved dp[j] for
// j > i. Dictionary-absent edges (DagEdge.Entry == nil) are scored at
// dict.MinWeight(), the same fallback the original base-dictionary build
// uses for an unknown single rune (spec §4.6 "Scoring").
//
// Tie-breaking uses >= rather than the stricter >, so that among equally
// scoring candidates for a position the last one considered (i.e. the
// longest, since FindAll enumerates candidates in ascending end-index
// order) wins. This is spec.md's explicitly stated tie-break rule ("last
// candidate wins, consistent with ascending enumeration order") and is
// preserved even though it disagrees with the first-candidate-wins
// behavior of the CalcDP routine this was distilled from (spec §9 open
// question 5).
func (s *MPSegmenter) Cut(runes []rune) [][2]int {
	n := len(runes)
	if n == 0 {
		return nil
	}

	dags := s.dict.FindAll(runes, 0, n-1, s.maxWordLen)
	fallback := s.dict.MinWeight()

	dp := make([]float64, n+1)
	choice := make([]int, n)

	for i := n - 1; i >= 0; i-- {
		best := minWeightFallback
		bestEnd := i
		for _, edge := range dags[i] {
			w := fallback
			if edge.Entry != nil {
				w = edge.Entry.Weight
			}
			score := w + dp[edge.End+1]
			if score >= best {
				best = score
				bestEnd = edge.End
			}
		}
		dp[i] = best
		choice[i] = bestEnd
	}

	var words [][2]int
	for i := 0; i < n; {
		end := choice[i]
		words = append(words, [2]int{i, end})
		i = end + 1
	}
	return words
}
