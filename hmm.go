package jieba

// hmmState indexes the four hidden states {B, E, M, S} of spec §4.4.
type hmmState int

const (
	stateB hmmState = iota
	stateE
	stateM
	stateS
	stateCount
)

func (s hmmState) String() string {
	switch s {
	case stateB:
		return "B"
	case stateE:
		return "E"
	case stateM:
		return "M"
	case stateS:
		return "S"
	default:
		return "?"
	}
}

// terminalStates are the legal final states of a Viterbi path (spec §4.4
// "Termination constraint"). Preserving this restriction is an explicit
// choice documented in spec §9 open question 3: the cppjieba-family source
// this was distilled from does not restrict terminal states in its own
// Viterbi backtrace, but this spec prescribes the restricted form, so a run
// that ends mid-word (state B or M) is still forced to close at E or S.
var terminalStates = [2]hmmState{stateE, stateS}

// HMMModel is the four-state emission/transition table of spec §4.4: start
// log-probabilities, a 4x4 transition matrix, and one emission map per
// state. Missing emissions fall back to emitDefault (spec §3 "HMM model").
type HMMModel struct {
	start      [stateCount]float64
	trans      [stateCount][stateCount]float64
	emit       [stateCount]map[rune]float64
	emitDefault float64
}

// NewHMMModel constructs a model from already-parsed tables; loader.go's
// LoadHMMModel is the usual way to obtain one from a model file.
func NewHMMModel(start [4]float64, trans [4][4]float64, emit [4]map[rune]float64) *HMMModel {
	m := &HMMModel{emitDefault: minWeightFallback}
	for i := 0; i < 4; i++ {
		m.start[i] = start[i]
		m.emit[i] = emit[i]
		for j := 0; j < 4; j++ {
			m.trans[i][j] = trans[i][j]
		}
	}
	return m
}

func (m *HMMModel) emitProb(s hmmState, r rune) float64 {
	if p, ok := m.emit[s][r]; ok {
		return p
	}
	return m.emitDefault
}

// Viterbi runs the decoder of spec §4.4 over runes, returning one state
// per rune. δ/ψ are the per-step best log-probability and backpointer; the
// terminal step picks the argmax among terminalStates only.
func (m *HMMModel) Viterbi(runes []rune) []hmmState {
	n := len(runes)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []hmmState{stateS}
	}

	delta := make([][stateCount]float64, n)
	psi := make([][stateCount]hmmState, n)

	for s := hmmState(0); s < stateCount; s++ {
		delta[0][s] = m.start[s] + m.emitProb(s, runes[0])
	}

	for t := 1; t < n; t++ {
		for s := hmmState(0); s < stateCount; s++ {
			best := minWeightFallback
			var bestPrev hmmState
			for k := hmmState(0); k < stateCount; k++ {
				v := delta[t-1][k] + m.trans[k][s]
				if v > best {
					best = v
					bestPrev = k
				}
			}
			delta[t][s] = best + m.emitProb(s, runes[t])
			psi[t][s] = bestPrev
		}
	}

	last := n - 1
	bestState := terminalStates[0]
	bestScore := delta[last][terminalStates[0]]
	for _, s := range terminalStates[1:] {
		if delta[last][s] > bestScore {
			bestScore = delta[last][s]
			bestState = s
		}
	}

	path := make([]hmmState, n)
	path[last] = bestState
	for t := last; t > 0; t-- {
		path[t-1] = psi[t][path[t]]
	}
	return path
}

// wordsFromTags walks a Viterbi tag path left-to-right, opening a word at
// B, continuing through M, closing at E, and treating S as a standalone
// word (spec §4.4 "Tokenization from tags"). Boundary anomalies are
// tolerated rather than reported: a B or S arriving while a word is open
// closes that word at the previous rune, an M with no open word opens one at
// its own rune, an E with no open word is emitted as a one-rune word, and a
// word still open at the end closes at the last rune.
func wordsFromTags(runes []rune, tags []hmmState) [][2]int {
	var words [][2]int
	start := -1
	for i, t := range tags {
		switch t {
		case stateB:
			if start != -1 {
				words = append(words, [2]int{start, i - 1})
			}
			start = i
		case stateM:
			if start == -1 {
				start = i
			}
		case stateE:
			if start == -1 {
				start = i
			}
			words = append(words, [2]int{start, i})
			start = -1
		case stateS:
			if start != -1 {
				words = append(words, [2]int{start, i - 1})
				start = -1
			}
			words = append(words, [2]int{i, i})
		}
	}
	if start != -1 {
		words = append(words, [2]int{start, len(runes) - 1})
	}
	return words
}

// CutHMM segments runes purely via Viterbi decoding, returning inclusive
// rune-index ranges (spec §4.4 "Cut entry points" applied to one range).
func (m *HMMModel) CutHMM(runes []rune) [][2]int {
	if len(runes) == 0 {
		return nil
	}
	tags := m.Viterbi(runes)
	return wordsFromTags(runes, tags)
}
