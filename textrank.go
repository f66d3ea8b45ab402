package jieba

import "sort"

// TextRankExtractor implements spec §4.10's TextRank keyword extraction: a
// co-occurrence graph over a sliding window of filtered words, ranked by
// the standard weighted PageRank iteration.
type TextRankExtractor struct {
	mix       *MixSegmenter
	stop      StopWords
	span      int
	iterCount int
	damping   float64
}

const (
	defaultTextRankSpan    = 5
	defaultTextRankIters   = 10
	defaultTextRankDamping = 0.85
)

// NewTextRankExtractor builds an extractor; span <= 0 and iterCount <= 0
// fall back to the defaults above, and damping <= 0 falls back to 0.85
// (spec §4.10 "TextRank parameters").
func NewTextRankExtractor(mix *MixSegmenter, stop StopWords, span, iterCount int, damping float64) *TextRankExtractor {
	if span <= 0 {
		span = defaultTextRankSpan
	}
	if iterCount <= 0 {
		iterCount = defaultTextRankIters
	}
	if damping <= 0 {
		damping = defaultTextRankDamping
	}
	return &TextRankExtractor{mix: mix, stop: stop, span: span, iterCount: iterCount, damping: damping}
}

// graph is an undirected weighted co-occurrence graph keyed by word.
type graph struct {
	edges map[string]map[string]float64
}

func newGraph() *graph {
	return &graph{edges: make(map[string]map[string]float64)}
}

func (g *graph) addEdge(a, b string) {
	if a == b {
		return
	}
	if g.edges[a] == nil {
		g.edges[a] = make(map[string]float64)
	}
	if g.edges[b] == nil {
		g.edges[b] = make(map[string]float64)
	}
	g.edges[a][b]++
	g.edges[b][a]++
}

func (g *graph) outWeight(n string) float64 {
	sum := 0.0
	for _, w := range g.edges[n] {
		sum += w
	}
	return sum
}

// rank runs the weighted PageRank iteration and returns a raw score per
// node, then rescales it into the conventional jieba TextRank range via
// (score - min/10) / (max - min/10). That rescaling is an intentional
// quirk of the source this was distilled from, not a min-max normalization
// to [0, 1]: when min is negative it can push rescaled scores
// outside that range. It is preserved as-is (spec §9 open question 2).
func (g *graph) rank(damping float64, iterCount int) map[string]float64 {
	nodes := make([]string, 0, len(g.edges))
	for n := range g.edges {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes) // deterministic iteration order

	outSum := make(map[string]float64, len(nodes))
	for _, n := range nodes {
		outSum[n] = g.outWeight(n)
	}

	ws := make(map[string]float64, len(nodes))
	for _, n := range nodes {
		ws[n] = 1.0
	}

	for iter := 0; iter < iterCount; iter++ {
		next := make(map[string]float64, len(nodes))
		for _, n := range nodes {
			s := 0.0
			for neighbor, weight := range g.edges[n] {
				if outSum[neighbor] == 0 {
					continue
				}
				s += weight / outSum[neighbor] * ws[neighbor]
			}
			next[n] = (1 - damping) + damping*s
		}
		ws = next
	}

	if len(ws) == 0 {
		return ws
	}
	minRank, maxRank := ws[nodes[0]], ws[nodes[0]]
	for _, v := range ws {
		if v < minRank {
			minRank = v
		}
		if v > maxRank {
			maxRank = v
		}
	}
	denom := maxRank - minRank/10.0
	if denom == 0 {
		return ws
	}
	rescaled := make(map[string]float64, len(ws))
	for n, v := range ws {
		rescaled[n] = (v - minRank/10.0) / denom
	}
	return rescaled
}

// Extract returns up to topK keywords from runes ranked by TextRank,
// highest weight first. topK <= 0 means unbounded. Ties are broken by first
// appearance (spec §8 invariant 9): since tokens are scanned left to right,
// a word's first recorded offset is already its earliest appearance.
func (e *TextRankExtractor) Extract(runes RuneArray, topK int, allowPOS map[string]bool) []Keyword {
	filter := tokenFilter{stop: e.stop, allowPOS: allowPOS}
	tokens := tagTokens(e.mix, runes)

	g := newGraph()
	offsets := make(map[string][]int)

	for i, tok := range tokens {
		if !filter.keep(tok.word, tok.tag) {
			continue
		}
		offsets[tok.word] = append(offsets[tok.word], int(runes[tok.start].ByteOffset))
		g.edges[tok.word] = g.edges[tok.word] // ensure node exists even with no neighbors

		skip := 0
		for j := i + 1; j < len(tokens) && j < i+e.span+skip; j++ {
			if !filter.keep(tokens[j].word, tokens[j].tag) {
				skip++
				continue
			}
			g.addEdge(tok.word, tokens[j].word)
		}
	}
	if len(g.edges) == 0 {
		return nil
	}

	scores := g.rank(e.damping, e.iterCount)
	keywords := make([]Keyword, 0, len(scores))
	for w, s := range scores {
		keywords = append(keywords, Keyword{Word: w, Weight: s, Offsets: offsets[w]})
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
