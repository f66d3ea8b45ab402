package jieba

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGraphAddEdgeIsUndirectedAndWeighted(t *testing.T) {
	g := newGraph()
	g.addEdge("a", "b")
	g.addEdge("a", "b")
	g.addEdge("a", "c")

	require.InDelta(t, 2.0, g.edges["a"]["b"], 1e-9)
	require.InDelta(t, 2.0, g.edges["b"]["a"], 1e-9)
	require.InDelta(t, 3.0, g.outWeight("a"), 1e-9)
}

func TestGraphAddEdgeIgnoresSelfLoop(t *testing.T) {
	g := newGraph()
	g.addEdge("a", "a")
	require.Empty(t, g.edges["a"])
}

func TestGraphRankOrdersByConnectivity(t *testing.T) {
	g := newGraph()
	// "hub" co-occurs with everything; the two leaves never co-occur with
	// each other, so hub should rank strictly above both leaves.
	g.addEdge("hub", "leaf1")
	g.addEdge("hub", "leaf2")

	scores := g.rank(defaultTextRankDamping, defaultTextRankIters)
	require.Greater(t, scores["hub"], scores["leaf1"])
	require.Greater(t, scores["hub"], scores["leaf2"])
}

func TestTextRankExtractorRanksAndFilters(t *testing.T) {
	d := keywordDict()
	mix := keywordMix(d)
	extractor := NewTextRankExtractor(mix, nil, 0, 0, 0)

	runes, err := DecodeRunes([]byte("你好世界世界而且而且"))
	require.NoError(t, err)

	keywords := extractor.Extract(runes, 0, nil)
	require.Len(t, keywords, 3)

	var words []string
	for _, k := range keywords {
		words = append(words, k.Word)
	}
	require.ElementsMatch(t, []string{"你好", "世界", "而且"}, words)
}

func TestTextRankExtractorEmptyWhenEverythingFiltered(t *testing.T) {
	d := keywordDict()
	mix := keywordMix(d)
	stop := NewStopWords([]string{"你好", "世界", "而且"})
	extractor := NewTextRankExtractor(mix, stop, 0, 0, 0)

	runes, err := DecodeRunes([]byte("你好世界而且"))
	require.NoError(t, err)

	require.Nil(t, extractor.Extract(runes, 0, nil))
}

func TestTextRankExtractorOffsetsListEveryOccurrence(t *testing.T) {
	d := keywordDict()
	mix := keywordMix(d)
	extractor := NewTextRankExtractor(mix, nil, 0, 0, 0)

	runes, err := DecodeRunes([]byte("你好世界你好"))
	require.NoError(t, err)

	keywords := extractor.Extract(runes, 0, nil)
	for _, k := range keywords {
		if k.Word == "你好" {
			require.Equal(t, []int{0, 12}, k.Offsets)
		}
	}
}

func TestTextRankExtractorTopKTruncates(t *testing.T) {
	d := keywordDict()
	mix := keywordMix(d)
	extractor := NewTextRankExtractor(mix, nil, 0, 0, 0)

	runes, err := DecodeRunes([]byte("你好世界世界而且而且"))
	require.NoError(t, err)

	keywords := extractor.Extract(runes, 1, nil)
	require.Len(t, keywords, 1)
}
