package jieba

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// biasedBEModel returns an HMM model that strongly prefers decoding
// runes[0] as B and runes[1] as E, for exercising the mix segmenter's
// HMM splice on a deterministic two-rune gap.
func biasedBEModel(first, second rune) *HMMModel {
	start := fourMin()
	start[stateB] = 0
	trans := fourByFourMin()
	trans[stateB][stateE] = 0
	emit := [4]map[rune]float64{
		stateB: {first: 0},
		stateE: {second: 0},
		stateM: {},
		stateS: {},
	}
	return NewHMMModel(start, trans, emit)
}

func TestMixSegmenterSplicesHMMOverUnknownSingleRunes(t *testing.T) {
	d := NewDictionary()
	d.insertLocked([]rune("大学"), -1.0, "n")
	d.minWeight = -5.0

	hmm := biasedBEModel('北', '京')
	mp := NewMPSegmenter(d, MaxWordRuneLength)
	mix := NewMixSegmenter(d, mp, hmm)

	runes := []rune("北京大学")
	words := mix.Cut(runes)

	var got []string
	for _, w := range words {
		got = append(got, string(runes[w[0]:w[1]+1]))
	}
	require.Equal(t, []string{"北京", "大学"}, got)
}

func TestMixSegmenterDoesNotMergeUserSingleRune(t *testing.T) {
	d := NewDictionary()
	d.insertLocked([]rune("大学"), -1.0, "n")
	d.minWeight = -5.0
	d.InsertUserWord([]rune("北"), 0, "")

	hmm := biasedBEModel('北', '京')
	mp := NewMPSegmenter(d, MaxWordRuneLength)
	mix := NewMixSegmenter(d, mp, hmm)

	runes := []rune("北京大学")
	words := mix.Cut(runes)

	var got []string
	for _, w := range words {
		got = append(got, string(runes[w[0]:w[1]+1]))
	}
	// 北 was forced into the user single-rune set, so it must not be
	// spliced into the HMM run even though 京 alone still qualifies.
	require.Equal(t, []string{"北", "京", "大学"}, got)
}

func TestMixSegmenterSplicesHMMOverUnknownASCIIRunes(t *testing.T) {
	d := NewDictionary()
	d.insertLocked([]rune("大学"), -1.0, "n")
	d.minWeight = -5.0

	hmm := biasedBEModel('a', 'b')
	mp := NewMPSegmenter(d, MaxWordRuneLength)
	mix := NewMixSegmenter(d, mp, hmm)

	runes := []rune("ab大学")
	words := mix.Cut(runes)

	var got []string
	for _, w := range words {
		got = append(got, string(runes[w[0]:w[1]+1]))
	}
	// a and b have no dictionary entry, so MP emits them as separate
	// single-rune tokens; mergeable carries no script restriction, so the
	// ASCII run is spliced through the HMM exactly like a Han run would be.
	require.Equal(t, []string{"ab", "大学"}, got)
}

func TestGuessTag(t *testing.T) {
	require.Equal(t, "m", guessTag([]rune("123")))
	require.Equal(t, "eng", guessTag([]rune("hello")))
	require.Equal(t, "x", guessTag([]rune("你好")))
	require.Equal(t, "x", guessTag(nil))
}

func TestGuessTagHandlesMixedAlnum(t *testing.T) {
	// "iPhone6" contains a digit, but the counting stops once eng reaches
	// half the rune length (3 of 7), so only "iPh" is inspected, none of
	// it a digit.
	require.Equal(t, "eng", guessTag([]rune("iPhone6")))
}

func TestMixSegmenterLookupTagPrefersDictTag(t *testing.T) {
	d := newTestDict()
	mp := NewMPSegmenter(d, MaxWordRuneLength)
	mix := NewMixSegmenter(d, mp, nil)

	require.Equal(t, "ns", mix.LookupTag([]rune("北京")))
	require.Equal(t, "eng", mix.LookupTag([]rune("hello")))
}
