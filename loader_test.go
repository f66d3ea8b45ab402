package jieba

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBaseDict(t *testing.T) {
	path := writeTempFile(t, "base.dict", "北京 100 ns\n大学 200 n\n\n我 500 r\n")
	lines, err := LoadBaseDict(path, nil)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	require.Equal(t, []rune("北京"), lines[0].Word)
	require.InDelta(t, 100, lines[0].Freq, 1e-9)
	require.Equal(t, "ns", lines[0].Tag)
}

func TestLoadBaseDictRejectsTooFewFields(t *testing.T) {
	path := writeTempFile(t, "base.dict", "北京\n")
	_, err := LoadBaseDict(path, nil)
	require.ErrorIs(t, err, ErrMalformedDict)
}

func TestLoadBaseDictRejectsBadFrequency(t *testing.T) {
	path := writeTempFile(t, "base.dict", "北京 notanumber\n")
	_, err := LoadBaseDict(path, nil)
	require.ErrorIs(t, err, ErrMalformedDict)
}

func TestLoadBaseDictMissingFile(t *testing.T) {
	_, err := LoadBaseDict(filepath.Join(t.TempDir(), "missing.dict"), nil)
	require.ErrorIs(t, err, ErrIO)
}

func TestLoadUserDictAcrossMultipleFiles(t *testing.T) {
	p1 := writeTempFile(t, "user1.dict", "清华大学 60 ns\n")
	p2 := writeTempFile(t, "user2.dict", "# comment\n复旦大学 40\n")

	d := newTestDict()
	require.NoError(t, LoadUserDict(d, p1+"|"+p2, nil))

	unit, ok := d.FindWord([]rune("清华大学"))
	require.True(t, ok)
	require.Equal(t, "ns", unit.Tag)

	_, ok = d.FindWord([]rune("复旦大学"))
	require.True(t, ok)
}

func TestLoadUserDictRejectsBadFrequency(t *testing.T) {
	p := writeTempFile(t, "user.dict", "坏词 notanumber\n")
	d := newTestDict()
	err := LoadUserDict(d, p, nil)
	require.ErrorIs(t, err, ErrMalformedDict)
}

func TestLoadHMMModel(t *testing.T) {
	content := "# comment\nSTART\tB\t-0.26\nSTART\tS\t-1.3\n" +
		"TRANS\tB\tE\t-0.51\nTRANS\tE\tB\t-0.6\n" +
		"EMIT\tB\t我\t-3.6\nEMIT\tE\t们\t-2.1\n"
	path := writeTempFile(t, "hmm.model", content)

	m, err := LoadHMMModel(path, nil)
	require.NoError(t, err)
	require.InDelta(t, -0.26, m.start[stateB], 1e-9)
	require.InDelta(t, -0.51, m.trans[stateB][stateE], 1e-9)
	require.InDelta(t, -3.6, m.emit[stateB]['我'], 1e-9)
}

func TestLoadHMMModelRejectsUnknownRecordKind(t *testing.T) {
	path := writeTempFile(t, "hmm.model", "WEIRD\tB\t1\n")
	_, err := LoadHMMModel(path, nil)
	require.ErrorIs(t, err, ErrMalformedModel)
}

func TestLoadHMMModelRejectsMultiRuneEmitSymbol(t *testing.T) {
	path := writeTempFile(t, "hmm.model", "EMIT\tB\t我们\t-1\n")
	_, err := LoadHMMModel(path, nil)
	require.ErrorIs(t, err, ErrMalformedModel)
}

func TestLoadIDF(t *testing.T) {
	path := writeTempFile(t, "idf.txt", "你好\t7.958\n世界 4.3675\n")
	entries, err := LoadIDF(path)
	require.NoError(t, err)
	require.InDelta(t, 7.958, entries["你好"], 1e-9)
	require.InDelta(t, 4.3675, entries["世界"], 1e-9)
}

func TestLoadIDFRejectsWrongFieldCount(t *testing.T) {
	path := writeTempFile(t, "idf.txt", "你好 7.958 extra\n")
	_, err := LoadIDF(path)
	require.ErrorIs(t, err, ErrMalformedDict)
}

func TestLoadStopWords(t *testing.T) {
	path := writeTempFile(t, "stop.txt", "的\n# comment\n\n了\n")
	words, err := LoadStopWords(path)
	require.NoError(t, err)
	require.Equal(t, []string{"的", "了"}, words)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeTempFile(t, "config.toml", "max_word_rune_length = 16\nweight_policy = \"min\"\n")
	opts, err := LoadConfigFile(path)
	require.NoError(t, err)

	c := defaultConfig()
	for _, o := range opts {
		o(&c)
	}
	require.Equal(t, 16, c.MaxWordRuneLength)
	require.Equal(t, WeightMin, c.WeightPolicy)
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestSplitDictPaths(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, splitDictPaths("a|b;c"))
	require.Equal(t, []string{"a"}, splitDictPaths(" a "))
	require.Empty(t, splitDictPaths(""))
}
