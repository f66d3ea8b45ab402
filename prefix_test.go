package jieba

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefixContainerExactLookup(t *testing.T) {
	c := NewPrefixContainer(
		[][]byte{[]byte("北京"), []byte("北京大学")},
		[]interface{}{1, 2},
	)
	v, ok := c.ExactLookup([]byte("北京"))
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = c.ExactLookup([]byte("北"))
	require.False(t, ok)
}

func TestPrefixContainerCommonPrefixSearch(t *testing.T) {
	c := NewPrefixContainer(
		[][]byte{[]byte("北"), []byte("北京"), []byte("北京大学")},
		nil,
	)
	hits := c.CommonPrefixSearch([]byte("北京大学生"), 0)
	require.Len(t, hits, 3)
}

func TestPrefixContainerPrefixSearch(t *testing.T) {
	c := NewPrefixContainer(
		[][]byte{[]byte("北"), []byte("北京")},
		[]interface{}{"a", "b"},
	)
	length, value, found := c.PrefixSearch([]byte("北京欢迎你"))
	require.True(t, found)
	require.Equal(t, len("北京"), length)
	require.Equal(t, "b", value)
}

func TestPrefixContainerPrefixSearchNoMatch(t *testing.T) {
	c := NewPrefixContainer([][]byte{[]byte("abc")}, nil)
	_, _, found := c.PrefixSearch([]byte("xyz"))
	require.False(t, found)
}

func TestPrefixContainerPrefixMatchConsumesOneRune(t *testing.T) {
	c := NewPrefixContainer([][]byte{[]byte("abc")}, nil)
	length, _, found := c.PrefixMatch([]byte("你好"))
	require.False(t, found)
	require.Equal(t, len("你"), length)
}
