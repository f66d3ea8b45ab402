package jieba

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeRunes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []rune
	}{
		{"ascii", "abc", []rune{'a', 'b', 'c'}},
		{"chinese", "你好", []rune{'你', '好'}},
		{"mixed", "a你b", []rune{'a', '你', 'b'}},
		{"empty", "", []rune{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			arr, err := DecodeRunes([]byte(tc.input))
			require.NoError(t, err)
			require.Equal(t, tc.want, arr.Runes())
		})
	}
}

func TestDecodeRunesBadUTF8(t *testing.T) {
	_, err := DecodeRunes([]byte{0xff, 0xfe})
	require.Error(t, err)
	var segErr *SegError
	require.ErrorAs(t, err, &segErr)
	require.Equal(t, KindBadUTF8, segErr.Kind())
}

func TestRuneArrayString(t *testing.T) {
	arr, err := DecodeRunes([]byte("你好世界"))
	require.NoError(t, err)
	require.Equal(t, "你好", arr.String(0, 1))
	require.Equal(t, "世界", arr.String(2, 3))
	require.Equal(t, "你好世界", arr.String(0, 3))
}

func TestRuneArrayByteOffsets(t *testing.T) {
	arr, err := DecodeRunes([]byte("a你b"))
	require.NoError(t, err)
	require.Equal(t, uint32(0), arr[0].ByteOffset)
	require.Equal(t, uint32(1), arr[0].ByteLen)
	require.Equal(t, uint32(1), arr[1].ByteOffset)
	require.Equal(t, uint32(3), arr[1].ByteLen)
	require.Equal(t, uint32(4), arr[2].ByteOffset)
}

func TestIsSingleWord(t *testing.T) {
	require.True(t, IsSingleWord([]byte("你")))
	require.True(t, IsSingleWord([]byte("a")))
	require.False(t, IsSingleWord([]byte("你好")))
	require.False(t, IsSingleWord([]byte("")))
}
