package jieba

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegErrorMessageWithAndWithoutCause(t *testing.T) {
	plain := malformedDictf("bad line %d", 3)
	require.Equal(t, "malformed_dict: bad line 3", plain.Error())

	wrapped := ioErrorf(errors.New("disk full"), "reading %s", "dict.txt")
	require.Contains(t, wrapped.Error(), "io_error: reading dict.txt:")
	require.Contains(t, wrapped.Error(), "disk full")
}

func TestSegErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	wrapped := ioErrorf(cause, "reading dict.txt")
	require.ErrorIs(t, wrapped, cause)
}

func TestSegErrorKind(t *testing.T) {
	err := badUTF8f("bad byte")
	var segErr *SegError
	require.ErrorAs(t, err, &segErr)
	require.Equal(t, KindBadUTF8, segErr.Kind())
}

func TestSegErrorIsMatchesSentinelByKindOnly(t *testing.T) {
	err := malformedModelf("missing START section")
	require.ErrorIs(t, err, ErrMalformedModel)
	require.False(t, errors.Is(err, ErrBadUTF8))
}

func TestErrDuplicateSeparator(t *testing.T) {
	err := errDuplicateSeparator(' ')
	require.ErrorIs(t, err, ErrDuplicateSeparator)
	require.Contains(t, err.Error(), "duplicate separator")
}

func TestKindString(t *testing.T) {
	require.Equal(t, "io_error", KindIO.String())
	require.Equal(t, "malformed_dict", KindMalformedDict.String())
	require.Equal(t, "malformed_model", KindMalformedModel.String())
	require.Equal(t, "bad_utf8", KindBadUTF8.String())
	require.Equal(t, "duplicate_separator", KindDuplicateSeparator.String())
	require.Equal(t, "unknown", Kind(99).String())
}
