package jieba

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is a closed set of error categories a Segmenter can produce (spec §7).
type Kind int

const (
	// KindIO means a dictionary/model/IDF/stop-word file could not be opened or read.
	KindIO Kind = iota
	// KindMalformedDict means a dictionary line had the wrong field count or an unparsable number.
	KindMalformedDict
	// KindMalformedModel means the HMM model file is missing a section or has a malformed emission pair.
	KindMalformedModel
	// KindBadUTF8 means a byte sequence did not decode as valid UTF-8.
	KindBadUTF8
	// KindDuplicateSeparator means ResetSeparators was given a string with a repeated rune.
	KindDuplicateSeparator
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io_error"
	case KindMalformedDict:
		return "malformed_dict"
	case KindMalformedModel:
		return "malformed_model"
	case KindBadUTF8:
		return "bad_utf8"
	case KindDuplicateSeparator:
		return "duplicate_separator"
	default:
		return "unknown"
	}
}

// SegError is the single error type the package returns. Construction helpers
// (ioErrorf, malformedDictf, ...) attach a Kind so callers can branch with
// errors.As/errors.Is without string matching.
type SegError struct {
	kind Kind
	msg  string
	err  error
}

func (e *SegError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

func (e *SegError) Unwrap() error { return e.err }

// Kind reports the error category, for callers that want to branch on it.
func (e *SegError) Kind() Kind { return e.kind }

// Is lets errors.Is(err, ErrBadUTF8) etc. match regardless of message/wrapped cause.
func (e *SegError) Is(target error) bool {
	other, ok := target.(*SegError)
	if !ok {
		return false
	}
	return other.kind == e.kind && other.msg == ""
}

// Sentinel values usable with errors.Is. Their msg is intentionally empty;
// SegError.Is ignores msg on the target side.
var (
	ErrIO                = &SegError{kind: KindIO}
	ErrMalformedDict     = &SegError{kind: KindMalformedDict}
	ErrMalformedModel    = &SegError{kind: KindMalformedModel}
	ErrBadUTF8           = &SegError{kind: KindBadUTF8}
	ErrDuplicateSeparator = &SegError{kind: KindDuplicateSeparator}
)

func ioErrorf(cause error, format string, args ...interface{}) error {
	return &SegError{kind: KindIO, msg: fmt.Sprintf(format, args...), err: errors.WithStack(cause)}
}

func malformedDictf(format string, args ...interface{}) error {
	return &SegError{kind: KindMalformedDict, msg: fmt.Sprintf(format, args...)}
}

func malformedModelf(format string, args ...interface{}) error {
	return &SegError{kind: KindMalformedModel, msg: fmt.Sprintf(format, args...)}
}

func badUTF8f(format string, args ...interface{}) error {
	return &SegError{kind: KindBadUTF8, msg: fmt.Sprintf(format, args...)}
}

func errDuplicateSeparator(r rune) error {
	return &SegError{kind: KindDuplicateSeparator, msg: fmt.Sprintf("duplicate separator %q", r)}
}
