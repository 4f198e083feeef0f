package syntacticpath

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalCharacters = errors.New("path contains illegal characters")
	ErrIllegalSegments   = errors.New("path contains illegal segments")
	ErrAbsoluteMismatch  = errors.New("cannot relativize absolute vs relative path")
	ErrNotProperPrefix   = errors.New("relativize requires this path to be a proper prefix of the other path")
)

type wrapError struct {
	underlying error
	msg        string
	cause      error
}

var _ error = (*wrapError)(nil)

func newIllegalCharactersError(path string) error {
	return &wrapError{
		underlying: ErrIllegalCharacters,
		msg:        fmt.Sprintf("path=%q", path),
	}
}

func newIllegalSegmentsError(segments []string) error {
	return &wrapError{
		underlying: ErrIllegalSegments,
		msg:        fmt.Sprintf("segments=%q, illegalSegment=%q", segments, illegalSegment),
	}
}

func newRelativizeError(underlying error, left, right *Path) error {
	return &wrapError{
		underlying: underlying,
		msg:        fmt.Sprintf("left=%q, right=%q", left, right),
	}
}

func (err *wrapError) Error() string {
	if err == nil {
		return "(*wrapError)(nil)"
	}
	message := err.underlying.Error() + ": " + err.msg
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *wrapError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.underlying}
	}
	return []error{err.underlying, err.cause}
}
