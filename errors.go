package kets

import (
	"errors"
	"fmt"
)

// ErrPrecondition is the root cause of every panic raised by the numerical
// packages. Callers that recover can test for it with errors.Is.
var ErrPrecondition = errors.New("kets: precondition violated")

// ErrLengthMismatch indicates that two arrays that must be paired element by
// element have different lengths: the two component arrays of a ket, the two
// kets of a Dot/Overlap, or a ket inserted into a basis of another width.
//
// It is raised with panic, never returned.
type ErrLengthMismatch struct {
	Op       string
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("%s: length mismatch: expected %d, got %d", e.Op, e.Expected, e.Actual)
}

func (e *ErrLengthMismatch) Unwrap() error { return ErrPrecondition }

// ErrInvalidLayout indicates flat basis data whose length does not fit the
// declared width, e.g. a raw basis decoded from storage.
//
// Kind is "lossless" or "compact".
type ErrInvalidLayout struct {
	Kind   string
	Width  int
	Len    int
	Reason string
}

func (e *ErrInvalidLayout) Error() string {
	return fmt.Sprintf("invalid %s basis layout (width %d, len %d): %s", e.Kind, e.Width, e.Len, e.Reason)
}

func (e *ErrInvalidLayout) Unwrap() error { return ErrPrecondition }
