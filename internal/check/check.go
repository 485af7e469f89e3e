// Package check holds the panicking precondition assertions shared by the
// numerical packages.
package check

import "github.com/hupe1980/kets"

// SameLen panics with *kets.ErrLengthMismatch if got != want.
func SameLen(op string, want, got int) {
	if want != got {
		panic(&kets.ErrLengthMismatch{Op: op, Expected: want, Actual: got})
	}
}

// Layout panics with *kets.ErrInvalidLayout if err is non-nil.
func Layout(err *kets.ErrInvalidLayout) {
	if err != nil {
		panic(err)
	}
}
