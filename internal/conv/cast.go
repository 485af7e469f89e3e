package conv

import (
	"errors"
	"fmt"
)

// ErrOverflow is wrapped by every conversion failure.
var ErrOverflow = errors.New("integer overflow")

// Integer is the set of built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// To converts v to the integer type T, failing if the value does not survive
// the round trip or changes sign.
func To[T, F Integer](v F) (T, error) {
	t := T(v)
	if F(t) != v || (v < 0) != (t < 0) {
		var zero T
		return zero, fmt.Errorf("%w: %d cannot be converted to %T", ErrOverflow, v, zero)
	}
	return t, nil
}

// IntToUint64 converts a non-negative int to uint64.
func IntToUint64(v int) (uint64, error) { return To[uint64](v) }

// Uint64ToInt converts v to int.
func Uint64ToInt(v uint64) (int, error) { return To[int](v) }

// IntToUint8 converts v to uint8.
func IntToUint8(v int) (uint8, error) { return To[uint8](v) }
