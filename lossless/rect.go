package lossless

import (
	"math"

	"github.com/hupe1980/kets/compact"
)

// Rect is a double-precision complex number in rectangular form.
//
// There is no ordering; use LexicalCompare when one is needed.
type Rect struct {
	Real float64
	Imag float64
}

// Zero returns 0.
func Zero() Rect { return Rect{} }

// One returns 1.
func One() Rect { return Rect{Real: 1} }

// I returns the imaginary unit.
func I() Rect { return Rect{Imag: 1} }

// FromReal returns x + 0i.
func FromReal(x float64) Rect { return Rect{Real: x} }

// FromPhase returns the unit complex number at the given angle.
func FromPhase(radians float64) Rect {
	s, c := math.Sincos(radians)
	return Rect{Real: c, Imag: s}
}

// SqNorm returns |r|².
func (r Rect) SqNorm() float64 { return r.Real*r.Real + r.Imag*r.Imag }

// Norm returns sqrt(SqNorm).
func (r Rect) Norm() float64 { return math.Sqrt(r.SqNorm()) }

// Abs returns |r| computed with hypot.
func (r Rect) Abs() float64 { return math.Hypot(r.Real, r.Imag) }

// Conj returns the complex conjugate.
func (r Rect) Conj() Rect { return Rect{Real: r.Real, Imag: -r.Imag} }

// Add returns r + o.
func (r Rect) Add(o Rect) Rect { return Rect{Real: r.Real + o.Real, Imag: r.Imag + o.Imag} }

// Sub returns r - o.
func (r Rect) Sub(o Rect) Rect { return Rect{Real: r.Real - o.Real, Imag: r.Imag - o.Imag} }

// Mul returns r · o.
func (r Rect) Mul(o Rect) Rect {
	return Rect{
		Real: r.Real*o.Real - r.Imag*o.Imag,
		Imag: r.Real*o.Imag + r.Imag*o.Real,
	}
}

// Scale returns r · f for a real f.
func (r Rect) Scale(f float64) Rect { return Rect{Real: r.Real * f, Imag: r.Imag * f} }

// ToPolar quantizes r into the compact representation.
func (r Rect) ToPolar() compact.Polar { return compact.Quantize(r.Real, r.Imag) }

// LexicalCompare orders a and b by real part, then imaginary part.
// ok is false when a NaN makes the values incomparable.
func LexicalCompare(a, b Rect) (cmp int, ok bool) {
	if c, ok := compare64(a.Real, b.Real); !ok || c != 0 {
		return c, ok
	}
	return compare64(a.Imag, b.Imag)
}

func compare64(a, b float64) (int, bool) {
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	case a == b:
		return 0, true
	default:
		return 0, false
	}
}
