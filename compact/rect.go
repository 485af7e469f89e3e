package compact

import "math"

// Rect is a single-precision complex number in rectangular form.
//
// It is the accumulation type for sums of Polar values, which are not closed
// under addition. Rect deliberately has no ordering; use LexicalCompare when a
// deterministic order is needed.
type Rect struct {
	Real float32
	Imag float32
}

// Zero returns 0.
func Zero() Rect { return Rect{} }

// One returns 1.
func One() Rect { return Rect{Real: 1} }

// I returns the imaginary unit.
func I() Rect { return Rect{Imag: 1} }

// FromReal returns x + 0i.
func FromReal(x float32) Rect { return Rect{Real: x} }

// FromPhase returns the unit complex number at the given angle.
func FromPhase(radians float32) Rect {
	s, c := math.Sincos(float64(radians))
	return Rect{Real: float32(c), Imag: float32(s)}
}

// SqNorm returns |r|².
func (r Rect) SqNorm() float32 { return r.Real*r.Real + r.Imag*r.Imag }

// Norm returns sqrt(SqNorm).
func (r Rect) Norm() float32 { return float32(math.Sqrt(float64(r.SqNorm()))) }

// Abs returns |r| computed with hypot, avoiding intermediate overflow.
func (r Rect) Abs() float32 { return float32(math.Hypot(float64(r.Real), float64(r.Imag))) }

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
func (r Rect) Scale(f float32) Rect { return Rect{Real: r.Real * f, Imag: r.Imag * f} }

// ToPolar quantizes r through the phase table.
func (r Rect) ToPolar() Polar { return PolarFromRect(r) }

// LexicalCompare orders a and b by real part, then imaginary part.
// ok is false when a NaN makes the values incomparable.
func LexicalCompare(a, b Rect) (cmp int, ok bool) {
	if c, ok := compare32(a.Real, b.Real); !ok || c != 0 {
		return c, ok
	}
	return compare32(a.Imag, b.Imag)
}

func compare32(a, b float32) (int, bool) {
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
