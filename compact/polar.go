package compact

import (
	"math"

	"github.com/hupe1980/kets/phase"
)

// Polar is a lossy complex number: a single-precision magnitude and a phase
// quantized to 1/256 of a turn.
//
// Multiplication rotates phases with exact modulo-256 wraparound. There is no
// addition; convert to Rect with ToRect and sum there.
type Polar struct {
	Abs   float32
	Phase uint8
}

// PolarZero returns 0.
func PolarZero() Polar { return Polar{} }

// PolarOne returns 1.
func PolarOne() Polar { return Polar{Abs: 1} }

// PolarFromReal returns x at phase 0.
func PolarFromReal(x float32) Polar { return Polar{Abs: x} }

// FromPhaseByte returns the unit-magnitude value at phase p.
func FromPhaseByte(p uint8) Polar { return Polar{Abs: 1, Phase: p} }

// SqNorm returns |p|².
func (p Polar) SqNorm() float32 { return p.Abs * p.Abs }

// Conj returns the complex conjugate (phase negated mod 256).
func (p Polar) Conj() Polar { return Polar{Abs: p.Abs, Phase: -p.Phase} }

// Mul returns p · o.
func (p Polar) Mul(o Polar) Polar {
	return Polar{Abs: p.Abs * o.Abs, Phase: p.Phase + o.Phase}
}

// ToRect converts p to rectangular form using t.
func (p Polar) ToRect(t *phase.Table) Rect {
	return Rect{
		Real: p.Abs * t.Cos(p.Phase),
		Imag: p.Abs * t.Sin(p.Phase),
	}
}

// PolarFromRect quantizes r through the shared phase table.
func PolarFromRect(r Rect) Polar { return Quantize(float64(r.Real), float64(r.Imag)) }

// Quantize converts a double-precision rectangular value to Polar using the
// shared phase table. It is the one place where angles become phase bytes.
func Quantize(re, im float64) Polar {
	return Polar{
		Abs:   float32(math.Sqrt(re*re + im*im)),
		Phase: phase.Get().NearestPhase(math.Atan2(im, re)),
	}
}
