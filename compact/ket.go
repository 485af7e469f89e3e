package compact

import (
	"iter"
	"math"
	"slices"

	"github.com/hupe1980/kets/internal/check"
	"github.com/hupe1980/kets/internal/simd"
	"github.com/hupe1980/kets/phase"
)

// AsRef is implemented by owned and borrowed compact kets.
type AsRef interface {
	AsRef() KetRef
}

// Ket is an owned compact ket: parallel magnitude and phase arrays.
type Ket struct {
	abs   []float32
	phase []uint8
}

// NewKet takes ownership of abs and phases.
// It panics with *kets.ErrLengthMismatch if their lengths differ.
func NewKet(abs []float32, phases []uint8) Ket {
	check.SameLen("compact.NewKet", len(abs), len(phases))
	return Ket{abs: abs, phase: phases}
}

// AsRef borrows k.
func (k Ket) AsRef() KetRef { return KetRef(k) }

// Len returns the number of amplitudes.
func (k Ket) Len() int { return len(k.abs) }

// At returns the i-th amplitude.
func (k Ket) At(i int) Polar { return k.AsRef().At(i) }

// Abs returns the magnitudes. The slice must not be modified.
func (k Ket) Abs() []float32 { return k.abs }

// Phase returns the phase bytes. The slice must not be modified.
func (k Ket) Phase() []uint8 { return k.phase }

// Dot returns ⟨k|other⟩.
func (k Ket) Dot(other AsRef) Rect { return k.AsRef().Dot(other) }

// Overlap returns |⟨k|other⟩|².
func (k Ket) Overlap(other AsRef) float64 { return k.AsRef().Overlap(other) }

// SqNorm returns ⟨k|k⟩.
func (k Ket) SqNorm() float32 { return k.AsRef().SqNorm() }

// Norm returns sqrt(SqNorm).
func (k Ket) Norm() float32 { return k.AsRef().Norm() }

// ToNormalized returns a normalized copy of k.
func (k Ket) ToNormalized() Ket { return k.AsRef().ToNormalized() }

// IntoNormalized normalizes k in place and returns it.
// The norm must be non-zero.
func (k Ket) IntoNormalized() Ket {
	norm := k.Norm()
	for i := range k.abs {
		k.abs[i] /= norm
	}
	return k
}

// Scale returns c·k.
func (k Ket) Scale(c Polar) Ket { return k.AsRef().Scale(c) }

// ProjectedOnto returns the projection of k onto other.
func (k Ket) ProjectedOnto(other AsRef) Ket { return k.AsRef().ProjectedOnto(other) }

// All iterates the amplitudes in order.
func (k Ket) All() iter.Seq[Polar] { return k.AsRef().All() }

// Clone returns a deep copy of k.
func (k Ket) Clone() Ket {
	return Ket{abs: slices.Clone(k.abs), phase: slices.Clone(k.phase)}
}

// KetRef is a borrowed compact ket. It shares storage with the Ket or Basis it
// came from and is valid only while that owner is alive and unmodified.
type KetRef struct {
	abs   []float32
	phase []uint8
}

// NewKetRef wraps existing arrays without copying.
// The caller guarantees len(abs) == len(phases).
func NewKetRef(abs []float32, phases []uint8) KetRef {
	return KetRef{abs: abs, phase: phases}
}

// AsRef returns r.
func (r KetRef) AsRef() KetRef { return r }

// Len returns the number of amplitudes.
func (r KetRef) Len() int { return len(r.abs) }

// At returns the i-th amplitude.
func (r KetRef) At(i int) Polar { return Polar{Abs: r.abs[i], Phase: r.phase[i]} }

// Abs returns the magnitudes. The slice must not be modified.
func (r KetRef) Abs() []float32 { return r.abs }

// Phase returns the phase bytes. The slice must not be modified.
func (r KetRef) Phase() []uint8 { return r.phase }

// Dot returns ⟨r|other⟩ = Σ conj(r_i)·other_i, each product converted to Rect
// through the shared phase table before summation.
//
// It panics with *kets.ErrLengthMismatch if the widths differ.
func (r KetRef) Dot(other AsRef) Rect {
	o := other.AsRef()
	check.SameLen("compact.Dot", r.Len(), o.Len())
	re, im := simd.DotPolar(r.abs, r.phase, o.abs, o.phase, phase.Get())
	return Rect{Real: re, Imag: im}
}

// Overlap returns |⟨r|other⟩|².
func (r KetRef) Overlap(other AsRef) float64 {
	return float64(r.Dot(other).SqNorm())
}

// SqNorm returns Σ |r_i|², computed from the magnitudes alone.
func (r KetRef) SqNorm() float32 { return simd.SqNormReal32(r.abs) }

// Norm returns sqrt(SqNorm).
func (r KetRef) Norm() float32 { return float32(math.Sqrt(float64(r.SqNorm()))) }

// ToNormalized returns a normalized copy of r.
// The norm must be non-zero.
func (r KetRef) ToNormalized() Ket {
	norm := r.Norm()
	abs := make([]float32, len(r.abs))
	for i, a := range r.abs {
		abs[i] = a / norm
	}
	return Ket{abs: abs, phase: slices.Clone(r.phase)}
}

// Scale returns c·r.
func (r KetRef) Scale(c Polar) Ket {
	abs := make([]float32, len(r.abs))
	ph := make([]uint8, len(r.phase))
	for i := range r.abs {
		abs[i] = r.abs[i] * c.Abs
		ph[i] = r.phase[i] + c.Phase
	}
	return Ket{abs: abs, phase: ph}
}

// ProjectedOnto returns |o⟩⟨o|r⟩/⟨o|o⟩, the orthogonal projection of r onto
// the line spanned by other. The coefficient is quantized like any other
// compact amplitude.
func (r KetRef) ProjectedOnto(other AsRef) Ket {
	o := other.AsRef()
	coef := o.Dot(r).Scale(1 / o.SqNorm())
	return o.Scale(PolarFromRect(coef))
}

// All iterates the amplitudes in order. The sequence can be ranged over
// repeatedly.
func (r KetRef) All() iter.Seq[Polar] {
	return func(yield func(Polar) bool) {
		for i := range r.abs {
			if !yield(r.At(i)) {
				return
			}
		}
	}
}

// Clone copies r into an owned Ket.
func (r KetRef) Clone() Ket {
	return Ket{abs: slices.Clone(r.abs), phase: slices.Clone(r.phase)}
}
