package lossless

import (
	"iter"
	"math"
	"slices"

	"github.com/hupe1980/kets/compact"
	"github.com/hupe1980/kets/internal/check"
	"github.com/hupe1980/kets/internal/simd"
)

// AsRef is implemented by owned and borrowed lossless kets.
type AsRef interface {
	AsRef() KetRef
}

// Ket is an owned lossless ket.
type Ket struct {
	real []float64
	imag []float64
}

// NewKet takes ownership of re and im.
// It panics with *kets.ErrLengthMismatch if their lengths differ.
func NewKet(re, im []float64) Ket {
	check.SameLen("lossless.NewKet", len(re), len(im))
	return Ket{real: re, imag: im}
}

// AsRef borrows k.
func (k Ket) AsRef() KetRef { return KetRef(k) }

// Len returns the number of amplitudes.
func (k Ket) Len() int { return len(k.real) }

// At returns the i-th amplitude.
func (k Ket) At(i int) Rect { return Rect{Real: k.real[i], Imag: k.imag[i]} }

// Real returns the real parts. The slice must not be modified.
func (k Ket) Real() []float64 { return k.real }

// Imag returns the imaginary parts. The slice must not be modified.
func (k Ket) Imag() []float64 { return k.imag }

// Dot returns ⟨k|other⟩.
func (k Ket) Dot(other AsRef) Rect { return k.AsRef().Dot(other) }

// Overlap returns |⟨k|other⟩|².
func (k Ket) Overlap(other AsRef) float64 { return k.AsRef().Overlap(other) }

// SqNorm returns ⟨k|k⟩.
func (k Ket) SqNorm() float64 { return k.AsRef().SqNorm() }

// Norm returns sqrt(SqNorm).
func (k Ket) Norm() float64 { return k.AsRef().Norm() }

// ToNormalized returns a normalized copy of k.
func (k Ket) ToNormalized() Ket { return k.AsRef().ToNormalized() }

// IntoNormalized normalizes k in place and returns it.
// The norm must be non-zero.
func (k Ket) IntoNormalized() Ket {
	inv := 1 / k.Norm()
	for i := range k.real {
		k.real[i] *= inv
		k.imag[i] *= inv
	}
	return k
}

// Scale returns c·k.
func (k Ket) Scale(c Rect) Ket { return k.AsRef().Scale(c) }

// ProjectedOnto returns the projection of k onto other.
func (k Ket) ProjectedOnto(other AsRef) Ket { return k.AsRef().ProjectedOnto(other) }

// All iterates the amplitudes in order.
func (k Ket) All() iter.Seq[Rect] { return k.AsRef().All() }

// Clone returns a deep copy of k.
func (k Ket) Clone() Ket {
	return Ket{real: slices.Clone(k.real), imag: slices.Clone(k.imag)}
}

// KetRef is a borrowed lossless ket, valid only while its owner is alive and
// unmodified.
type KetRef struct {
	real []float64
	imag []float64
}

// NewKetRef wraps existing arrays without copying.
// The caller guarantees len(re) == len(im).
func NewKetRef(re, im []float64) KetRef {
	return KetRef{real: re, imag: im}
}

// AsRef returns r.
func (r KetRef) AsRef() KetRef { return r }

// Len returns the number of amplitudes.
func (r KetRef) Len() int { return len(r.real) }

// At returns the i-th amplitude.
func (r KetRef) At(i int) Rect { return Rect{Real: r.real[i], Imag: r.imag[i]} }

// Real returns the real parts. The slice must not be modified.
func (r KetRef) Real() []float64 { return r.real }

// Imag returns the imaginary parts. The slice must not be modified.
func (r KetRef) Imag() []float64 { return r.imag }

// Dot returns ⟨r|other⟩ = Σ conj(r_i)·other_i.
//
// It panics with *kets.ErrLengthMismatch if the widths differ.
func (r KetRef) Dot(other AsRef) Rect {
	o := other.AsRef()
	check.SameLen("lossless.Dot", r.Len(), o.Len())
	re, im := simd.DotComplex(r.real, r.imag, o.real, o.imag)
	return Rect{Real: re, Imag: im}
}

// Overlap returns |⟨r|other⟩|².
func (r KetRef) Overlap(other AsRef) float64 { return r.Dot(other).SqNorm() }

// SqNorm returns Σ |r_i|².
func (r KetRef) SqNorm() float64 { return simd.SqNormComplex(r.real, r.imag) }

// Norm returns sqrt(SqNorm).
func (r KetRef) Norm() float64 { return math.Sqrt(r.SqNorm()) }

// ToNormalized returns a normalized copy of r.
// The norm must be non-zero.
func (r KetRef) ToNormalized() Ket { return r.Clone().IntoNormalized() }

// Scale returns c·r.
func (r KetRef) Scale(c Rect) Ket {
	re := make([]float64, len(r.real))
	im := make([]float64, len(r.imag))
	for i := range r.real {
		v := c.Mul(r.At(i))
		re[i], im[i] = v.Real, v.Imag
	}
	return Ket{real: re, imag: im}
}

// ProjectedOnto returns |o⟩⟨o|r⟩/⟨o|o⟩, the orthogonal projection of r onto
// the line spanned by other.
func (r KetRef) ProjectedOnto(other AsRef) Ket {
	o := other.AsRef()
	return o.Scale(o.Dot(r).Scale(1 / o.SqNorm()))
}

// All iterates the amplitudes in order. The sequence can be ranged over
// repeatedly.
func (r KetRef) All() iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		for i := range r.real {
			if !yield(r.At(i)) {
				return
			}
		}
	}
}

// Clone copies r into an owned Ket.
func (r KetRef) Clone() Ket {
	return Ket{real: slices.Clone(r.real), imag: slices.Clone(r.imag)}
}

// CompressKet quantizes r amplitude by amplitude.
func (r KetRef) CompressKet() compact.Ket {
	abs := make([]float32, len(r.real))
	ph := make([]uint8, len(r.real))
	for i := range r.real {
		p := compact.Quantize(r.real[i], r.imag[i])
		abs[i], ph[i] = p.Abs, p.Phase
	}
	return compact.NewKet(abs, ph)
}

// CompressKet quantizes k amplitude by amplitude.
func (k Ket) CompressKet() compact.Ket { return k.AsRef().CompressKet() }
