package lossless

import (
	"iter"
	"slices"

	"github.com/hupe1980/kets"
	"github.com/hupe1980/kets/internal/check"
)

// Basis is an owned collection of lossless kets of a common width.
//
// Each ket occupies 2·width consecutive values: the real parts followed by the
// imaginary parts. Invariants: width > 0 and len(data) % (2·width) == 0.
type Basis struct {
	width int
	data  []float64
}

// NewBasis takes ownership of data.
// It panics with *kets.ErrInvalidLayout if the invariants do not hold.
func NewBasis(data []float64, width int) *Basis {
	return RawBasis{Width: width, Data: data}.Validate()
}

// Empty returns a basis of the given width with no kets.
func Empty(width int) *Basis {
	return NewBasis(nil, width)
}

// WithCapacity returns an empty basis with room for rank kets.
func WithCapacity(width, rank int) *Basis {
	b := Empty(width)
	b.data = make([]float64, 0, 2*width*rank)
	return b
}

// Insert appends one ket given as separate real and imaginary parts.
//
// It panics with *kets.ErrLengthMismatch unless both arrays have Width
// elements.
func (b *Basis) Insert(re, im []float64) {
	check.SameLen("lossless.Basis.Insert", b.width, len(re))
	check.SameLen("lossless.Basis.Insert", b.width, len(im))
	b.data = append(b.data, re...)
	b.data = append(b.data, im...)
}

// InsertKet appends a copy of k.
func (b *Basis) InsertKet(k AsRef) {
	r := k.AsRef()
	b.Insert(r.real, r.imag)
}

// AsRef borrows b.
func (b *Basis) AsRef() BasisRef { return BasisRef{width: b.width, data: b.data} }

// Width returns the number of amplitudes per ket.
func (b *Basis) Width() int { return b.width }

// Rank returns the number of kets.
func (b *Basis) Rank() int { return b.AsRef().Rank() }

// Ket returns a view of the i-th ket without copying.
func (b *Basis) Ket(i int) KetRef { return b.AsRef().Ket(i) }

// All iterates (index, ket) pairs in order.
func (b *Basis) All() iter.Seq2[int, KetRef] { return b.AsRef().All() }

// Clone returns a deep copy of b.
func (b *Basis) Clone() *Basis {
	return &Basis{width: b.width, data: slices.Clone(b.data)}
}

// Equal reports whether b and o hold bit-identical data.
func (b *Basis) Equal(o *Basis) bool {
	return b.width == o.width && slices.Equal(b.data, o.data)
}

// Raw converts b into its unchecked serialization form. The array is shared.
func (b *Basis) Raw() RawBasis { return RawBasis{Width: b.width, Data: b.data} }

// BasisRef is a borrowed view of a Basis, valid while the owner is alive and
// unmodified.
type BasisRef struct {
	width int
	data  []float64
}

// Width returns the number of amplitudes per ket.
func (r BasisRef) Width() int { return r.width }

// Rank returns the number of kets.
func (r BasisRef) Rank() int { return len(r.data) / (2 * r.width) }

// Ket returns a view of the i-th ket without copying.
func (r BasisRef) Ket(i int) KetRef {
	w := r.width
	start := 2 * w * i
	return KetRef{
		real: r.data[start : start+w : start+w],
		imag: r.data[start+w : start+2*w : start+2*w],
	}
}

// All iterates (index, ket) pairs in order. The sequence can be ranged over
// repeatedly.
func (r BasisRef) All() iter.Seq2[int, KetRef] {
	return func(yield func(int, KetRef) bool) {
		for i := range r.Rank() {
			if !yield(i, r.Ket(i)) {
				return
			}
		}
	}
}

// RawBasis is the unchecked counterpart of Basis used at the serialization
// boundary.
type RawBasis struct {
	Width int       `json:"width" msgpack:"width"`
	Data  []float64 `json:"data" msgpack:"data"`
}

// Check reports whether r satisfies the Basis invariants.
// The error is a *kets.ErrInvalidLayout.
func (r RawBasis) Check() error {
	if err := r.layoutError(); err != nil {
		return err
	}
	return nil
}

// Validate converts r into a Basis, taking ownership of its array.
// It panics with *kets.ErrInvalidLayout if the invariants do not hold.
func (r RawBasis) Validate() *Basis {
	check.Layout(r.layoutError())
	return &Basis{width: r.Width, data: r.Data}
}

func (r RawBasis) layoutError() *kets.ErrInvalidLayout {
	fail := func(reason string) *kets.ErrInvalidLayout {
		return &kets.ErrInvalidLayout{Kind: "lossless", Width: r.Width, Len: len(r.Data), Reason: reason}
	}
	switch {
	case r.Width <= 0:
		return fail("width must be positive")
	case len(r.Data)%2 != 0, (len(r.Data)/2)%r.Width != 0:
		return fail("length is not a multiple of twice the width")
	}
	return nil
}
