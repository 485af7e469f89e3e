package compact

import (
	"iter"
	"slices"

	"github.com/hupe1980/kets"
	"github.com/hupe1980/kets/internal/check"
)

// Basis is an owned collection of compact kets of a common width.
//
// Magnitudes and phases are stored as two parallel flat arrays, ket-major.
// Invariants: width > 0, len(abs) == len(phase), len(abs) % width == 0.
//
// Kets used for eigenvector comparison SHOULD be orthonormal; Basis does not
// enforce it.
type Basis struct {
	width int
	abs   []float32
	phase []uint8
}

// NewBasis takes ownership of the flat arrays.
// It panics with *kets.ErrInvalidLayout if the invariants do not hold.
func NewBasis(abs []float32, phases []uint8, width int) *Basis {
	return RawBasis{Width: width, Abs: abs, Phase: phases}.Validate()
}

// Empty returns a basis of the given width with no kets.
func Empty(width int) *Basis {
	return NewBasis(nil, nil, width)
}

// Insert appends one ket. Previously returned KetRefs may no longer alias the
// basis storage afterwards.
//
// It panics with *kets.ErrLengthMismatch unless both arrays have Width elements.
func (b *Basis) Insert(abs []float32, phases []uint8) {
	check.SameLen("compact.Basis.Insert", b.width, len(abs))
	check.SameLen("compact.Basis.Insert", b.width, len(phases))
	b.abs = append(b.abs, abs...)
	b.phase = append(b.phase, phases...)
}

// InsertKet appends a copy of k.
func (b *Basis) InsertKet(k AsRef) {
	r := k.AsRef()
	b.Insert(r.abs, r.phase)
}

// AsRef borrows b.
func (b *Basis) AsRef() BasisRef {
	return BasisRef{width: b.width, abs: b.abs, phase: b.phase}
}

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
	return &Basis{width: b.width, abs: slices.Clone(b.abs), phase: slices.Clone(b.phase)}
}

// Equal reports whether b and o hold bit-identical data.
func (b *Basis) Equal(o *Basis) bool {
	return b.width == o.width && slices.Equal(b.abs, o.abs) && slices.Equal(b.phase, o.phase)
}

// Raw converts b into its unchecked serialization form. The arrays are shared,
// not copied, so b must not be used after the raw value is modified.
func (b *Basis) Raw() RawBasis {
	return RawBasis{Width: b.width, Abs: b.abs, Phase: b.phase}
}

// BasisRef is a borrowed view of a Basis, valid while the owner is alive and
// unmodified.
type BasisRef struct {
	width int
	abs   []float32
	phase []uint8
}

// Width returns the number of amplitudes per ket.
func (r BasisRef) Width() int { return r.width }

// Rank returns the number of kets.
func (r BasisRef) Rank() int { return len(r.abs) / r.width }

// Ket returns a view of the i-th ket without copying.
func (r BasisRef) Ket(i int) KetRef {
	w := r.width
	return KetRef{
		abs:   r.abs[w*i : w*(i+1)],
		phase: r.phase[w*i : w*(i+1)],
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
	Abs   []float32 `json:"abs" msgpack:"abs"`
	Phase []uint8   `json:"phase" msgpack:"phase"`
}

// Check reports whether r satisfies the Basis invariants.
// The error is a *kets.ErrInvalidLayout.
func (r RawBasis) Check() error {
	if err := r.layoutError(); err != nil {
		return err
	}
	return nil
}

// Validate converts r into a Basis, taking ownership of its arrays.
// It panics with *kets.ErrInvalidLayout if the invariants do not hold.
func (r RawBasis) Validate() *Basis {
	check.Layout(r.layoutError())
	return &Basis{width: r.Width, abs: r.Abs, phase: r.Phase}
}

func (r RawBasis) layoutError() *kets.ErrInvalidLayout {
	fail := func(reason string) *kets.ErrInvalidLayout {
		return &kets.ErrInvalidLayout{Kind: "compact", Width: r.Width, Len: len(r.Abs), Reason: reason}
	}
	switch {
	case r.Width <= 0:
		return fail("width must be positive")
	case len(r.Abs) != len(r.Phase):
		return fail("abs and phase lengths differ")
	case len(r.Abs)%r.Width != 0:
		return fail("length is not a multiple of width")
	}
	return nil
}
