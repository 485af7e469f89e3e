// Package kets represents collections of complex eigenvectors ("kets") and
// provides the primitives needed to compare, orthonormalize and compress them.
//
// Kets typically come from diagonalizing a physical operator, for example the
// dynamical matrix of a phonon calculation. Band-tracking algorithms compare
// eigenvectors computed at neighbouring parameter points through their overlap
// |⟨a|b⟩|², which this module computes at two precisions.
//
// # Representations
//
// The lossless package stores amplitudes as float64 real/imag pairs:
//
//	b := lossless.NewBasis(data, width) // [re..., im...] per ket
//	o := b.Ket(0).Overlap(b.Ket(1))
//	q := b.Orthonormalize()
//
// The compact package stores a float32 magnitude plus an 8-bit quantized
// phase per amplitude, sharing the lookup table from the phase package:
//
//	c := q.LossyCompress()
//	o := c.Ket(0).Overlap(c.Ket(1))
//
// Both packages expose the same capability set (Dot, Overlap, SqNorm, Norm,
// iteration) on their own types; there is no mixed-representation type.
//
// # Errors
//
// Length mismatches and malformed basis layouts are caller bugs: the numerical
// packages panic with *ErrLengthMismatch or *ErrInvalidLayout. Both wrap
// ErrPrecondition. The persist and codec packages return ordinary errors.
//
// # Views
//
// KetRef values returned by Basis.Ket share the basis storage. They stay valid
// only while the basis is alive and not modified through Insert.
package kets
