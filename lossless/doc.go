// Package lossless provides double-precision complex kets and bases.
//
// A lossless ket stores its amplitudes as a split real/imaginary pair of
// float64 arrays. A Basis stores many kets of one width in a single flat array
// with layout [re_0..re_{w-1}, im_0..im_{w-1}] per ket.
//
// Lossless bases are the working form: they are orthonormalized in place with
// Modified Gram-Schmidt and then converted to the compact representation with
// LossyCompress.
package lossless
