// Package compact implements the reduced-memory ket representation.
//
// Each amplitude is a Polar value: a float32 magnitude and an 8-bit phase
// (1/256 of a turn). A compact ket uses 5 bytes per amplitude instead of 16,
// and its phase array compresses well, which makes it suitable for storing
// many eigenvector sets for band uncrossing.
//
// Inner products convert each conj(a_i)·b_i term to a float32 Rect through
// the shared phase.Table and sum those; Overlap widens the result to float64.
//
// Compact bases are produced from lossless ones with
// lossless.Basis.LossyCompress. There is no decompression step.
package compact
