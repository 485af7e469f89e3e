// Package simd provides the inner-product kernels behind ket overlaps.
//
// Every kernel has two implementations with the same mathematical contract:
//
//   - generic: a single accumulator summing terms in index order 0..n.
//   - vectorized: blocked multi-lane accumulation. The float64 kernels go
//     through gonum's floats package (assembly DotUnitary/AxpyUnitary on
//     amd64); the quantized-phase kernels use four independent lanes.
//
// The vectorized kernels reassociate the sum, so results match the generic
// ones only within floating-point tolerance.
//
// # Selection
//
// Runtime CPU feature detection (golang.org/x/sys/cpu) picks the vectorized
// kernels when the CPU has AVX2 with FMA (amd64) or ASIMD (arm64). Set
// KETS_SIMD=generic to force the index-ordered kernels at runtime, or build
// with -tags noasm to compile them in unconditionally. KETS_SIMD=vectorized
// is honored only on CPUs with the required feature.
package simd
