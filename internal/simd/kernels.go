package simd

import "github.com/hupe1980/kets/phase"

// Kernel function pointers, set once at init.
var (
	kernelDotComplex       = dotComplexGeneric
	kernelSqNormComplex    = sqNormComplexGeneric
	kernelSubScaledComplex = subScaledComplexGeneric
	kernelDotPolar         = dotPolarGeneric
	kernelSqNormReal32     = sqNormReal32Generic
)

func useGeneric() {
	kernelDotComplex = dotComplexGeneric
	kernelSqNormComplex = sqNormComplexGeneric
	kernelSubScaledComplex = subScaledComplexGeneric
	kernelDotPolar = dotPolarGeneric
	kernelSqNormReal32 = sqNormReal32Generic
}

func useVectorized() {
	kernelDotComplex = dotComplexVectorized
	kernelSqNormComplex = sqNormComplexVectorized
	kernelSubScaledComplex = subScaledComplexVectorized
	kernelDotPolar = dotPolarVectorized
	kernelSqNormReal32 = sqNormReal32Vectorized
}

// DotComplex returns Σ conj(a_i)·b_i for complex vectors stored as split
// real/imag arrays.
//
// SAFETY: all four slices must have the same length. Callers check.
func DotComplex(aRe, aIm, bRe, bIm []float64) (re, im float64) {
	return kernelDotComplex(aRe, aIm, bRe, bIm)
}

// SqNormComplex returns Σ |x_i|².
func SqNormComplex(re, im []float64) float64 {
	return kernelSqNormComplex(re, im)
}

// SubScaledComplex computes y -= c·x in place.
//
// SAFETY: x and y must have the same length.
func SubScaledComplex(cRe, cIm float64, xRe, xIm, yRe, yIm []float64) {
	kernelSubScaledComplex(cRe, cIm, xRe, xIm, yRe, yIm)
}

// DotPolar returns Σ conj(a_i)·b_i for quantized-phase vectors, converting
// each product to rectangular form through the table before summing.
//
// SAFETY: all four slices must have the same length.
func DotPolar(aAbs []float32, aPhase []uint8, bAbs []float32, bPhase []uint8, t *phase.Table) (re, im float32) {
	return kernelDotPolar(aAbs, aPhase, bAbs, bPhase, t)
}

// SqNormReal32 returns Σ x_i².
func SqNormReal32(x []float32) float32 {
	return kernelSqNormReal32(x)
}
