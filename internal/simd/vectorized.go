package simd

import (
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/kets/phase"
)

func dotComplexVectorized(aRe, aIm, bRe, bIm []float64) (float64, float64) {
	re := floats.Dot(aRe, bRe) + floats.Dot(aIm, bIm)
	im := floats.Dot(aRe, bIm) - floats.Dot(aIm, bRe)
	return re, im
}

func sqNormComplexVectorized(re, im []float64) float64 {
	return floats.Dot(re, re) + floats.Dot(im, im)
}

func subScaledComplexVectorized(cRe, cIm float64, xRe, xIm, yRe, yIm []float64) {
	floats.AddScaled(yRe, -cRe, xRe)
	floats.AddScaled(yRe, cIm, xIm)
	floats.AddScaled(yIm, -cRe, xIm)
	floats.AddScaled(yIm, -cIm, xRe)
}

func dotPolarVectorized(aAbs []float32, aPhase []uint8, bAbs []float32, bPhase []uint8, t *phase.Table) (float32, float32) {
	n := len(aAbs)
	aPhase, bAbs, bPhase = aPhase[:n], bAbs[:n], bPhase[:n]

	var r0, r1, r2, r3 float32
	var i0, i1, i2, i3 float32

	i := 0
	for ; i+4 <= n; i += 4 {
		m0, p0 := aAbs[i]*bAbs[i], bPhase[i]-aPhase[i]
		m1, p1 := aAbs[i+1]*bAbs[i+1], bPhase[i+1]-aPhase[i+1]
		m2, p2 := aAbs[i+2]*bAbs[i+2], bPhase[i+2]-aPhase[i+2]
		m3, p3 := aAbs[i+3]*bAbs[i+3], bPhase[i+3]-aPhase[i+3]

		r0 += m0 * t.Cos(p0)
		i0 += m0 * t.Sin(p0)
		r1 += m1 * t.Cos(p1)
		i1 += m1 * t.Sin(p1)
		r2 += m2 * t.Cos(p2)
		i2 += m2 * t.Sin(p2)
		r3 += m3 * t.Cos(p3)
		i3 += m3 * t.Sin(p3)
	}

	re := (r0 + r1) + (r2 + r3)
	im := (i0 + i1) + (i2 + i3)
	for ; i < n; i++ {
		m, p := aAbs[i]*bAbs[i], bPhase[i]-aPhase[i]
		re += m * t.Cos(p)
		im += m * t.Sin(p)
	}
	return re, im
}

func sqNormReal32Vectorized(x []float32) float32 {
	n := len(x)
	var s0, s1, s2, s3 float32

	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += x[i] * x[i]
		s1 += x[i+1] * x[i+1]
		s2 += x[i+2] * x[i+2]
		s3 += x[i+3] * x[i+3]
	}

	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		sum += x[i] * x[i]
	}
	return sum
}
