package simd

import "github.com/hupe1980/kets/phase"

func dotComplexGeneric(aRe, aIm, bRe, bIm []float64) (float64, float64) {
	var re, im float64
	for i := range aRe {
		// conj(a)·b
		re += float64(aRe[i]*bRe[i]) + float64(aIm[i]*bIm[i])
		im += float64(aRe[i]*bIm[i]) - float64(aIm[i]*bRe[i])
	}
	return re, im
}

func sqNormComplexGeneric(re, im []float64) float64 {
	var sum float64
	for i := range re {
		sum += float64(re[i]*re[i]) + float64(im[i]*im[i])
	}
	return sum
}

func subScaledComplexGeneric(cRe, cIm float64, xRe, xIm, yRe, yIm []float64) {
	for i := range xRe {
		yRe[i] -= float64(cRe*xRe[i]) - float64(cIm*xIm[i])
		yIm[i] -= float64(cRe*xIm[i]) + float64(cIm*xRe[i])
	}
}

func dotPolarGeneric(aAbs []float32, aPhase []uint8, bAbs []float32, bPhase []uint8, t *phase.Table) (float32, float32) {
	var re, im float32
	for i := range aAbs {
		abs := aAbs[i] * bAbs[i]
		p := bPhase[i] - aPhase[i]
		re += float32(abs * t.Cos(p))
		im += float32(abs * t.Sin(p))
	}
	return re, im
}

func sqNormReal32Generic(x []float32) float32 {
	var sum float32
	for _, v := range x {
		sum += float32(v * v)
	}
	return sum
}
