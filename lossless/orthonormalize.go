package lossless

import (
	"context"
	"time"

	"github.com/hupe1980/kets/internal/parallel"
	"github.com/hupe1980/kets/internal/simd"
)

// Projection coefficients are only fanned out once there are enough accepted
// kets to keep every worker busy.
const minProjectionsPerWorker = 4

// Orthonormalize returns an orthonormal basis spanning the same space as b,
// using Modified Gram-Schmidt.
//
// Kets are processed in order. Each one has its projection onto every
// previously accepted output ket subtracted, in output order, and is then
// normalized and appended. b is not modified.
//
// With WithWorkers > 1 the projection coefficients of one ket are computed
// concurrently against the current vector and subtracted afterwards, and the
// whole correction is applied twice. This keeps the orthogonality of the
// sequential path.
//
// Input kets that are linearly dependent on their predecessors produce a
// zero-norm vector; normalizing it is undefined.
func (b *Basis) Orthonormalize(opts ...Option) *Basis {
	o := applyOptions(opts)
	start := time.Now()

	w := b.width
	out := WithCapacity(w, b.Rank())
	re := make([]float64, w)
	im := make([]float64, w)

	var coefs []Rect
	if o.workers > 1 {
		coefs = make([]Rect, b.Rank())
	}

	for _, k := range b.All() {
		copy(re, k.real)
		copy(im, k.imag)
		v := KetRef{real: re, imag: im}

		if o.workers > 1 {
			out.correctParallel(v, coefs[:out.Rank()], o.workers)
		} else {
			out.correct(v)
		}

		inv := 1 / v.Norm()
		for i := range re {
			re[i] *= inv
			im[i] *= inv
		}
		out.Insert(re, im)
	}

	o.logger.WithRank(out.Rank()).WithWidth(w).LogOrthonormalize(context.Background(), o.workers, time.Since(start))
	return out
}

// correct subtracts from v its projection onto every ket of the orthonormal
// basis b, one ket at a time.
func (b *Basis) correct(v KetRef) {
	for _, e := range b.All() {
		c := e.Dot(v)
		simd.SubScaledComplex(c.Real, c.Imag, e.real, e.imag, v.real, v.imag)
	}
}

// correctParallel is the blocked form of correct: coefficients against the
// current v are computed concurrently, then subtracted in order. Two passes
// restore the accuracy lost by not updating v between dot products.
func (b *Basis) correctParallel(v KetRef, coefs []Rect, workers int) {
	r := b.AsRef()
	for range 2 {
		parallel.For(len(coefs), workers, minProjectionsPerWorker, func(j int) {
			coefs[j] = r.Ket(j).Dot(v)
		})
		for j, c := range coefs {
			e := r.Ket(j)
			simd.SubScaledComplex(c.Real, c.Imag, e.real, e.imag, v.real, v.imag)
		}
	}
}
