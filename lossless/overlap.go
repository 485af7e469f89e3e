package lossless

import (
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/hupe1980/kets/internal/check"
	"github.com/hupe1980/kets/internal/parallel"
)

// OverlapMatrix returns m[i][j] = |⟨a_i|b_j⟩|² for every ket of a and b.
//
// Rows are computed on up to workers goroutines (0 means GOMAXPROCS, 1 runs
// inline). It panics with *kets.ErrLengthMismatch if the widths differ.
func OverlapMatrix(a, b *Basis, workers int) [][]float64 {
	check.SameLen("lossless.OverlapMatrix", a.Width(), b.Width())

	ar, br := a.AsRef(), b.AsRef()
	m := make([][]float64, ar.Rank())
	parallel.For(len(m), parallel.Workers(workers), 1, func(i int) {
		bra := ar.Ket(i)
		row := make([]float64, br.Rank())
		for j := range row {
			row[j] = bra.Overlap(br.Ket(j))
		}
		m[i] = row
	})
	return m
}

// IsOrthonormal reports whether every pair of kets in b has overlap within
// tol of the Kronecker delta.
func (b *Basis) IsOrthonormal(tol float64) bool {
	for i, ki := range b.All() {
		for j, kj := range b.All() {
			if j < i {
				continue
			}
			want := 0.0
			if i == j {
				want = 1
			}
			if !scalar.EqualWithinAbs(ki.Overlap(kj), want, tol) {
				return false
			}
		}
	}
	return true
}
