package lossless_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/kets/lossless"
	"github.com/hupe1980/kets/testutil"
)

func BenchmarkOverlap(b *testing.B) {
	rng := testutil.NewRNG(42)
	for _, n := range []int{16, 64, 256, 1024, 4096, 4096 * 2, 4096 * 4, 4096 * 8, 4096 * 16} {
		bra, ket := rng.LosslessKet(n), rng.LosslessKet(n)
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			b.SetBytes(int64(n) * 32)
			for b.Loop() {
				_ = bra.Overlap(ket)
			}
		})
	}
}

// Thirty kets, so the input stays linearly independent for every width.
func BenchmarkOrthonormalize30(b *testing.B) {
	rng := testutil.NewRNG(42)
	for _, n := range []int{16, 64, 256, 1024} {
		width := max(n, 30)
		input := rng.LosslessBasis(30, width)
		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("width=%d/workers=%d", width, workers), func(b *testing.B) {
				for b.Loop() {
					_ = input.Orthonormalize(lossless.WithWorkers(workers))
				}
			})
		}
	}
}

func BenchmarkLossyCompress(b *testing.B) {
	rng := testutil.NewRNG(42)
	for _, width := range []int{64, 1024} {
		input := rng.OrthonormalBasis(30, width)
		b.Run(fmt.Sprintf("width=%d", width), func(b *testing.B) {
			for b.Loop() {
				_ = input.LossyCompress()
			}
		})
	}
}

func BenchmarkCompactOverlap(b *testing.B) {
	rng := testutil.NewRNG(42)
	for _, n := range []int{16, 256, 4096, 65536} {
		bra, ket := rng.CompactKet(n), rng.CompactKet(n)
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			for b.Loop() {
				_ = bra.Overlap(ket)
			}
		})
	}
}
