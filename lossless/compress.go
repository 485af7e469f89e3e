package lossless

import (
	"context"
	"time"

	"github.com/hupe1980/kets/compact"
	"github.com/hupe1980/kets/internal/parallel"
)

// LossyCompress converts b to the compact representation.
//
// Every amplitude is quantized with compact.Quantize: its magnitude is rounded
// to float32 and its angle to the nearest phase byte. Kets keep their order.
// The conversion is deterministic, so compressing the same basis twice yields
// equal results regardless of WithWorkers.
func (b *Basis) LossyCompress(opts ...Option) *compact.Basis {
	o := applyOptions(opts)
	start := time.Now()

	w := b.width
	abs := make([]float32, w*b.Rank())
	ph := make([]uint8, w*b.Rank())

	r := b.AsRef()
	parallel.For(r.Rank(), o.workers, 1, func(i int) {
		k := r.Ket(i)
		off := w * i
		for j := range w {
			p := compact.Quantize(k.real[j], k.imag[j])
			abs[off+j] = p.Abs
			ph[off+j] = p.Phase
		}
	})

	out := compact.NewBasis(abs, ph, w)
	o.logger.WithRank(out.Rank()).WithWidth(w).LogCompress(context.Background(), time.Since(start))
	return out
}
