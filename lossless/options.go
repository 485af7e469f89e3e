package lossless

import (
	"github.com/hupe1980/kets"
	"github.com/hupe1980/kets/internal/parallel"
)

type options struct {
	workers int
	logger  *kets.Logger
}

// Option configures Orthonormalize and LossyCompress.
type Option func(*options)

// WithWorkers sets the number of goroutines used inside a single operation.
//
// For Orthonormalize the projections of one incoming ket onto the accepted
// kets are computed in parallel; kets themselves are always processed in
// order. n <= 0 means GOMAXPROCS. The default of 1 runs everything inline.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger configures debug logging of completed operations.
//
// If nil is passed, logging is disabled.
func WithLogger(l *kets.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = kets.NoopLogger()
		}
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{workers: 1}
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = kets.NoopLogger()
	}
	if o.workers <= 0 {
		o.workers = parallel.Workers(o.workers)
	}
	return o
}
