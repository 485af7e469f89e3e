package persist

import (
	"github.com/hupe1980/kets"
	"github.com/hupe1980/kets/codec"
)

type options struct {
	compression Compression
	codec       codec.Codec
	logger      *kets.Logger
}

// Option configures encoding and blob save/load.
type Option func(*options)

// WithCompression sets the block compression used when encoding.
// Decoding always uses the compression recorded in the header.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithCodec sets the codec used when encoding. Defaults to codec.Default.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithLogger configures logging of Save and Load calls.
//
// If nil is passed, logging is disabled.
func WithLogger(l *kets.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{compression: CompressionNone}
	for _, fn := range opts {
		fn(&o)
	}
	if o.codec == nil {
		o.codec = codec.Default
	}
	if o.logger == nil {
		o.logger = kets.NoopLogger()
	}
	return o
}
