package persist

import (
	"context"
	"fmt"

	"github.com/hupe1980/kets/blobstore"
	"github.com/hupe1980/kets/compact"
	"github.com/hupe1980/kets/lossless"
)

// EncodeLossless serializes b into the binary file format.
func EncodeLossless(b *lossless.Basis, opts ...Option) ([]byte, error) {
	o := applyOptions(opts)
	return encodeFile(KindLossless, b.Raw(), o.codec, o.compression)
}

// EncodeCompact serializes b into the binary file format.
func EncodeCompact(b *compact.Basis, opts ...Option) ([]byte, error) {
	o := applyOptions(opts)
	return encodeFile(KindCompact, b.Raw(), o.codec, o.compression)
}

// DecodeLossless parses a file written by EncodeLossless.
//
// Malformed input is reported as an error wrapping ErrCorrupt,
// ErrUnsupportedVersion or ErrKindMismatch; it never panics.
func DecodeLossless(data []byte) (*lossless.Basis, error) {
	var raw lossless.RawBasis
	if _, err := decodeFile(data, KindLossless, &raw); err != nil {
		return nil, err
	}
	if err := raw.Check(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return raw.Validate(), nil
}

// DecodeCompact parses a file written by EncodeCompact.
func DecodeCompact(data []byte) (*compact.Basis, error) {
	var raw compact.RawBasis
	if _, err := decodeFile(data, KindCompact, &raw); err != nil {
		return nil, err
	}
	if err := raw.Check(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return raw.Validate(), nil
}

// File is a decoded basis of either kind. Exactly one of Lossless and Compact
// is set, matching Header.Kind.
type File struct {
	Header   Header
	Lossless *lossless.Basis
	Compact  *compact.Basis
}

// Width returns the ket width of the stored basis.
func (f *File) Width() int {
	if f.Lossless != nil {
		return f.Lossless.Width()
	}
	return f.Compact.Width()
}

// Rank returns the number of stored kets.
func (f *File) Rank() int {
	if f.Lossless != nil {
		return f.Lossless.Rank()
	}
	return f.Compact.Rank()
}

// Decode parses a file of either kind.
func Decode(data []byte) (*File, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	f := &File{Header: h}
	switch h.Kind {
	case KindLossless:
		f.Lossless, err = DecodeLossless(data)
	case KindCompact:
		f.Compact, err = DecodeCompact(data)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// SaveLossless encodes b and stores it under name.
func SaveLossless(ctx context.Context, store blobstore.BlobStore, name string, b *lossless.Basis, opts ...Option) error {
	return save(ctx, store, name, opts, func() ([]byte, error) {
		return EncodeLossless(b, opts...)
	})
}

// SaveCompact encodes b and stores it under name.
func SaveCompact(ctx context.Context, store blobstore.BlobStore, name string, b *compact.Basis, opts ...Option) error {
	return save(ctx, store, name, opts, func() ([]byte, error) {
		return EncodeCompact(b, opts...)
	})
}

// LoadLossless reads and decodes the lossless basis stored under name.
// A missing blob yields an error satisfying errors.Is(err, blobstore.ErrNotFound).
func LoadLossless(ctx context.Context, store blobstore.BlobStore, name string, opts ...Option) (*lossless.Basis, error) {
	return load(ctx, store, name, opts, DecodeLossless)
}

// LoadCompact reads and decodes the compact basis stored under name.
func LoadCompact(ctx context.Context, store blobstore.BlobStore, name string, opts ...Option) (*compact.Basis, error) {
	return load(ctx, store, name, opts, DecodeCompact)
}

// Load reads and decodes the basis stored under name, whatever its kind.
func Load(ctx context.Context, store blobstore.BlobStore, name string, opts ...Option) (*File, error) {
	return load(ctx, store, name, opts, Decode)
}

func save(ctx context.Context, store blobstore.BlobStore, name string, opts []Option, encode func() ([]byte, error)) error {
	o := applyOptions(opts)

	data, err := encode()
	if err == nil {
		err = store.Put(ctx, name, data)
		if err != nil {
			err = fmt.Errorf("persist: put %q: %w", name, err)
		}
	}
	o.logger.WithName(name).LogSave(ctx, len(data), err)
	return err
}

func load[T any](ctx context.Context, store blobstore.BlobStore, name string, opts []Option, decode func([]byte) (T, error)) (T, error) {
	log := applyOptions(opts).logger.WithName(name)

	var zero T
	data, err := store.Get(ctx, name)
	if err != nil {
		err = fmt.Errorf("persist: get %q: %w", name, err)
		log.LogLoad(ctx, err)
		return zero, err
	}

	v, err := decode(data)
	if err != nil {
		err = fmt.Errorf("persist: decode %q: %w", name, err)
		log.LogLoad(ctx, err)
		return zero, err
	}
	log.LogLoad(ctx, nil)
	return v, nil
}
