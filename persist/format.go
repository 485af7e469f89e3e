package persist

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hupe1980/kets/codec"
	"github.com/hupe1980/kets/internal/conv"
	"github.com/hupe1980/kets/internal/hash"
)

const (
	// Magic identifies a persisted basis ("KETS").
	Magic uint32 = 0x4B455453
	// Version is the current format version.
	Version uint32 = 1

	headerSize = 32

	// maxRawLen bounds the decompressed size accepted from a header.
	maxRawLen = 1 << 34
)

var (
	// ErrCorrupt is returned when a file fails validation.
	ErrCorrupt = errors.New("persist: corrupt basis file")
	// ErrUnsupportedVersion is returned for files written by an unknown
	// format version.
	ErrUnsupportedVersion = errors.New("persist: unsupported format version")
	// ErrKindMismatch is returned when a file holds the other representation.
	ErrKindMismatch = errors.New("persist: basis kind mismatch")
)

// Kind is the representation stored in a file.
type Kind uint8

const (
	// KindLossless marks a lossless.RawBasis payload.
	KindLossless Kind = 1
	// KindCompact marks a compact.RawBasis payload.
	KindCompact Kind = 2
)

// String returns "lossless" or "compact".
func (k Kind) String() string {
	switch k {
	case KindLossless:
		return "lossless"
	case KindCompact:
		return "compact"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Header describes a persisted basis.
//
// Binary layout (32 bytes, little-endian):
//
//	0  magic     uint32
//	4  version   uint32
//	8  kind      uint8
//	9  comp      uint8
//	10 codecLen  uint8
//	11 reserved  uint8
//	12 checksum  uint32  CRC32-C of the stored block
//	16 rawLen    uint64  encoded payload size before compression
//	24 blockLen  uint64  stored block size
//
// The codec name (codecLen bytes) and the block follow.
type Header struct {
	Kind        Kind
	Compression Compression
	Codec       string
	Checksum    uint32
	RawLen      uint64
	BlockLen    uint64
}

// Size returns the total file size described by h.
func (h Header) Size() uint64 {
	return headerSize + uint64(len(h.Codec)) + h.BlockLen
}

// encodeFile marshals raw with c, compresses it and prepends the header.
func encodeFile(kind Kind, raw any, c codec.Codec, comp Compression) ([]byte, error) {
	payload, err := c.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("persist: encode %s basis with %s: %w", kind, c.Name(), err)
	}

	block, used, err := compressBlock(payload, comp)
	if err != nil {
		return nil, fmt.Errorf("persist: compress: %w", err)
	}

	name := c.Name()
	codecLen, err := conv.IntToUint8(len(name))
	if err != nil {
		return nil, fmt.Errorf("persist: codec name %q: %w", name, err)
	}
	rawLen, err := conv.IntToUint64(len(payload))
	if err != nil {
		return nil, err
	}
	blockLen, err := conv.IntToUint64(len(block))
	if err != nil {
		return nil, err
	}

	out := make([]byte, headerSize, headerSize+len(name)+len(block))
	binary.LittleEndian.PutUint32(out[0:], Magic)
	binary.LittleEndian.PutUint32(out[4:], Version)
	out[8] = byte(kind)
	out[9] = byte(used)
	out[10] = codecLen
	binary.LittleEndian.PutUint32(out[12:], hash.CRC32C(block))
	binary.LittleEndian.PutUint64(out[16:], rawLen)
	binary.LittleEndian.PutUint64(out[24:], blockLen)
	out = append(out, name...)
	out = append(out, block...)
	return out, nil
}

// ReadHeader parses and validates the header of a persisted basis without
// decoding the payload.
func ReadHeader(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorrupt, len(data))
	}
	if m := binary.LittleEndian.Uint32(data[0:]); m != Magic {
		return Header{}, fmt.Errorf("%w: bad magic %08x", ErrCorrupt, m)
	}
	if v := binary.LittleEndian.Uint32(data[4:]); v != Version {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}

	h := Header{
		Kind:        Kind(data[8]),
		Compression: Compression(data[9]),
		Checksum:    binary.LittleEndian.Uint32(data[12:]),
		RawLen:      binary.LittleEndian.Uint64(data[16:]),
		BlockLen:    binary.LittleEndian.Uint64(data[24:]),
	}
	codecLen := int(data[10])

	switch {
	case h.Kind != KindLossless && h.Kind != KindCompact:
		return Header{}, fmt.Errorf("%w: unknown kind %d", ErrCorrupt, data[8])
	case h.Compression > CompressionZSTD:
		return Header{}, fmt.Errorf("%w: unknown compression %d", ErrCorrupt, data[9])
	case h.RawLen > maxRawLen:
		return Header{}, fmt.Errorf("%w: payload size %d exceeds limit", ErrCorrupt, h.RawLen)
	case len(data) < headerSize+codecLen:
		return Header{}, fmt.Errorf("%w: truncated codec name", ErrCorrupt)
	}
	h.Codec = string(data[headerSize : headerSize+codecLen])

	if size := h.Size(); size < h.BlockLen || uint64(len(data)) != size {
		return Header{}, fmt.Errorf("%w: file has %d bytes, header describes %d", ErrCorrupt, len(data), size)
	}
	if limit := maxDecodedLen(h.Compression, h.BlockLen); h.RawLen > limit {
		return Header{}, fmt.Errorf("%w: %s block of %d bytes cannot hold %d bytes", ErrCorrupt, h.Compression, h.BlockLen, h.RawLen)
	}
	return h, nil
}

// decodeFile validates data and unmarshals its payload into raw.
func decodeFile(data []byte, want Kind, raw any) (Header, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return Header{}, err
	}
	if h.Kind != want {
		return h, fmt.Errorf("%w: file holds a %s basis, want %s", ErrKindMismatch, h.Kind, want)
	}

	c, ok := codec.ByName(h.Codec)
	if !ok {
		return h, fmt.Errorf("%w: unknown codec %q", ErrCorrupt, h.Codec)
	}

	block := data[headerSize+len(h.Codec):]
	if err := hash.VerifyCRC32C(block, h.Checksum); err != nil {
		return h, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	rawLen, err := conv.Uint64ToInt(h.RawLen)
	if err != nil {
		return h, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	payload, err := decompressBlock(block, h.Compression, rawLen)
	if err != nil {
		return h, err
	}

	if err := c.Unmarshal(payload, raw); err != nil {
		return h, fmt.Errorf("%w: %s payload: %w", ErrCorrupt, h.Codec, err)
	}
	return h, nil
}
