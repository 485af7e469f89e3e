// Package persist stores bases in a self-describing binary format.
//
// A file is a fixed 32-byte header (see Header) followed by the name of the
// codec that encoded the payload and the payload block itself, optionally
// compressed with LZ4 or ZSTD. The block is protected by a CRC32-C checksum.
//
// Decoding never panics on malformed input: the header, checksum, sizes and
// the raw basis layout are all verified before a checked basis is built.
//
//	data, err := persist.EncodeLossless(basis, persist.WithCompression(persist.CompressionZSTD))
//	...
//	basis, err = persist.DecodeLossless(data)
//
// SaveLossless/LoadLossless and their compact counterparts do the same through
// a blobstore.BlobStore.
package persist
