// Package hash provides the CRC32-Castagnoli checksums that protect persisted
// bases and S3 uploads.
//
// Go's hash/crc32 uses the SSE4.2 and ARM CRC instructions for this
// polynomial when available.
//
//	sum := hash.CRC32C(block)
//	if err := hash.VerifyCRC32C(block, sum); err != nil { ... }
package hash
