package hash

import (
	"fmt"
	"hash"
	"hash/crc32"
)

var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// NewCRC32C returns a streaming CRC32-Castagnoli hash.
func NewCRC32C() hash.Hash32 {
	return crc32.New(crc32cTable)
}

// MismatchError reports a failed checksum verification.
type MismatchError struct {
	Want, Got uint32
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: want %08x, got %08x", e.Want, e.Got)
}

// VerifyCRC32C returns a *MismatchError unless data hashes to want.
func VerifyCRC32C(data []byte, want uint32) error {
	if got := CRC32C(data); got != want {
		return &MismatchError{Want: want, Got: got}
	}
	return nil
}
