// Package codec centralizes the encoding of raw bases.
//
// Persisted files record the codec name in their header, so changing the
// default codec never breaks existing files: they are decoded with the codec
// they were written with, selected through ByName.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "msgpack":
		return Msgpack{}, true
	default:
		return nil, false
	}
}

// Names lists the stable names accepted by ByName.
func Names() []string {
	return []string{"json", "go-json", "msgpack"}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

// Default is the codec used when none is configured.
//
// Raw bases are long float arrays; msgpack stores them as fixed-width binary
// numbers, which keeps files small and decodes without float parsing.
var Default Codec = Msgpack{}
