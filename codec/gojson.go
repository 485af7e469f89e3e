package codec

import gojson "github.com/goccy/go-json"

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
//
// Output is byte-compatible with JSON for raw bases (no maps, no HTML), so
// files written by either codec decode with the other.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error) {
	return gojson.MarshalWithOption(v, gojson.DisableHTMLEscape())
}

func (GoJSON) Unmarshal(data []byte, v any) error {
	return gojson.UnmarshalWithOption(data, v, gojson.DecodeFieldPriorityFirstWin())
}

func (GoJSON) Name() string { return "go-json" }

// Append encodes v and appends the result to dst.
func (c GoJSON) Append(dst []byte, v any) ([]byte, error) {
	b, err := c.Marshal(v)
	if err != nil {
		return dst, err
	}
	return append(dst, b...), nil
}
