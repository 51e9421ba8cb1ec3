// Package json wraps bytedance/sonic behind the encoding/json API surface the
// rest of the module needs, so callers never import sonic directly.
package json

import (
	stdjson "encoding/json"
	"io"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/decoder"
	"github.com/bytedance/sonic/encoder"
)

type (
	// RawMessage is a raw encoded JSON value.
	RawMessage = stdjson.RawMessage
)

// Marshal returns the JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	return sonic.Marshal(v)
}

// Unmarshal parses the JSON-encoded data and stores the result in v.
func Unmarshal(data []byte, v any) error {
	return sonic.Unmarshal(data, v)
}

// Valid reports whether data is a valid JSON encoding.
func Valid(data []byte) bool {
	return sonic.Valid(data)
}

type (
	Encoder struct {
		enc *encoder.StreamEncoder
	}

	Decoder struct {
		dec *decoder.StreamDecoder
	}
)

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: encoder.NewStreamEncoder(w)}
}

func (e *Encoder) Encode(v any) error {
	return e.enc.Encode(v)
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: decoder.NewStreamDecoder(r)}
}

func (d *Decoder) Decode(v any) error {
	return d.dec.Decode(v)
}
