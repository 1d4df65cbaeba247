package triple

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (t Triple) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (t *Triple) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

var (
	_ msgpack.CustomEncoder = Triple{}
	_ msgpack.CustomDecoder = (*Triple)(nil)
)

// EncodeMsgpack stores the triple as its canonical string so cached payloads
// stay readable and survive vocabulary reordering.
func (t Triple) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(t.String())
}

// DecodeMsgpack reads a canonical string written by EncodeMsgpack.
func (t *Triple) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return fmt.Errorf("decode target triple: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
