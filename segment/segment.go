// Package segment implements the base64url codec for the framed parts of a
// compact token. A segment carries either raw bytes (signatures) or a JSON
// document (header, payload).
package segment

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrBase64 = errors.New("invalid base64url segment")
	ErrJSON   = errors.New("invalid JSON segment")
)

// Codec selects the base64url variant segments are written and read with.
// The variant is a fixed property of the codec: decoding never guesses
// between the two.
type Codec int

const (
	// Raw is the unpadded base64url variant and the canonical encoding.
	Raw Codec = iota
	// Padded is the '='-padded variant, kept for interoperability with
	// producers of the older framing.
	Padded
)

func (c Codec) encoding() *base64.Encoding {
	if c == Padded {
		return base64.URLEncoding
	}
	return base64.RawURLEncoding
}

// EncodeBytes writes b as a base64url segment.
func (c Codec) EncodeBytes(b []byte) string {
	return c.encoding().EncodeToString(b)
}

// DecodeBytes reads a base64url segment back into bytes.
func (c Codec) DecodeBytes(s string) ([]byte, error) {
	b, err := c.encoding().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBase64, err)
	}
	return b, nil
}

// Marshal encodes v as JSON and writes it as a base64url segment.
func (c Codec) Marshal(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrJSON, err)
	}
	return c.EncodeBytes(b), nil
}

// Unmarshal reads a base64url segment and decodes the JSON document inside
// it into v. The empty segment is a JSON error, not a base64 one: it decodes
// to zero bytes, which form no document.
func (c Codec) Unmarshal(s string, v any) error {
	b, err := c.DecodeBytes(s)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("%w: %w", ErrJSON, err)
	}
	return nil
}

// Marshal encodes v with the canonical codec.
func Marshal(v any) (string, error) { return Raw.Marshal(v) }

// Unmarshal decodes s with the canonical codec.
func Unmarshal(s string, v any) error { return Raw.Unmarshal(s, v) }
