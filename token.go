// Package jwt implements compact signed tokens: three dot-joined base64url
// segments carrying a JSON header, a JSON payload, and a signature over the
// first two. Header and payload take optional typed extension members next
// to their fixed shape; signing and verification dispatch on the header's
// alg member over the HS256/384/512 and RS256/384/512 algorithms.
package jwt

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/axent-pl/jwt/logx"
	"github.com/axent-pl/jwt/segment"
	"github.com/axent-pl/jwt/sig"
)

// Algorithm selects the signature scheme a token is signed and verified
// with. The enumeration lives in the sig package; the constants below cover
// all of it.
type Algorithm = sig.Algorithm

const (
	HS256 = sig.AlgHS256
	HS384 = sig.AlgHS384
	HS512 = sig.AlgHS512
	RS256 = sig.AlgRS256
	RS384 = sig.AlgRS384
	RS512 = sig.AlgRS512
)

// Token pairs a header with a payload and, once parsed from wire text,
// remembers that text verbatim. Verification always runs against the
// remembered text, never a re-encoding of it.
type Token[H, C any] struct {
	Header  Header[H]
	Payload Payload[C]

	// raw is the wire text this token was parsed from. Built tokens carry
	// none until their signed output is parsed back.
	raw string
}

// New pairs a header with a payload.
func New[H, C any](header Header[H], payload Payload[C]) Token[H, C] {
	return Token[H, C]{Header: header, Payload: payload}
}

// Parse splits raw into its three segments and decodes the header and
// payload documents. The signature segment is kept for Verify; its
// cryptographic validity is not judged here.
func Parse[H, C any](raw string) (Token[H, C], error) {
	var t Token[H, C]

	parts := strings.Split(raw, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return t, fmt.Errorf("%w: want three dot-separated segments", ErrTokenFormat)
	}
	if err := segment.Unmarshal(parts[0], &t.Header); err != nil {
		logx.L().Debug("could not parse token header", "error", err)
		return Token[H, C]{}, err
	}
	if err := segment.Unmarshal(parts[1], &t.Payload); err != nil {
		logx.L().Debug("could not parse token payload", "error", err)
		return Token[H, C]{}, err
	}

	t.raw = raw
	return t, nil
}

// Sign serializes the token and signs it with key under the header's
// algorithm, returning the full wire text. Signing does not attach the text
// to the token; parse the output to obtain a verifiable value.
func (t Token[H, C]) Sign(key []byte) (string, error) {
	if _, err := t.Header.Alg.ToCrypto(); err != nil {
		return "", err
	}

	headerSeg, err := segment.Marshal(t.Header)
	if err != nil {
		return "", err
	}
	payloadSeg, err := segment.Marshal(t.Payload)
	if err != nil {
		return "", err
	}

	signingInput := headerSeg + "." + payloadSeg
	signature, err := sig.Sign([]byte(signingInput), key, t.Header.Alg)
	if err != nil {
		logx.L().Debug("could not sign token", "alg", t.Header.Alg, "error", err)
		return "", err
	}
	return signingInput + "." + segment.Raw.EncodeBytes(signature), nil
}

// Verify reports whether the token's signature matches key under the
// header's algorithm and its temporal claims admit the present instant,
// both judged against the wire text the token was parsed from. A token
// never parsed from wire text is (false, nil). Unusable key material and
// crypto failures surface as errors; every "ran and did not pass" outcome
// is plain false.
func (t Token[H, C]) Verify(key []byte) (bool, error) {
	if t.raw == "" {
		return false, nil
	}
	if !t.Payload.ValidAt(time.Now()) {
		return false, nil
	}

	// The signature always follows the last dot.
	idx := strings.LastIndex(t.raw, ".")
	signingInput, signatureSeg := t.raw[:idx], t.raw[idx+1:]
	signature, err := segment.Raw.DecodeBytes(signatureSeg)
	if err != nil {
		logx.L().Debug("could not decode token signature", "error", err)
		return false, nil
	}

	ok, err := sig.Verify(signature, []byte(signingInput), key, t.Header.Alg)
	if err != nil {
		logx.L().Debug("could not verify token", "alg", t.Header.Alg, "error", err)
		return false, err
	}
	return ok, nil
}

// Equal reports whether two tokens carry the same header and payload. The
// wire text either may have been parsed from does not participate.
func (t Token[H, C]) Equal(other Token[H, C]) bool {
	return reflect.DeepEqual(t.Header, other.Header) &&
		reflect.DeepEqual(t.Payload, other.Payload)
}

// Raw returns the wire text the token was parsed from, or "" for a built
// token.
func (t Token[H, C]) Raw() string {
	return t.raw
}
