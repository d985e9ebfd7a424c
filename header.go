package jwt

import (
	"encoding/json"
	"fmt"

	"github.com/axent-pl/jwt/mapx"
	"github.com/axent-pl/jwt/sig"
)

// Header is the first framed document of a token: the fixed alg member plus
// optional caller-defined extension members, rendered as one flat JSON
// object.
type Header[T any] struct {
	// Alg names the signature algorithm the token is signed and verified
	// with. It is the only dispatch input; keys never override it, and the
	// zero value refuses to serialize.
	Alg sig.Algorithm

	// Extra carries extension members merged next to alg, for example kid
	// or typ. Nil means no extensions. On a member name collision the
	// extension value wins.
	Extra *T
}

type headerFixed struct {
	Alg sig.Algorithm `json:"alg"`
}

// MarshalJSON renders the fixed member and the extensions as one flat
// object. Extensions that do not marshal to a JSON object are an error.
func (h Header[T]) MarshalJSON() ([]byte, error) {
	fixed, err := mapx.FromValue(headerFixed{Alg: h.Alg})
	if err != nil {
		return nil, err
	}
	if h.Extra == nil {
		return mapx.Encode(fixed)
	}
	extra, err := mapx.FromValue(h.Extra)
	if err != nil {
		return nil, fmt.Errorf("could not access additional headers: %w", err)
	}
	return mapx.Encode(mapx.Merge(fixed, extra))
}

// UnmarshalJSON decodes the fixed member strictly and the extensions as a
// best effort: when the non-fixed members do not fit T, Extra is left nil
// rather than failing the parse.
func (h *Header[T]) UnmarshalJSON(data []byte) error {
	obj, err := mapx.Decode(data)
	if err != nil {
		return err
	}
	var fixed headerFixed
	if err := json.Unmarshal(data, &fixed); err != nil {
		return err
	}
	if fixed.Alg == sig.AlgorithmUnknown {
		return fmt.Errorf("%w: missing alg", ErrTokenFormat)
	}
	h.Alg = fixed.Alg
	h.Extra = decodeExtra[T](obj, "alg")
	return nil
}

// decodeExtra recovers a *T from the members of obj left after removing the
// fixed keys. No remaining members, or members T cannot absorb, yield nil.
func decodeExtra[T any](obj mapx.Object, fixedKeys ...string) *T {
	rest := mapx.Without(obj, fixedKeys...)
	if len(rest) == 0 {
		return nil
	}
	data, err := mapx.Encode(rest)
	if err != nil {
		return nil
	}
	extra := new(T)
	if err := json.Unmarshal(data, extra); err != nil {
		return nil
	}
	return extra
}
