// Package sig implements the signature engine of the token library: a closed
// algorithm enumeration and sign/verify dispatch over the HMAC and RSA
// primitive families.
package sig

import (
	"crypto"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
	ErrInvalidKey           = errors.New("invalid key material")
	ErrCrypto               = errors.New("crypto primitive failure")
)

// Algorithm represents a supported signature algorithm, each a fixed
// combination of primitive family and digest. The token header's alg field is
// the single source of truth for dispatch; the family is never inferred from
// the key material.
type Algorithm int

const (
	AlgorithmUnknown Algorithm = iota

	// HMAC with SHA-2
	AlgHS256
	AlgHS384
	AlgHS512

	// RSA PKCS#1 v1.5 with SHA-2
	AlgRS256
	AlgRS384
	AlgRS512
)

func (a Algorithm) String() string {
	mapping := map[Algorithm]string{
		AlgHS256: "HS256",
		AlgHS384: "HS384",
		AlgHS512: "HS512",
		AlgRS256: "RS256",
		AlgRS384: "RS384",
		AlgRS512: "RS512",
	}
	if name, ok := mapping[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAlgorithm maps a wire-format algorithm name to its Algorithm value.
func ParseAlgorithm(s string) (Algorithm, error) {
	mapping := map[string]Algorithm{
		"HS256": AlgHS256,
		"HS384": AlgHS384,
		"HS512": AlgHS512,
		"RS256": AlgRS256,
		"RS384": AlgRS384,
		"RS512": AlgRS512,
	}
	if alg, ok := mapping[s]; ok {
		return alg, nil
	}
	return AlgorithmUnknown, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
}

// MarshalJSON encodes the algorithm as its wire name. The unknown value does
// not serialize: an algorithm must always be chosen explicitly.
func (a Algorithm) MarshalJSON() ([]byte, error) {
	name := a.String()
	if name == "unknown" {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, int(a))
	}
	return json.Marshal(name)
}

// UnmarshalJSON decodes a wire-format algorithm name. Names outside the
// enumeration are rejected.
func (a *Algorithm) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	alg, err := ParseAlgorithm(name)
	if err != nil {
		return err
	}
	*a = alg
	return nil
}

// Family distinguishes the primitive families an Algorithm can dispatch to.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyHMAC           // symmetric keyed hash over a shared secret
	FamilyRSA            // asymmetric: private-key sign, public-key verify
)

// CryptoSpec names the digest and primitive family an Algorithm resolves to.
type CryptoSpec struct {
	Hash   crypto.Hash
	Family Family
}

// ToCrypto returns the crypto.Hash and primitive family for the algorithm.
func (a Algorithm) ToCrypto() (CryptoSpec, error) {
	switch a {
	case AlgHS256:
		return CryptoSpec{Hash: crypto.SHA256, Family: FamilyHMAC}, nil
	case AlgHS384:
		return CryptoSpec{Hash: crypto.SHA384, Family: FamilyHMAC}, nil
	case AlgHS512:
		return CryptoSpec{Hash: crypto.SHA512, Family: FamilyHMAC}, nil
	case AlgRS256:
		return CryptoSpec{Hash: crypto.SHA256, Family: FamilyRSA}, nil
	case AlgRS384:
		return CryptoSpec{Hash: crypto.SHA384, Family: FamilyRSA}, nil
	case AlgRS512:
		return CryptoSpec{Hash: crypto.SHA512, Family: FamilyRSA}, nil
	default:
		return CryptoSpec{}, fmt.Errorf("%w: no crypto mapping for %v", ErrUnsupportedAlgorithm, a)
	}
}
