package jwt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/axent-pl/jwt/mapx"
	"github.com/google/uuid"
)

// NumericDate is a JSON numeric date: whole seconds since the Unix epoch.
type NumericDate uint64

// NewNumericDate returns the NumericDate for t, for use in claim literals.
func NewNumericDate(t time.Time) *NumericDate {
	d := NumericDate(t.Unix())
	return &d
}

// Time returns the instant the date names.
func (d NumericDate) Time() time.Time {
	return time.Unix(int64(d), 0)
}

// Registered is the fixed claim set of a payload: the registered claim
// names of RFC 7519 §4.1. Every member is optional and omitted from the
// wire form when empty; pointer dates distinguish absent from zero.
type Registered struct {
	Issuer   string `json:"iss,omitempty"`
	Subject  string `json:"sub,omitempty"`
	Audience string `json:"aud,omitempty"`

	// Expiry and activation instants.
	// See
	//
	// - https://datatracker.ietf.org/doc/html/rfc7519#section-4.1.4
	//
	// - https://datatracker.ietf.org/doc/html/rfc7519#section-4.1.5
	ExpiresAt *NumericDate `json:"exp,omitempty"`
	NotBefore *NumericDate `json:"nbf,omitempty"`

	IssuedAt *NumericDate `json:"iat,omitempty"`
	ID       string       `json:"jti,omitempty"`
}

// registeredNames lists the wire names of the fixed claim set.
var registeredNames = []string{"iss", "sub", "aud", "exp", "nbf", "iat", "jti"}

// ValidAt reports whether the temporal claims admit the instant now: the
// token must not be used before nbf and dies exactly at exp. Absent claims
// do not constrain. Both bounds compare against the same now at whole-second
// precision.
func (r Registered) ValidAt(now time.Time) bool {
	ts := now.Unix()
	if r.NotBefore != nil && ts < int64(*r.NotBefore) {
		return false
	}
	if r.ExpiresAt != nil && ts >= int64(*r.ExpiresAt) {
		return false
	}
	return true
}

// Valid reports whether the temporal claims admit the present instant.
func (r Registered) Valid() bool {
	return r.ValidAt(time.Now())
}

// BaseClaims returns a Registered set for a token issued now: iat stamped,
// exp at now+ttl, and a fresh UUID as the token ID.
func BaseClaims(issuer, subject string, ttl time.Duration) Registered {
	now := time.Now()
	return Registered{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: NewNumericDate(now.Add(ttl)),
		IssuedAt:  NewNumericDate(now),
		ID:        uuid.NewString(),
	}
}

// Payload is the second framed document of a token: the registered claims
// plus optional caller-defined extension claims, rendered as one flat JSON
// object exactly like the header.
type Payload[C any] struct {
	Registered

	// Claims carries extension claims merged next to the registered set.
	// Nil means no extensions. On a claim name collision the extension
	// value wins.
	Claims *C
}

// MarshalJSON renders the registered claims and the extensions as one flat
// object. Extensions that do not marshal to a JSON object are an error.
func (p Payload[C]) MarshalJSON() ([]byte, error) {
	fixed, err := mapx.FromValue(p.Registered)
	if err != nil {
		return nil, err
	}
	if p.Claims == nil {
		return mapx.Encode(fixed)
	}
	claims, err := mapx.FromValue(p.Claims)
	if err != nil {
		return nil, fmt.Errorf("could not access additional claims: %w", err)
	}
	return mapx.Encode(mapx.Merge(fixed, claims))
}

// UnmarshalJSON decodes the registered claims strictly and the extensions
// as a best effort: when the non-registered claims do not fit C, Claims is
// left nil rather than failing the parse.
func (p *Payload[C]) UnmarshalJSON(data []byte) error {
	obj, err := mapx.Decode(data)
	if err != nil {
		return err
	}
	var fixed Registered
	if err := json.Unmarshal(data, &fixed); err != nil {
		return err
	}
	p.Registered = fixed
	p.Claims = decodeExtra[C](obj, registeredNames...)
	return nil
}
