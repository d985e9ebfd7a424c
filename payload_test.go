package jwt_test

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/axent-pl/jwt"
	"github.com/axent-pl/jwt/segment"
	"github.com/google/uuid"
)

type userClaims struct {
	Name  string `json:"name,omitempty"`
	Admin bool   `json:"admin,omitempty"`
}

const knownPayloadSegment = "eyJzdWIiOiIxMjM0NTY3ODkwIiwibmFtZSI6IkpvaG4gRG9lIiwiYWRtaW4iOnRydWV9"

func TestPayloadUnmarshal(t *testing.T) {
	var p jwt.Payload[userClaims]
	if err := segment.Unmarshal(knownPayloadSegment, &p); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if p.Subject != "1234567890" {
		t.Errorf("sub = %q, want %q", p.Subject, "1234567890")
	}
	if p.Claims == nil || p.Claims.Name != "John Doe" || !p.Claims.Admin {
		t.Errorf("Claims = %+v, want John Doe with admin set", p.Claims)
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	now := time.Now()
	orig := jwt.Payload[userClaims]{
		Registered: jwt.Registered{
			Subject:   "1234567890",
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(5 * time.Minute)),
		},
		Claims: &userClaims{Name: "John Doe", Admin: true},
	}
	seg, err := segment.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	var back jwt.Payload[userClaims]
	if err := segment.Unmarshal(seg, &back); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if !reflect.DeepEqual(orig, back) {
		t.Errorf("round trip = %+v, want %+v", back, orig)
	}
}

func TestPayloadRegisteredOnly(t *testing.T) {
	seg, err := segment.Marshal(jwt.Payload[userClaims]{
		Registered: jwt.Registered{Subject: "svc"},
	})
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	var back jwt.Payload[userClaims]
	if err := segment.Unmarshal(seg, &back); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if back.Claims != nil {
		t.Errorf("Claims = %+v, want nil when only registered claims are present", back.Claims)
	}
}

func TestPayloadUnmarshalRejects(t *testing.T) {
	var p jwt.Payload[userClaims]
	if err := json.Unmarshal([]byte(`{"exp":"tomorrow"}`), &p); err == nil {
		t.Error("Unmarshal() succeeded unexpectedly for a malformed exp")
	}
	if err := json.Unmarshal([]byte(`null`), &p); err == nil {
		t.Error("Unmarshal() succeeded unexpectedly for null")
	}
}

func TestRegisteredValidAt(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	num := func(offset time.Duration) *jwt.NumericDate {
		return jwt.NewNumericDate(now.Add(offset))
	}
	tests := []struct {
		name string
		reg  jwt.Registered
		want bool
	}{
		{"no temporal claims", jwt.Registered{}, true},
		{"inside window", jwt.Registered{NotBefore: num(-time.Minute), ExpiresAt: num(time.Minute)}, true},
		{"expired", jwt.Registered{ExpiresAt: num(-time.Minute)}, false},
		{"expires exactly now", jwt.Registered{ExpiresAt: num(0)}, false},
		{"not yet valid", jwt.Registered{NotBefore: num(time.Minute)}, false},
		{"valid exactly at nbf", jwt.Registered{NotBefore: num(0)}, true},
		{"nbf in the past", jwt.Registered{NotBefore: num(-time.Hour)}, true},
		{"exp in the future", jwt.Registered{ExpiresAt: num(time.Hour)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.reg.ValidAt(now); got != tt.want {
				t.Errorf("ValidAt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegisteredValid(t *testing.T) {
	live := jwt.Registered{
		NotBefore: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	if !live.Valid() {
		t.Error("Valid() = false inside the validity window")
	}
	dead := jwt.Registered{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	if dead.Valid() {
		t.Error("Valid() = true for an expired claim set")
	}
}

func TestNumericDate(t *testing.T) {
	at := time.Date(2026, 8, 23, 10, 30, 0, 987_654_321, time.UTC)
	d := jwt.NewNumericDate(at)
	if d.Time().Unix() != at.Unix() {
		t.Errorf("Time() = %v, want the same instant as %v", d.Time(), at)
	}
	if !d.Time().Equal(time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)) {
		t.Errorf("Time() = %v, want the sub-second part truncated away", d.Time())
	}
}

func TestBaseClaims(t *testing.T) {
	before := time.Now()
	reg := jwt.BaseClaims("https://issuer.example.com", "client-id", 20*time.Second)
	after := time.Now()

	if reg.Issuer != "https://issuer.example.com" {
		t.Errorf("iss = %q, want the given issuer", reg.Issuer)
	}
	if reg.Subject != "client-id" {
		t.Errorf("sub = %q, want the given subject", reg.Subject)
	}
	if reg.IssuedAt == nil || reg.ExpiresAt == nil {
		t.Fatalf("iat = %v, exp = %v, want both set", reg.IssuedAt, reg.ExpiresAt)
	}
	iat := reg.IssuedAt.Time()
	if iat.Before(before.Truncate(time.Second)) || iat.After(after) {
		t.Errorf("iat = %v, want between %v and %v", iat, before, after)
	}
	if got := int64(*reg.ExpiresAt) - int64(*reg.IssuedAt); got != 20 {
		t.Errorf("exp-iat = %ds, want 20s", got)
	}
	if _, err := uuid.Parse(reg.ID); err != nil {
		t.Errorf("jti = %q, want a UUID: %v", reg.ID, err)
	}
}
