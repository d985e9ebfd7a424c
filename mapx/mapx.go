// Package mapx provides small helpers for flat JSON objects kept in raw
// form: decoding an object without touching its member values, merging two
// objects, and carving fixed members out of one. The token header and
// payload build on these to combine their fixed shape with caller-defined
// extension members.
package mapx

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNotObject = errors.New("not a JSON object")

// Object is a decoded JSON object whose member values stay raw.
type Object map[string]json.RawMessage

// Decode parses data as a JSON object. Any other JSON value, including null,
// is rejected.
func Decode(data []byte) (Object, error) {
	var o Object
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrNotObject
	}
	return o, nil
}

// Encode writes o back to JSON. Map keys are emitted in sorted order, so
// equal objects always encode to identical bytes.
func Encode(o Object) ([]byte, error) {
	if o == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(o)
}

// FromValue marshals v and decodes the result as an Object. Values that do
// not marshal to a JSON object are rejected.
func FromValue(v any) (Object, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	o, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %T", ErrNotObject, v)
	}
	return o, nil
}

// Merge returns the union of base and overlay. On key collision the overlay
// member wins.
func Merge(base, overlay Object) Object {
	out := make(Object, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// Without returns a copy of o with the given members removed.
func Without(o Object, keys ...string) Object {
	out := make(Object, len(o))
	for k, v := range o {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
