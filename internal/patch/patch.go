// Package patch provides optional-presence fields for partial updates.
//
// A Field distinguishes three request states that pointer fields conflate:
// the key is absent (leave the stored value alone), the key is present with a
// value (set it), and the key is present with null (clear it to the zero
// value).
package patch

import (
	"bytes"
	"encoding/json"
)

// Field is a single optionally-present value in a PATCH-style request body.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of returns a Field that is present with v.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// UnmarshalJSON is only invoked by encoding/json when the key is present.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

// MarshalJSON lets clients build patches with the same type. Callers should
// pair it with `omitzero` so absent fields are not sent.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// IsZero reports absence, for the `omitzero` struct tag.
func (f Field[T]) IsZero() bool {
	return !f.Set
}

// Apply writes the field into dst when present.
func (f Field[T]) Apply(dst *T) {
	if f.Set {
		*dst = f.Value
	}
}
