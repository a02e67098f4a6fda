// Package nullable provides a tri-state field wrapper for partial JSON
// updates. A Field distinguishes three cases a plain pointer cannot:
// the key was absent from the payload, the key was present with a null
// value (explicit clear), or the key was present with a value.
package nullable

import "encoding/json"

// Field wraps an optional, nullable value for PATCH-style payloads.
// The zero value means "absent".
type Field[T any] struct {
	// Set is true when the key was present in the payload at all.
	Set bool
	// Valid is true when the key carried a non-null value.
	Valid bool
	// Value holds the decoded value when Valid is true.
	Value T
}

// Of returns a Field holding the given value.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Valid: true, Value: v}
}

// Null returns a Field representing an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true}
}

// UnmarshalJSON is only invoked by encoding/json when the key is present,
// so Set is always true here; an absent key leaves the zero value.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Valid = false
		var zero T
		f.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

// MarshalJSON renders null for both absent and explicit-null fields.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// Ptr returns the value as a pointer, nil when absent or null.
// Collapses the tri-state for persistence, where absent fields have
// already been merged away.
func (f Field[T]) Ptr() *T {
	if !f.Set || !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}
