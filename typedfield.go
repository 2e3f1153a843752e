// typedfield.go — optional, type-safe access to variant fields.
//
// Overview
//   TypedField is an *optional* ergonomic layer for reading strongly-typed
//   payload fields off a report found anywhere in an error chain. It does
//   not replace VariantDetail.Field — it complements it.
//
// Goals
//   - Zero policy: purely a convenience for authors who prefer typed access.
//   - Interop-first: lookup goes through errors.As, so wrapped reports work.
//
// Caveats
//   - TypedField relies on Go's type assertions. The dynamic type stored in
//     the variant payload MUST match T exactly; no conversions are made.
package xgxreport

import "fmt"

// TypedField is a small, zero-policy helper for type-safe field access.
// T is the Go type the schema's field kind maps to.
type TypedField[T any] struct {
	key string
}

// Typed constructs a TypedField[T] for a given field name.
func Typed[T any](key string) TypedField[T] {
	return TypedField[T]{key: key}
}

// Key returns the underlying field name.
func (f TypedField[T]) Key() string { return f.key }

// Get retrieves the typed value of this field from the first report in
// err's unwrap chain. Returns (zero, false) if no report is found, the
// field is absent, or the stored dynamic type differs from T.
func (f TypedField[T]) Get(err error) (T, bool) {
	return FieldValue[T](err, f.key)
}

// MustGet retrieves the typed value or panics with a descriptive error.
// Use sparingly — intended for test code and contexts where absence is a
// programming error rather than a runtime condition.
func (f TypedField[T]) MustGet(err error) T {
	v, ok := FieldValue[T](err, f.key)
	if !ok {
		var zero T
		panic(fmt.Errorf("xgxreport.TypedField[%T](%q): field missing or mistyped", zero, f.key))
	}
	return v
}

// FieldValue reads one variant field from the first report in err's unwrap
// chain, asserting it to T.
func FieldValue[T any](err error, key string) (T, bool) {
	var zero T
	d, ok := DetailOf(err)
	if !ok {
		return zero, false
	}
	vd, ok := d.(*VariantDetail)
	if !ok {
		return zero, false
	}
	v, ok := vd.Field(key)
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}
