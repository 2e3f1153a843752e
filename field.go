// field.go — ordered field storage for variant payloads.
//
// Design:
//   - Internal representation: append-only []Field (deterministic order,
//     matching the schema's declared field order).
//   - Constructors accept variadic key-value args and normalize them here.
//   - Public view for callers: copy-on-read map[string]any.
//
// Rationale:
//   - Go map iteration order is unspecified; a slice preserves declaration
//     order, which message templates and rendered output depend on.
//   - Values are stored as given; semantic kinds (kind.go) are a schema-level
//     contract checked at Define time for generated code, not a runtime
//     coercion.
package xgxreport

import "fmt"

// Field is a single named value carried by a variant detail.
type Field struct {
	Key string
	Val any
}

// fields is the internal immutable representation of a variant's payload.
// Treat it as append-only; never modify elements in place once published.
type fields []Field

// emptyFields is a canonical empty payload.
var emptyFields = make(fields, 0)

// fieldsFromKV parses a variadic list of key-value arguments into fields.
//
// Rules:
//   - Pairs are read left-to-right as (key, value).
//   - Keys MUST be strings; a non-string "key" drops the ENTIRE PAIR (the
//     key and its following value, if any), so misaligned values never
//     become the next pair's key.
//   - A trailing key with no value becomes (key, nil).
func fieldsFromKV(kv ...any) fields {
	if len(kv) == 0 {
		return emptyFields
	}
	out := make(fields, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			continue
		}
		if i+1 < len(kv) {
			out = append(out, Field{Key: k, Val: kv[i+1]})
		} else {
			out = append(out, Field{Key: k, Val: nil})
		}
	}
	return out
}

// get returns the value of the first field named key, in declaration order.
func (fs fields) get(key string) (any, bool) {
	for _, f := range fs {
		if f.Key == key {
			return f.Val, true
		}
	}
	return nil, false
}

// toMap materializes a copy-on-read map view. Safe for callers to mutate;
// duplicate keys resolve last-write-wins.
func (fs fields) toMap() map[string]any {
	out := make(map[string]any, len(fs))
	for _, f := range fs {
		out[f.Key] = f.Val
	}
	return out
}

// stringifyField renders one field value for default messages and the
// Location-free message line; nil renders empty, never "<nil>".
func stringifyField(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
