// kind.go — semantic field kinds for xgx-report schemas.
//
// Intent:
//   - Name the semantic type of a schema field without binding the runtime
//     builder to Go's type system; the builder stores values as given.
//   - Give cmd/flexgen a stable mapping from schema kinds to Go parameter
//     types for generated constructors.
//   - Keep semantics open-ended: unknown kinds are a definition error, but
//     the set below is about ergonomics, not policy.
//
// Conventions (documented, not enforced here):
//   - Kinds are lowercase ASCII.
//   - KindAny is the default when a schema field omits its kind.
package xgxreport

// FieldKind classifies the semantic type of a schema field.
type FieldKind string

const (
	KindString   FieldKind = "string"
	KindInt      FieldKind = "int"
	KindFloat    FieldKind = "float"
	KindBool     FieldKind = "bool"
	KindDuration FieldKind = "duration"
	KindTime     FieldKind = "time"
	KindAny      FieldKind = "any"
)

// allBuiltinKinds is the ordered set of kinds the core ships with.
// Unexported to avoid exposing mutable slice identity to callers.
// Order is stable to minimize churn in docs/examples.
var allBuiltinKinds = []FieldKind{
	KindString,
	KindInt,
	KindFloat,
	KindBool,
	KindDuration,
	KindTime,
	KindAny,
}

// builtinKindSet provides O(1) membership checks for built-ins.
var builtinKindSet = map[FieldKind]struct{}{
	KindString:   {},
	KindInt:      {},
	KindFloat:    {},
	KindBool:     {},
	KindDuration: {},
	KindTime:     {},
	KindAny:      {},
}

// BuiltinKinds returns a defensive copy of the built-in kinds in a stable order.
func BuiltinKinds() []FieldKind {
	out := make([]FieldKind, len(allBuiltinKinds))
	copy(out, allBuiltinKinds)
	return out
}

// IsBuiltin reports whether k is one of the built-in field kinds.
func (k FieldKind) IsBuiltin() bool {
	_, ok := builtinKindSet[k]
	return ok
}

// GoType returns the Go type flexgen uses for a constructor parameter of
// this kind. Unknown kinds map to "any"; schema validation rejects them
// before generation, so this is a rendering fallback only.
func (k FieldKind) GoType() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int64"
	case KindFloat:
		return "float64"
	case KindBool:
		return "bool"
	case KindDuration:
		return "time.Duration"
	case KindTime:
		return "time.Time"
	default:
		return "any"
	}
}
