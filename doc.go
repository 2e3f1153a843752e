// doc.go — package documentation for xgx-report
//
// Package xgxreport provides a small, policy-free error-composition core: an
// immutable Report pairing a structured Detail payload with an opaque causal
// Trace, three capability interfaces (Detail, Tracer, Source) that keep the
// payload, the trace backend, and foreign-error absorption decoupled, and a
// declarative generator that expands a compact error-type schema into a full
// variant type with constructors, message rendering, and causal chaining.
// It is designed to be:
//   - Ergonomic at raise sites (one constructor call, one trace capture)
//   - Interoperable with the stdlib (errors.Is/As, fmt.Formatter)
//   - Backend-agnostic (swap the tracer, keep the payload)
//
// # Composition Model
//
// xgxreport separates **detail** (what went wrong, as data) from **trace**
// (where and through which call path it went wrong). A Report owns one of
// each and never mutates:
//
//	Report
//	├── Detail   variant-tagged payload; Message() + optional Cause()
//	└── Trace    backend-opaque; rendered only through the Tracer that made it
//
// Application error types are not written by hand. A Schema declares the
// type name, its variants, each variant's fields and message template, and
// Define expands it into a *Type whose variants carry total constructors:
//
//	schema := xgxreport.Schema{
//	    Name: "AppError",
//	    Variants: []xgxreport.VariantSchema{
//	        {Name: "Config", Template: "invalid config {path}: {reason}",
//	            Fields: []xgxreport.FieldSchema{{Name: "path"}, {Name: "reason"}}},
//	        {Name: "Io", Source: xgxreport.SourceExternal},
//	        {Name: "Retry", Source: xgxreport.SourceSelf,
//	            Fields: []xgxreport.FieldSchema{{Name: "attempt", Kind: xgxreport.KindInt}}},
//	    },
//	}
//	appErr := xgxreport.MustDefine(schema, xgxreport.StackTracer())
//
//	r := appErr.MustVariant("Config").New("path", "/etc/app.toml", "reason", "truncated")
//
// # When Are Traces Captured?
//
// Exactly once per constructor call — there is no uncaptured intermediate
// state and no opt-in step. What a capture costs depends on the backend:
//
//	+----------------------------+-----------------------------------------+
//	| Backend                    | Captured per constructor call           |
//	+----------------------------+-----------------------------------------+
//	| StackTracer()              | origin + bounded stack walk (once per   |
//	|                            | chain; extensions add messages only)    |
//	| StringTracer()             | rendered message, chained with ": "     |
//	| NoopTracer()               | nothing; every trace is empty           |
//	+----------------------------+-----------------------------------------+
//
// A Type binds its tracer at Define time. That binding is final: switching
// backends is a definition-time decision, never a runtime mutation, so two
// builds of the same schema against different backends differ only in what
// Render produces, never in what Detail carries.
//
// # Absorption
//
// Variants declared with SourceExternal absorb foreign error values through
// the Source capability. A *Report source contributes both its detail and
// its trace (the new trace extends the old one); a plain Go error
// contributes its message and errors.Unwrap chain, and the constructor
// substitutes a fresh capture at the absorption boundary. Absorbed variants
// render as "<Variant>: <absorbed message>" unless the schema declares an
// explicit template.
//
// # Failure Semantics
//
// Only Define can fail, and only on a malformed schema (duplicate variant,
// template slot with no matching field, unknown field kind, ...); it reports
// a descriptive *SchemaError. Every generated constructor, every absorption,
// and every render is total. Missing interpolation values render as empty
// substrings rather than aborting.
//
// # Formatting
//
// Report implements fmt.Formatter:
//   - `%v`, `%s`   → concise, single-line Error() (the variant message)
//   - `%+v`        → Render(): message, location block, cause chain, and the
//     backend's trace dump beneath its banner (backend permitting)
//   - `%q`        → quoted Error()
//
// # Concurrency
//
// All operations are synchronous and bounded. Reports are immutable values,
// safe to share across goroutines without synchronization; independent
// constructions share no mutable state. Nothing in this package performs
// I/O, blocks, or retries.
//
// # Offline Generation
//
// cmd/flexgen consumes the same Schema as YAML and emits Go source with one
// typed constructor per variant, for projects that prefer generation-time
// type safety over the runtime builder. Both modes share Define and its
// validation, so a schema that generates is a schema that defines.
//
// # Minimal Surface, Clear Semantics
//
// The core surface is intentionally small: Report accessors, the three
// capability interfaces, Define/MustDefine, the per-variant constructors
// (New / Wrap / Absorb), and the inspection helpers (VariantOf, DetailOf,
// FieldValue, Causes). Logging, HTTP mapping, and serialization of reports
// belong to adapters outside the core.
package xgxreport
