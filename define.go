// define.go — schema expansion: the runtime generator for xgx-report.
//
// Define expands a declarative Schema into a *Type whose variants carry
// total constructors wired to the three capabilities:
//
//	New(kv...)          plain variant; one fresh trace capture
//	Wrap(cause, kv...)  recursive variant; extends the inner report's trace
//	Absorb(err, kv...)  absorbing variant; Source conversion, extending the
//	                    source's trace or capturing afresh at the boundary
//
// All schema malformation is rejected here, at definition time, with a
// descriptive *SchemaError; after that, nothing in this file can fail.
//
// Backend binding:
//   - Exactly one Tracer per Type, fixed at Define. The binding is a plain
//     struct field, never a mutable global; redefining against another
//     backend is the only way to change what Render produces.
//
// Misuse tolerance:
//   - The schema's Source declaration drives template validation and the
//     constructor shapes flexgen generates. The runtime builder itself stays
//     permissive: calling Wrap on a plain variant still chains, calling
//     Absorb with nil still constructs. Totality over strictness at call
//     time — strictness lives in Define.
package xgxreport

import "strings"

// Option adjusts a Define call.
type Option func(*defineConfig)

type defineConfig struct {
	source Source
}

// WithSource overrides the Source capability used by absorbing constructors.
// The default is StdSource().
func WithSource(s Source) Option {
	return func(c *defineConfig) {
		if s != nil {
			c.source = s
		}
	}
}

// Type is a defined error type: a closed set of variants bound to one
// tracer backend. Types are immutable after Define.
type Type struct {
	name     string
	schema   Schema
	tracer   Tracer
	source   Source
	variants []*Variant
	byName   map[string]*Variant
}

// Define validates and expands a schema against a tracer backend.
// It is the only operation in this package that can fail.
func Define(s Schema, tracer Tracer, opts ...Option) (*Type, error) {
	s = s.normalize()
	if tracer == nil {
		return nil, &SchemaError{Type: s.Name, Reason: "tracer must not be nil"}
	}
	if verr := s.validate(); verr != nil {
		return nil, verr
	}
	cfg := defineConfig{source: StdSource()}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Type{
		name:   s.Name,
		schema: s,
		tracer: tracer,
		source: cfg.source,
		byName: make(map[string]*Variant, len(s.Variants)),
	}
	for _, vs := range s.Variants {
		// validate() already accepted the template; recompiling cannot fail.
		tmpl, _ := parseTemplate(vs.Template)
		v := &Variant{
			typ:    t,
			name:   vs.Name,
			decl:   vs.Fields,
			tmpl:   tmpl,
			source: vs.Source,
		}
		t.variants = append(t.variants, v)
		t.byName[v.name] = v
	}
	return t, nil
}

// MustDefine is Define for package-variable initialization; it panics on a
// malformed schema, which is a programming error caught on first load.
func MustDefine(s Schema, tracer Tracer, opts ...Option) *Type {
	t, err := Define(s, tracer, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the error-type name.
func (t *Type) Name() string { return t.name }

// Tracer returns the backend bound at Define time.
func (t *Type) Tracer() Tracer { return t.tracer }

// Schema returns a copy of the normalized schema this type was defined from.
func (t *Type) Schema() Schema { return t.schema.normalize() }

// Variant looks up a variant by name.
func (t *Type) Variant(name string) (*Variant, bool) {
	v, ok := t.byName[name]
	return v, ok
}

// MustVariant looks up a variant by name and panics when absent. Intended
// for generated code and package-level wiring, where an unknown name is a
// definition-time defect.
func (t *Type) MustVariant(name string) *Variant {
	v, ok := t.byName[name]
	if !ok {
		panic(&SchemaError{Type: t.name, Variant: name, Reason: "unknown variant"})
	}
	return v
}

// Variants returns the variant names in declaration order.
func (t *Type) Variants() []string {
	out := make([]string, len(t.variants))
	for i, v := range t.variants {
		out[i] = v.name
	}
	return out
}

// Variant is one expanded variant: its declared fields, compiled template,
// and source declaration, plus the total constructors.
type Variant struct {
	typ    *Type
	name   string
	decl   []FieldSchema
	tmpl   template
	source SourceKind
}

// Name returns the variant name, which is also its static message label.
func (v *Variant) Name() string { return v.name }

// Type returns the owning error type.
func (v *Variant) Type() *Type { return v.typ }

// SourceKind returns the variant's declared source.
func (v *Variant) SourceKind() SourceKind { return v.source }

// Fields returns the declared field schemas in order.
func (v *Variant) Fields() []FieldSchema {
	out := make([]FieldSchema, len(v.decl))
	copy(out, v.decl)
	return out
}

// New constructs a report from the declared fields, given as alternating
// key-value arguments. Undeclared keys are dropped; declared-but-missing
// fields render empty. Exactly one trace capture happens here.
func (v *Variant) New(kv ...any) *Report {
	d := &VariantDetail{variant: v, fields: v.normalizeFields(fieldsFromKV(kv...))}
	msg := d.Message()
	trace := v.typ.tracer.NewTrace(captureOrigin(1), msg)
	return &Report{detail: d, trace: trace, tracer: v.typ.tracer, traced: msg}
}

// Wrap constructs a report whose detail chains to an inner report of this
// system, extending the inner trace with one more causal layer. A nil cause
// degrades to New's behavior; the call never fails.
func (v *Variant) Wrap(cause *Report, kv ...any) *Report {
	d := &VariantDetail{variant: v, fields: v.normalizeFields(fieldsFromKV(kv...))}
	origin := captureOrigin(1)
	if cause == nil {
		msg := d.Message()
		trace := v.typ.tracer.NewTrace(origin, msg)
		return &Report{detail: d, trace: trace, tracer: v.typ.tracer, traced: msg}
	}
	d.cause = cause.Detail()
	d.causeRep = cause
	msg := d.Message()
	trace := v.typ.tracer.ExtendTrace(cause.Trace(), origin, msg)
	return &Report{detail: d, trace: trace, tracer: v.typ.tracer, traced: msg}
}

// Absorb constructs a report from a foreign error through the Source
// capability. When the source supplies a trace it is extended; otherwise a
// fresh capture happens at this boundary. The call never fails; absorbing
// nil yields a report with an empty absorbed message.
func (v *Variant) Absorb(err error, kv ...any) *Report {
	srcDetail, srcTrace := v.typ.source.Convert(err)
	d := &VariantDetail{
		variant: v,
		fields:  v.normalizeFields(fieldsFromKV(kv...)),
		cause:   srcDetail,
	}
	if rep, ok := err.(*Report); ok {
		d.causeRep = rep
	} else {
		d.causeErr = err
	}
	origin := captureOrigin(1)
	msg := d.Message()
	var trace Trace
	if srcTrace != nil {
		trace = v.typ.tracer.ExtendTrace(srcTrace, origin, msg)
	} else {
		trace = v.typ.tracer.NewTrace(origin, msg)
	}
	return &Report{detail: d, trace: trace, tracer: v.typ.tracer, traced: msg}
}

// normalizeFields keeps only declared fields, in declaration order, so
// rendering and the copy-on-read map view stay deterministic.
func (v *Variant) normalizeFields(in fields) fields {
	if len(v.decl) == 0 || len(in) == 0 {
		return emptyFields
	}
	out := make(fields, 0, len(v.decl))
	for _, f := range v.decl {
		if val, ok := in.get(f.Name); ok {
			out = append(out, Field{Key: f.Name, Val: val})
		}
	}
	return out
}

// VariantDetail is the Detail every generated constructor produces: the
// variant tag, the ordered field payload, and at most one cause.
type VariantDetail struct {
	variant  *Variant
	fields   fields
	cause    Detail
	causeRep *Report // set when the cause is a report of this system
	causeErr error   // set when the cause is a foreign error
}

// Variant returns the variant this detail is tagged with.
func (d *VariantDetail) Variant() *Variant { return d.variant }

// VariantName returns the variant tag's name.
func (d *VariantDetail) VariantName() string { return d.variant.name }

// Field returns the value of a declared field, if it was supplied.
func (d *VariantDetail) Field(name string) (any, bool) { return d.fields.get(name) }

// Fields returns a copy-on-read map view of the payload.
func (d *VariantDetail) Fields() map[string]any { return d.fields.toMap() }

// Message renders the variant's message line. With a template, fields and
// {cause} interpolate into it; without one, the default form is
// "<Variant>: <content>" where content is the cause's message for chaining
// and absorbing variants, or the field values in declaration order.
func (d *VariantDetail) Message() string {
	causeMsg := ""
	if d.cause != nil {
		causeMsg = d.cause.Message()
	}
	if !d.tmplEmpty() {
		return d.variant.tmpl.render(d.fields, causeMsg)
	}
	content := causeMsg
	if content == "" && len(d.fields) > 0 {
		parts := make([]string, 0, len(d.fields))
		for _, f := range d.fields {
			parts = append(parts, stringifyField(f.Val))
		}
		content = strings.Join(parts, ", ")
	}
	if content == "" {
		return d.variant.name
	}
	return d.variant.name + ": " + content
}

// Cause returns the wrapped or absorbed detail, or nil.
func (d *VariantDetail) Cause() Detail { return d.cause }

func (d *VariantDetail) causeReport() *Report { return d.causeRep }
func (d *VariantDetail) causeError() error    { return d.causeErr }

func (d *VariantDetail) tmplEmpty() bool { return d.variant.tmpl.empty() }

var _ Detail = (*VariantDetail)(nil)
