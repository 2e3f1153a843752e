// schema.go — the declarative error-type schema and its validation.
//
// A Schema is the compact specification Define expands: type name, ordered
// variants, per-variant fields, message template, and source declaration.
// Schemas are plain data — YAML-taggable so catalogs can live in files and
// feed cmd/flexgen — and all malformation is caught here, at definition
// time, with a descriptive *SchemaError. Once Define accepts a schema,
// every generated constructor and renderer is total.
//
// Reserved names:
//   - The template slot {cause} interpolates the wrapped or absorbed
//     message, so "cause" cannot be declared as a field.
package xgxreport

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// SourceKind declares where a variant's cause comes from.
type SourceKind string

const (
	// SourceNone: the variant wraps nothing; its constructor is New.
	SourceNone SourceKind = ""
	// SourceSelf: the variant wraps another report of the same type; its
	// constructor is Wrap and it extends the inner report's trace.
	SourceSelf SourceKind = "self"
	// SourceExternal: the variant absorbs a foreign error through the
	// Source capability; its constructor is Absorb.
	SourceExternal SourceKind = "external"
)

// Schema declares one error type: a name and a closed, ordered set of
// variants.
type Schema struct {
	Name     string          `yaml:"name"`
	Variants []VariantSchema `yaml:"variants"`
}

// VariantSchema declares one variant of an error type.
type VariantSchema struct {
	Name string `yaml:"name"`
	// Fields are the variant's named payload, in declaration order.
	Fields []FieldSchema `yaml:"fields,omitempty"`
	// Template is the message line with {field} interpolation slots. Empty
	// means the default rendering "<Name>: <content>".
	Template string `yaml:"template,omitempty"`
	// Source declares the variant's cause: none, self, or external.
	Source SourceKind `yaml:"source,omitempty"`
}

// FieldSchema declares one named field with a semantic kind.
type FieldSchema struct {
	Name string    `yaml:"name"`
	Kind FieldKind `yaml:"kind,omitempty"`
}

// SchemaError describes why a schema was rejected at definition time.
// It is the only failure this package produces.
type SchemaError struct {
	Type    string // error-type name, when known
	Variant string // offending variant, when applicable
	Field   string // offending field or template slot, when applicable
	Reason  string // human-readable explanation
}

func (e *SchemaError) Error() string {
	var b bytes.Buffer
	b.WriteString("schema")
	if e.Type != "" {
		fmt.Fprintf(&b, " %q", e.Type)
	}
	if e.Variant != "" {
		fmt.Fprintf(&b, ": variant %q", e.Variant)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %q", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

// ParseSchema strict-decodes a YAML schema document. Unknown keys are a
// parse error; structural validation still happens in Define.
func ParseSchema(data []byte) (Schema, error) {
	var s Schema
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Schema{}, fmt.Errorf("parse schema: %w", err)
	}
	return s.normalize(), nil
}

// normalize fills schema defaults: omitted field kinds become KindAny.
func (s Schema) normalize() Schema {
	out := s
	out.Variants = make([]VariantSchema, len(s.Variants))
	copy(out.Variants, s.Variants)
	for i := range out.Variants {
		if len(out.Variants[i].Fields) == 0 {
			// Keep nil as nil so normalized schemas compare shape-stable
			// with their declared form.
			continue
		}
		fs := make([]FieldSchema, len(out.Variants[i].Fields))
		copy(fs, out.Variants[i].Fields)
		for j := range fs {
			if fs[j].Kind == "" {
				fs[j].Kind = KindAny
			}
		}
		out.Variants[i].Fields = fs
	}
	return out
}

// validate checks the schema exhaustively and returns the first defect
// found. All checks are definition-time; nothing here runs at call time.
func (s Schema) validate() *SchemaError {
	if s.Name == "" {
		return &SchemaError{Reason: "type name must not be empty"}
	}
	if len(s.Variants) == 0 {
		return &SchemaError{Type: s.Name, Reason: "type defines no variants"}
	}
	seenVariants := make(map[string]struct{}, len(s.Variants))
	for _, v := range s.Variants {
		if v.Name == "" {
			return &SchemaError{Type: s.Name, Reason: "variant name must not be empty"}
		}
		if _, dup := seenVariants[v.Name]; dup {
			return &SchemaError{Type: s.Name, Variant: v.Name, Reason: "duplicate variant name"}
		}
		seenVariants[v.Name] = struct{}{}

		switch v.Source {
		case SourceNone, SourceSelf, SourceExternal:
		default:
			return &SchemaError{Type: s.Name, Variant: v.Name,
				Reason: fmt.Sprintf("unknown source kind %q (want %q, %q or omitted)", v.Source, SourceSelf, SourceExternal)}
		}

		seenFields := make(map[string]struct{}, len(v.Fields))
		for _, f := range v.Fields {
			if f.Name == "" {
				return &SchemaError{Type: s.Name, Variant: v.Name, Reason: "field name must not be empty"}
			}
			if f.Name == causeSlot {
				return &SchemaError{Type: s.Name, Variant: v.Name, Field: f.Name,
					Reason: "field name is reserved for the cause interpolation slot"}
			}
			if _, dup := seenFields[f.Name]; dup {
				return &SchemaError{Type: s.Name, Variant: v.Name, Field: f.Name, Reason: "duplicate field name"}
			}
			seenFields[f.Name] = struct{}{}
			if f.Kind != "" && !f.Kind.IsBuiltin() {
				return &SchemaError{Type: s.Name, Variant: v.Name, Field: f.Name,
					Reason: fmt.Sprintf("unknown field kind %q", f.Kind)}
			}
		}

		tmpl, err := parseTemplate(v.Template)
		if err != nil {
			return &SchemaError{Type: s.Name, Variant: v.Name, Reason: err.Error()}
		}
		for _, slot := range tmpl.slots() {
			if slot == causeSlot {
				if v.Source == SourceNone {
					return &SchemaError{Type: s.Name, Variant: v.Name, Field: slot,
						Reason: "template interpolates {cause} but the variant declares no source"}
				}
				continue
			}
			if _, ok := seenFields[slot]; !ok {
				return &SchemaError{Type: s.Name, Variant: v.Name, Field: slot,
					Reason: "template interpolates an undeclared field"}
			}
		}
	}
	return nil
}
