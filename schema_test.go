// schema_test.go — verification of schema validation and YAML parsing.
// Every malformation must surface at definition time with a descriptive
// *SchemaError; nothing may leak through to call time.
package xgxreport

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSchema_Validate_Defects(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		schema Schema
		want   string // substring of the SchemaError text
	}{
		{
			name:   "empty type name",
			schema: Schema{Variants: []VariantSchema{{Name: "A"}}},
			want:   "type name must not be empty",
		},
		{
			name:   "no variants",
			schema: Schema{Name: "T"},
			want:   "defines no variants",
		},
		{
			name:   "empty variant name",
			schema: Schema{Name: "T", Variants: []VariantSchema{{}}},
			want:   "variant name must not be empty",
		},
		{
			name:   "duplicate variant",
			schema: Schema{Name: "T", Variants: []VariantSchema{{Name: "A"}, {Name: "A"}}},
			want:   "duplicate variant name",
		},
		{
			name: "unknown source kind",
			schema: Schema{Name: "T", Variants: []VariantSchema{
				{Name: "A", Source: SourceKind("upstream")},
			}},
			want: `unknown source kind "upstream"`,
		},
		{
			name: "empty field name",
			schema: Schema{Name: "T", Variants: []VariantSchema{
				{Name: "A", Fields: []FieldSchema{{}}},
			}},
			want: "field name must not be empty",
		},
		{
			name: "reserved field name",
			schema: Schema{Name: "T", Variants: []VariantSchema{
				{Name: "A", Fields: []FieldSchema{{Name: "cause"}}},
			}},
			want: "reserved",
		},
		{
			name: "duplicate field",
			schema: Schema{Name: "T", Variants: []VariantSchema{
				{Name: "A", Fields: []FieldSchema{{Name: "x"}, {Name: "x"}}},
			}},
			want: "duplicate field name",
		},
		{
			name: "unknown field kind",
			schema: Schema{Name: "T", Variants: []VariantSchema{
				{Name: "A", Fields: []FieldSchema{{Name: "x", Kind: FieldKind("decimal")}}},
			}},
			want: `unknown field kind "decimal"`,
		},
		{
			name: "template references undeclared field",
			schema: Schema{Name: "T", Variants: []VariantSchema{
				{Name: "A", Template: "oops {ghost}"},
			}},
			want: "undeclared field",
		},
		{
			name: "cause slot without source",
			schema: Schema{Name: "T", Variants: []VariantSchema{
				{Name: "A", Template: "from {cause}"},
			}},
			want: "declares no source",
		},
		{
			name: "unclosed template slot",
			schema: Schema{Name: "T", Variants: []VariantSchema{
				{Name: "A", Template: "bad {slot"},
			}},
			want: "unclosed interpolation slot",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Define(tc.schema, StringTracer())
			var serr *SchemaError
			require.ErrorAs(t, err, &serr)
			require.Contains(t, serr.Error(), tc.want)
		})
	}
}

func TestSchemaError_Text(t *testing.T) {
	t.Parallel()

	e := &SchemaError{Type: "AppError", Variant: "Io", Field: "ghost", Reason: "template interpolates an undeclared field"}
	require.Equal(t,
		`schema "AppError": variant "Io": field "ghost": template interpolates an undeclared field`,
		e.Error())
}

func TestParseSchema_YAML(t *testing.T) {
	t.Parallel()

	const doc = `
name: AppError
variants:
  - name: Config
    template: "invalid config {path}: {reason}"
    fields:
      - name: path
        kind: string
      - name: reason
  - name: Io
    source: external
`
	got, err := ParseSchema([]byte(doc))
	require.NoError(t, err)

	want := Schema{
		Name: "AppError",
		Variants: []VariantSchema{
			{
				Name:     "Config",
				Template: "invalid config {path}: {reason}",
				Fields: []FieldSchema{
					{Name: "path", Kind: KindString},
					{Name: "reason", Kind: KindAny}, // omitted kind defaults
				},
			},
			{Name: "Io", Source: SourceExternal},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestSchema_Normalize_KeepsNilFields(t *testing.T) {
	t.Parallel()

	in := Schema{Name: "T", Variants: []VariantSchema{{Name: "Plain"}}}
	got := in.normalize()
	require.Nil(t, got.Variants[0].Fields)
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("fieldless schema changed shape (-in +normalized):\n%s", diff)
	}
}

func TestParseSchema_RejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := ParseSchema([]byte("name: T\nseverity: high\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse schema")
}

func TestParseSchema_RejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := ParseSchema([]byte("name: [unterminated"))
	require.Error(t, err)
}
