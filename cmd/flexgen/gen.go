// gen.go — Go source rendering for flexgen.
//
// The generated file declares the schema literal, a package-level type
// bound to the backend chosen at generation time, and one typed constructor
// per variant. Field kinds map to Go parameter types via FieldKind.GoType;
// the constructors delegate to the runtime builder, so generated and
// hand-defined types behave identically.
package main

import (
	"fmt"
	"go/format"
	"strings"
	"text/template"
	"unicode"

	xgxreport "github.com/xgx-io/xgx-report"
)

type genData struct {
	Package   string
	Source    string
	Tracer    string
	NeedsTime bool
	TypeName  string
	TypeVar   string
	Variants  []genVariant
}

type genVariant struct {
	Name       string
	Template   string
	SourceKind string
	Mode       string // "new", "wrap" or "absorb"
	Ctor       string
	Fields     []genField
}

type genField struct {
	Name      string
	KindIdent string
	GoType    string
}

// goKeywords are rejected as field or type names; they cannot serve as
// generated parameter names.
var goKeywords = map[string]struct{}{
	"break": {}, "case": {}, "chan": {}, "const": {}, "continue": {},
	"default": {}, "defer": {}, "else": {}, "fallthrough": {}, "for": {},
	"func": {}, "go": {}, "goto": {}, "if": {}, "import": {}, "interface": {},
	"map": {}, "package": {}, "range": {}, "return": {}, "select": {},
	"struct": {}, "switch": {}, "type": {}, "var": {},
}

func isGoIdent(s string) bool {
	if s == "" {
		return false
	}
	if _, kw := goKeywords[s]; kw {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return false
	}
	return true
}

func tracerExpr(name string) (string, error) {
	switch name {
	case "stack":
		return "xgxreport.StackTracer()", nil
	case "string":
		return "xgxreport.StringTracer()", nil
	case "noop":
		return "xgxreport.NoopTracer()", nil
	default:
		return "", fmt.Errorf("unknown tracer %q (want stack, string or noop)", name)
	}
}

func kindIdent(k xgxreport.FieldKind) string {
	switch k {
	case xgxreport.KindString:
		return "xgxreport.KindString"
	case xgxreport.KindInt:
		return "xgxreport.KindInt"
	case xgxreport.KindFloat:
		return "xgxreport.KindFloat"
	case xgxreport.KindBool:
		return "xgxreport.KindBool"
	case xgxreport.KindDuration:
		return "xgxreport.KindDuration"
	case xgxreport.KindTime:
		return "xgxreport.KindTime"
	default:
		return "xgxreport.KindAny"
	}
}

func sourceIdent(k xgxreport.SourceKind) string {
	switch k {
	case xgxreport.SourceSelf:
		return "xgxreport.SourceSelf"
	case xgxreport.SourceExternal:
		return "xgxreport.SourceExternal"
	default:
		return ""
	}
}

// renderSource expands a validated schema into formatted Go source.
func renderSource(schema xgxreport.Schema, pkg, tracer, srcPath string) ([]byte, error) {
	if !isGoIdent(pkg) {
		return nil, fmt.Errorf("package name %q is not a valid Go identifier", pkg)
	}
	texpr, err := tracerExpr(tracer)
	if err != nil {
		return nil, err
	}
	if !isGoIdent(schema.Name) {
		return nil, fmt.Errorf("type name %q is not a valid Go identifier", schema.Name)
	}

	data := genData{
		Package:  pkg,
		Source:   srcPath,
		Tracer:   texpr,
		TypeName: schema.Name,
		TypeVar:  schema.Name + "Type",
	}
	for _, vs := range schema.Variants {
		if !isGoIdent(vs.Name) {
			return nil, fmt.Errorf("variant name %q is not a valid Go identifier", vs.Name)
		}
		gv := genVariant{
			Name:       vs.Name,
			Template:   vs.Template,
			SourceKind: sourceIdent(vs.Source),
			Ctor:       "New" + vs.Name,
		}
		switch vs.Source {
		case xgxreport.SourceSelf:
			gv.Mode = "wrap"
		case xgxreport.SourceExternal:
			gv.Mode = "absorb"
		default:
			gv.Mode = "new"
		}
		for _, fs := range vs.Fields {
			if !isGoIdent(fs.Name) {
				return nil, fmt.Errorf("variant %q: field name %q is not a valid Go identifier", vs.Name, fs.Name)
			}
			if gv.Mode == "absorb" && fs.Name == "err" {
				return nil, fmt.Errorf("variant %q: field name %q collides with the absorbed-error parameter", vs.Name, fs.Name)
			}
			if fs.Kind == xgxreport.KindDuration || fs.Kind == xgxreport.KindTime {
				data.NeedsTime = true
			}
			gv.Fields = append(gv.Fields, genField{
				Name:      fs.Name,
				KindIdent: kindIdent(fs.Kind),
				GoType:    fs.Kind.GoType(),
			})
		}
		data.Variants = append(data.Variants, gv)
	}

	var b strings.Builder
	if err := genTmpl.Execute(&b, data); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

var genTmpl = template.Must(template.New("gen").Parse(`// Code generated by flexgen. DO NOT EDIT.
//
// Source: {{.Source}}

package {{.Package}}

import (
{{- if .NeedsTime}}
	"time"
{{- end}}
	xgxreport "github.com/xgx-io/xgx-report"
)

// {{.TypeVar}} is the {{.TypeName}} error type, bound to its tracer backend
// at generation time.
var {{.TypeVar}} = xgxreport.MustDefine(xgxreport.Schema{
	Name: {{printf "%q" .TypeName}},
	Variants: []xgxreport.VariantSchema{
{{- range .Variants}}
		{
			Name: {{printf "%q" .Name}},
{{- if .Template}}
			Template: {{printf "%q" .Template}},
{{- end}}
{{- if .SourceKind}}
			Source: {{.SourceKind}},
{{- end}}
{{- if .Fields}}
			Fields: []xgxreport.FieldSchema{
{{- range .Fields}}
				{Name: {{printf "%q" .Name}}, Kind: {{.KindIdent}}},
{{- end}}
			},
{{- end}}
		},
{{- end}}
	},
}, {{.Tracer}})
{{range .Variants}}
{{- if eq .Mode "wrap"}}
// {{.Ctor}} constructs a {{$.TypeName}}.{{.Name}} report wrapping an inner report.
func {{.Ctor}}(cause *xgxreport.Report{{range .Fields}}, {{.Name}} {{.GoType}}{{end}}) *xgxreport.Report {
	return {{$.TypeVar}}.MustVariant({{printf "%q" .Name}}).Wrap(cause{{range .Fields}}, {{printf "%q" .Name}}, {{.Name}}{{end}})
}
{{- else if eq .Mode "absorb"}}
// {{.Ctor}} absorbs an external error into a {{$.TypeName}}.{{.Name}} report.
func {{.Ctor}}(err error{{range .Fields}}, {{.Name}} {{.GoType}}{{end}}) *xgxreport.Report {
	return {{$.TypeVar}}.MustVariant({{printf "%q" .Name}}).Absorb(err{{range .Fields}}, {{printf "%q" .Name}}, {{.Name}}{{end}})
}
{{- else}}
// {{.Ctor}} constructs a {{$.TypeName}}.{{.Name}} report.
func {{.Ctor}}({{range $i, $f := .Fields}}{{if $i}}, {{end}}{{$f.Name}} {{$f.GoType}}{{end}}) *xgxreport.Report {
	return {{$.TypeVar}}.MustVariant({{printf "%q" .Name}}).New({{range $i, $f := .Fields}}{{if $i}}, {{end}}{{printf "%q" $f.Name}}, {{$f.Name}}{{end}})
}
{{- end}}
{{end}}`))
