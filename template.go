// template.go — per-variant message templates.
//
// Syntax: literal text with {name} interpolation slots. A slot names a
// declared field, or "cause" for the wrapped/absorbed message. There is no
// escaping; braces are structural. Parsing happens once, at definition
// time, where unclosed or empty slots are rejected; rendering is total and
// substitutes the empty string for anything missing.
package xgxreport

import (
	"fmt"
	"strings"
)

// causeSlot is the reserved slot interpolating the cause's message.
const causeSlot = "cause"

type segment struct {
	lit  string // literal text when slot is empty
	slot string // slot name when non-empty
}

type template struct {
	raw      string
	segments []segment
}

// parseTemplate compiles raw into segments. Empty raw is valid and means
// "use the variant's default rendering".
func parseTemplate(raw string) (template, error) {
	t := template{raw: raw}
	rest := raw
	for len(rest) > 0 {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			t.segments = append(t.segments, segment{lit: rest})
			break
		}
		if open > 0 {
			t.segments = append(t.segments, segment{lit: rest[:open]})
		}
		closeIdx := strings.IndexByte(rest[open:], '}')
		if closeIdx < 0 {
			return template{}, fmt.Errorf("template %q: unclosed interpolation slot", raw)
		}
		name := rest[open+1 : open+closeIdx]
		if name == "" {
			return template{}, fmt.Errorf("template %q: empty interpolation slot", raw)
		}
		if strings.ContainsAny(name, "{ \t") {
			return template{}, fmt.Errorf("template %q: malformed interpolation slot %q", raw, name)
		}
		t.segments = append(t.segments, segment{slot: name})
		rest = rest[open+closeIdx+1:]
	}
	return t, nil
}

// slots returns the slot names in order of appearance, duplicates included.
func (t template) slots() []string {
	var out []string
	for _, seg := range t.segments {
		if seg.slot != "" {
			out = append(out, seg.slot)
		}
	}
	return out
}

func (t template) empty() bool { return t.raw == "" }

// render substitutes field values into the template. Missing fields and nil
// values render as empty substrings; rendering never fails.
func (t template) render(fs fields, causeMsg string) string {
	var b strings.Builder
	b.Grow(len(t.raw))
	for _, seg := range t.segments {
		if seg.slot == "" {
			b.WriteString(seg.lit)
			continue
		}
		if seg.slot == causeSlot {
			b.WriteString(causeMsg)
			continue
		}
		if v, ok := fs.get(seg.slot); ok && v != nil {
			b.WriteString(fmt.Sprint(v))
		}
	}
	return b.String()
}
