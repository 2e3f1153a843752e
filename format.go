// format.go — fmt.Formatter implementation for xgx-report core.
//
// Behavior:
//
//	%s, %v   → concise string (Error(): the variant's message line).
//	%+v      → Render(): message, then whatever the bound backend captured —
//	           location block, cause chain, trace dump under its banner.
//	%q       → quoted Error().
//
// Rationale:
//   - Keep core free of logging/HTTP/JSON policy; only fmt formatting.
//   - Verbose output delegates entirely to Render so that %+v and Render
//     can never drift apart.
package xgxreport

import (
	"fmt"
	"io"
)

func (r *Report) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, r.Render())
			return
		}
		_, _ = io.WriteString(s, r.Error())
	case 's':
		_, _ = io.WriteString(s, r.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", r.Error())
	default:
		_, _ = io.WriteString(s, r.Error())
	}
}

var _ fmt.Formatter = (*Report)(nil)
