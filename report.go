// report.go — the immutable Report value for xgx-report core.
//
// A Report pairs one Detail with one Trace and remembers the Tracer that
// produced the trace (rendering needs it; nothing else does). It has no
// identity beyond its value and never mutates: every derivation — MapDetail,
// wrapping by another type's constructor — allocates a new Report.
//
// Interop:
//   - Report implements error; Error() is the detail's one-line message.
//   - Unwrap() exposes the causal parent (an inner *Report for recursive
//     variants, the original foreign error for absorbing ones) so
//     errors.Is/As observe the full chain.
//   - fmt.Formatter lives in format.go (%v concise, %+v = Render).
package xgxreport

import "strings"

// Report is one error occurrence: an immutable Detail/Trace pair.
// The zero value is unusable; construct through NewReport or a generated
// variant constructor.
type Report struct {
	detail Detail
	trace  Trace
	tracer Tracer

	// traced is the detail message current when the trace was last
	// written. Render uses it to detect a lagging trace after MapDetail.
	traced string
}

// NewReport pairs a detail with a trace under the tracer that captured it.
// It is total and performs no capture of its own; generated constructors are
// the usual way to obtain a Report with exactly one capture per call.
func NewReport(detail Detail, trace Trace, tracer Tracer) *Report {
	if trace == nil {
		trace = EmptyTrace
	}
	r := &Report{detail: detail, trace: trace, tracer: tracer}
	if detail != nil {
		r.traced = detail.Message()
	}
	return r
}

// Detail returns the structured payload, exactly as constructed.
func (r *Report) Detail() Detail { return r.detail }

// Trace returns the opaque causal context, exactly as captured.
func (r *Report) Trace() Trace { return r.trace }

// Tracer returns the backend bound to this report at construction.
func (r *Report) Tracer() Tracer { return r.tracer }

// Error returns the detail's one-line message.
func (r *Report) Error() string {
	if r == nil || r.detail == nil {
		return "report"
	}
	return r.detail.Message()
}

// Unwrap exposes the causal parent for stdlib traversal: the inner report
// when this detail wraps one, or the original foreign error when this detail
// absorbed one. Reports with no cause return nil.
func (r *Report) Unwrap() error {
	if r == nil || r.detail == nil {
		return nil
	}
	if c, ok := r.detail.(interface{ causeReport() *Report }); ok {
		if inner := c.causeReport(); inner != nil {
			return inner
		}
	}
	if c, ok := r.detail.(interface{ causeError() error }); ok {
		if inner := c.causeError(); inner != nil {
			return inner
		}
	}
	return nil
}

// MapDetail rebuilds the report with a transformed detail, trace untouched.
// Used when one error type wraps another's detail while keeping the original
// causal trace. f receiving or returning nil is tolerated; rendering of a
// nil detail degrades to the bare message "report".
func (r *Report) MapDetail(f func(Detail) Detail) *Report {
	if r == nil || f == nil {
		return r
	}
	return &Report{detail: f(r.detail), trace: r.trace, tracer: r.tracer, traced: r.traced}
}

// Render produces the terminal text form of the report. The first line is
// always the detail's interpolated message; what follows is backend
// fidelity — a location block, a cause list, and a frame dump under the
// backend's banner for a full-capture backend, nothing at all for a
// string-only or no-op one. Render is total.
func (r *Report) Render() string {
	if r == nil {
		return "report"
	}
	msg := r.Error()
	if r.trace == nil || r.trace.Empty() || r.tracer == nil {
		return msg
	}
	rendered := r.tracer.Render(r.trace)
	if rendered == "" {
		return msg
	}
	// After MapDetail the trace's newest captured message can lag the
	// current detail; keep the message-first contract regardless. The
	// lag check is against the message recorded at capture time, not the
	// rendered text, so a message like "Foo" over a trace line "Foo: bad"
	// still gets its own line while an in-sync string-backend join does
	// not get a redundant one.
	if msg != "" && msg != r.traced && firstLine(rendered) != msg {
		return msg + "\n" + rendered
	}
	return rendered
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

var _ error = (*Report)(nil)
