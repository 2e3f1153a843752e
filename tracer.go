// tracer.go — the Trace value and Tracer capability for xgx-report core.
//
// Design:
//   - Trace is backend-opaque. The core never looks inside one; it only
//     threads traces between a Report and the Tracer that produced them.
//   - "Empty" is a valid state, not a missing value: a backend that captures
//     nothing still returns a real Trace whose Empty() reports true.
//   - Capture is synchronous, bounded, and total. NewTrace/ExtendTrace never
//     fail; cost is O(1) plus whatever the backend pays to look around
//     (e.g., a bounded stack walk).
//
// Backend binding:
//   - Exactly one Tracer serves a defined error type, fixed at Define time.
//     There is no package-level mutable default; see define.go.
package xgxreport

import (
	"fmt"
	"runtime"
)

// Trace is the opaque causal context attached to a Report. Concrete trace
// values are produced and rendered only by the Tracer backend that owns them.
type Trace interface {
	// Empty reports whether the trace carries no captured information.
	// An empty trace is a valid, shareable value — not an error state.
	Empty() bool
}

// emptyTrace is the canonical backend-independent empty trace.
type emptyTrace struct{}

func (emptyTrace) Empty() bool { return true }

// EmptyTrace is the Trace carrying no information. Backends may return it
// directly; the Source capability returns nil (not EmptyTrace) to signal
// "nothing usable", so constructors know to capture afresh.
var EmptyTrace Trace = emptyTrace{}

// Origin is the source-location token recorded with every capture: the file,
// line, and function of the raise site as resolved by the runtime.
type Origin struct {
	File     string
	Line     int
	Function string
}

// String renders the origin as "file:line", the form used in Location blocks.
func (o Origin) String() string {
	if o.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", o.File, o.Line)
}

// IsZero reports whether no origin was resolved.
func (o Origin) IsZero() bool { return o.File == "" && o.Line == 0 }

// captureOrigin resolves the call site 'skip' frames above the caller.
//
// Skip accounting for the typical chain:
//
//	Variant.New → captureOrigin → runtime.Caller
//
// runtime.Caller(0) is captureOrigin itself, so we add +1 to land on our
// caller and let callers add their own helper depth on top.
func captureOrigin(skip int) Origin {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Origin{}
	}
	o := Origin{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		o.Function = fn.Name()
	}
	return o
}

// Tracer is the capability that captures, extends, and renders causal
// context. Backends differ in fidelity — a full stack walk, a chained
// message string, or nothing at all — behind one interface, so swapping the
// backend changes only what Render returns, never what a constructor puts in
// the Detail.
//
// Implementations MUST be total (no failure paths, no suspension) and MUST
// treat traces as immutable: ExtendTrace returns a new value and leaves its
// input untouched.
type Tracer interface {
	// NewTrace starts a trace at a raise site. msg is the detail's rendered
	// message at capture time; o locates the raise site.
	NewTrace(o Origin, msg string) Trace

	// ExtendTrace wraps an existing trace with one more causal layer,
	// used when a constructor absorbs a value that already carries a trace.
	// The existing trace may be EmptyTrace; extension still records msg.
	ExtendTrace(t Trace, o Origin, msg string) Trace

	// Render produces the backend's text for a trace. The first line is
	// always the most recent captured message; everything after it —
	// location block, cause list, frame dump banner — is backend fidelity.
	// Render of an empty trace returns "".
	Render(t Trace) string
}
