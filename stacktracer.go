// stacktracer.go — full-backtrace tracer backend for xgx-report.
//
// Design goals:
//   - Interop & correctness: use runtime.Callers + runtime.CallersFrames for
//     accurate frame resolution (handles inlining correctly).
//   - One backtrace per chain: the frame dump is captured at the innermost
//     raise site; extensions add message/origin layers only. Matching
//     fidelity of backtrace-owning trace libraries, which cannot stack a
//     second backtrace onto an existing one.
//   - Pragmatic performance: bounded depth, no allocations beyond the
//     capture itself.
//
// Rendered layout (Report.Render contract):
//
//	<newest message>
//	Location:
//	    <file>:<line>
//	Caused by:
//	    0: <innermost prior message>
//	    1: <next prior message>
//	Stack backtrace:
//	    0: <function>
//	          at <file>:<line>
package xgxreport

import (
	"fmt"
	"runtime"
	"strings"
)

// Frame represents a single call site in a captured backtrace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// defaultMaxDepth is a conservative bound that captures meaningful context
// without excessive work on exceptional paths.
const defaultMaxDepth = 64

// stackBanner delimits the frame dump from everything above it.
const stackBanner = "Stack backtrace:"

// StackTracer returns the full-backtrace backend: every chain carries the
// raise-site origin, the prior-cause messages, and one bounded frame dump.
func StackTracer() Tracer { return stackTracer{} }

type stackTracer struct{}

// traceEntry is one captured layer: the message and origin at capture time.
type traceEntry struct {
	msg    string
	origin Origin
}

// stackTrace is the backend's Trace: message layers newest-first, plus the
// frame dump from the innermost capture.
type stackTrace struct {
	entries []traceEntry
	frames  Stack
}

func (t *stackTrace) Empty() bool {
	return t == nil || (len(t.entries) == 0 && len(t.frames) == 0)
}

func (stackTracer) NewTrace(o Origin, msg string) Trace {
	return &stackTrace{
		entries: []traceEntry{{msg: msg, origin: o}},
		// +2 skips NewTrace and the generated constructor, placing the
		// first frame at the user-visible raise site.
		frames: captureStack(2, defaultMaxDepth),
	}
}

func (st stackTracer) ExtendTrace(t Trace, o Origin, msg string) Trace {
	prev, ok := t.(*stackTrace)
	if !ok || prev.Empty() {
		// Foreign or empty input: start a chain here. ExtendTrace sits one
		// call deeper than NewTrace would, hence the extra skip.
		return &stackTrace{
			entries: []traceEntry{{msg: msg, origin: o}},
			frames:  captureStack(2, defaultMaxDepth),
		}
	}
	entries := make([]traceEntry, 0, len(prev.entries)+1)
	entries = append(entries, traceEntry{msg: msg, origin: o})
	entries = append(entries, prev.entries...)
	frames := make(Stack, len(prev.frames))
	copy(frames, prev.frames)
	return &stackTrace{entries: entries, frames: frames}
}

func (stackTracer) Render(t Trace) string {
	st, ok := t.(*stackTrace)
	if !ok || st.Empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString(st.entries[0].msg)
	if o := st.entries[0].origin; !o.IsZero() {
		b.WriteString("\nLocation:\n    ")
		b.WriteString(o.String())
	}
	if len(st.entries) > 1 {
		b.WriteString("\nCaused by:")
		// Prior causes innermost→outermost; entries are newest-first, so
		// walk from the tail back to index 1.
		n := 0
		for i := len(st.entries) - 1; i >= 1; i-- {
			fmt.Fprintf(&b, "\n    %d: %s", n, st.entries[i].msg)
			n++
		}
	}
	if len(st.frames) > 0 {
		b.WriteString("\n")
		b.WriteString(stackBanner)
		for i, fr := range st.frames {
			fmt.Fprintf(&b, "\n    %d: %s\n          at %s:%d", i, fr.Function, fr.File, fr.Line)
		}
	}
	return b.String()
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial
// frames beyond this package's capture helpers.
//
// Skip accounting:
//   - +1 for runtime.Callers itself
//   - +1 for captureStack
//
// Therefore we add +2 here; the 'skip' parameter is applied on top and
// covers the backend method plus the generated constructor.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

var (
	_ Tracer = stackTracer{}
	_ Trace  = (*stackTrace)(nil)
)
