// stringtracer.go — message-chain tracer backend for xgx-report.
//
// The lowest-fidelity backend that still carries causal information: the
// trace is the chain of captured messages joined newest-first with ": ".
// No origins, no frames, no banner — Render emits the chain and nothing
// else, so rendered output under this backend is exactly the message line.
package xgxreport

// StringTracer returns the string-only backend.
func StringTracer() Tracer { return stringTracer{} }

type stringTracer struct{}

// stringTrace is the backend's Trace: the joined message chain.
type stringTrace string

func (t stringTrace) Empty() bool { return t == "" }

func (stringTracer) NewTrace(_ Origin, msg string) Trace {
	return stringTrace(msg)
}

func (stringTracer) ExtendTrace(t Trace, _ Origin, msg string) Trace {
	prev, ok := t.(stringTrace)
	if !ok || prev == "" {
		return stringTrace(msg)
	}
	if msg == "" {
		return prev
	}
	return stringTrace(msg + ": " + string(prev))
}

func (stringTracer) Render(t Trace) string {
	if st, ok := t.(stringTrace); ok {
		return string(st)
	}
	return ""
}

var (
	_ Tracer = stringTracer{}
	_ Trace  = stringTrace("")
)
