// nooptracer.go — the no-capture tracer backend for xgx-report.
//
// The fallback when tracing is not wanted at all: every capture returns the
// canonical empty trace and Render returns "". Reports built under this
// backend still carry their full Detail — only the trace text differs.
package xgxreport

// NoopTracer returns the backend that captures nothing.
func NoopTracer() Tracer { return noopTracer{} }

type noopTracer struct{}

func (noopTracer) NewTrace(Origin, string) Trace           { return EmptyTrace }
func (noopTracer) ExtendTrace(Trace, Origin, string) Trace { return EmptyTrace }
func (noopTracer) Render(Trace) string                     { return "" }

var _ Tracer = noopTracer{}
