// source.go — the Source capability: absorbing foreign errors.
//
// Purpose:
//   - Convert an externally defined error value into this package's
//     (Detail, Trace) pair at a call boundary, without policy.
//   - Preserve what the source already knows: a *Report contributes both its
//     detail and its trace; a plain error contributes its message and its
//     errors.Unwrap chain, and no trace.
//
// Contract:
//   - Convert is pure and total. It never fails: an empty or nil source
//     yields an empty detail.
//   - A nil returned Trace means "nothing usable" — the absorbing
//     constructor substitutes a fresh capture at the boundary. This is
//     distinct from EmptyTrace, which is real (if vacuous) captured state.
package xgxreport

import "errors"

// Source converts an external error value into a Detail and, when the value
// carries trace information this system can represent, its Trace.
type Source interface {
	Convert(err error) (Detail, Trace)
}

// StdSource returns the default Source used by absorbing constructors.
//
// Conversion rules, first match wins:
//   - nil            → empty detail, no trace
//   - *Report        → the report's own detail and trace
//   - wraps *Report  → absorbed message chain down to the report's detail,
//     reusing the report's trace
//   - any error      → absorbed message chain from errors.Unwrap, no trace
func StdSource() Source { return stdSource{} }

type stdSource struct{}

func (stdSource) Convert(err error) (Detail, Trace) {
	if err == nil {
		return &absorbedDetail{}, nil
	}
	if r, ok := err.(*Report); ok {
		return r.Detail(), r.Trace()
	}
	d := detailFromError(err)
	var r *Report
	if errors.As(err, &r) {
		return d, r.Trace()
	}
	return d, nil
}

// detailFromError re-expresses err's unwrap chain as a Cause chain. A
// *Report encountered along the chain contributes its detail directly.
func detailFromError(err error) Detail {
	if err == nil {
		return nil
	}
	if r, ok := err.(*Report); ok {
		return r.Detail()
	}
	return &absorbedDetail{
		msg:   err.Error(),
		cause: detailFromError(errors.Unwrap(err)),
	}
}

var _ Source = stdSource{}
