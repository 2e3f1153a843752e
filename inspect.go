// inspect.go — programmatic handling helpers for xgx-report.
//
// Scope:
//   - Zero-policy predicates answering "what kind of failure is this" from
//     an arbitrary error value, without rendering anything.
//   - Interop-first: traversal goes through errors.As / errors.Unwrap, so a
//     report found behind `fmt.Errorf("...: %w", r)` is still inspected.
//
// Out of scope (by design):
//   - HTTP/status mapping, retry policy, logging.
package xgxreport

import "errors"

// ReportOf returns the first *Report in err's unwrap chain.
func ReportOf(err error) (*Report, bool) {
	if err == nil {
		return nil, false
	}
	var r *Report
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// DetailOf returns the detail of the first report in err's unwrap chain.
func DetailOf(err error) (Detail, bool) {
	r, ok := ReportOf(err)
	if !ok {
		return nil, false
	}
	return r.Detail(), true
}

// VariantOf returns the variant tag of the first report in err's unwrap
// chain, or "" when err carries no generated detail.
func VariantOf(err error) string {
	d, ok := DetailOf(err)
	if !ok {
		return ""
	}
	if vd, ok := d.(*VariantDetail); ok {
		return vd.VariantName()
	}
	return ""
}

// IsVariant reports whether any report along err's unwrap chain — or any
// detail along those reports' cause chains — is tagged with the named
// variant.
func IsVariant(err error, name string) bool {
	if err == nil || name == "" {
		return false
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		r, ok := e.(*Report)
		if !ok {
			continue
		}
		for d := r.Detail(); d != nil; d = d.Cause() {
			if vd, ok := d.(*VariantDetail); ok && vd.VariantName() == name {
				return true
			}
		}
	}
	return false
}

// Has reports whether target appears anywhere in err's unwrap chain.
// It wraps errors.Is with nil-safety.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}
