// unwrap.go — cause-chain traversal for xgx-report.
//
// Scope:
//   - Traversal over Detail cause chains (for display and inspection) and
//     over error unwrap chains (for stdlib interop).
//   - No policy, no logging — just correct, minimal utilities.
//
// Design notes:
//   - Detail chains only point backward and construction is bottom-up, so
//     they are finite by construction; traversal needs no cycle guard.
//   - Error chains may come from outside this package; RootError bounds its
//     walk defensively.
package xgxreport

import "errors"

// Causes returns d followed by its cause chain, outermost first. A nil
// detail yields nil.
func Causes(d Detail) []Detail {
	if d == nil {
		return nil
	}
	out := make([]Detail, 0, 4)
	for c := d; c != nil; c = c.Cause() {
		out = append(out, c)
	}
	return out
}

// RootCause returns the innermost detail of d's cause chain (d itself when
// it wraps nothing). Nil-safe.
func RootCause(d Detail) Detail {
	if d == nil {
		return nil
	}
	c := d
	for c.Cause() != nil {
		c = c.Cause()
	}
	return c
}

// RootError returns the deepest error in err's unwrap chain, following
// single Unwrap() error links. Nil-safe; bounded against runaway chains.
func RootError(err error) error {
	if err == nil {
		return nil
	}
	const maxDepth = 1 << 12 // generous cap against runaway chains
	cur := err
	for i := 0; i < maxDepth; i++ {
		next := errors.Unwrap(cur)
		if next == nil {
			return cur
		}
		cur = next
	}
	return cur
}
