// detail.go — the Detail capability for xgx-report core.
//
// A Detail is the structured half of a Report: variant-tagged data that
// survives backend swaps untouched. The capability is deliberately minimal —
// render one message line, expose at most one cause — so that generated
// variant details (define.go) and absorbed foreign details (source.go)
// satisfy it the same way.
package xgxreport

// Detail is the variant-tagged structured payload of a Report.
type Detail interface {
	// Message renders the one-line human-readable message for this detail.
	// It is total: missing or malformed data renders as empty substrings.
	Message() string

	// Cause returns the nested detail this one wraps, or nil. Chains only
	// point backward (a newer detail wraps an older one), so traversal
	// always terminates.
	Cause() Detail
}

// absorbedDetail is the Detail produced when a plain Go error is absorbed
// through the Source capability: its message, and its errors.Unwrap chain
// re-expressed as a Cause chain.
type absorbedDetail struct {
	msg   string
	cause Detail
}

func (d *absorbedDetail) Message() string { return d.msg }
func (d *absorbedDetail) Cause() Detail   { return d.cause }

var _ Detail = (*absorbedDetail)(nil)
