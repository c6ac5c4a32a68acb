package spec

import "github.com/nibzard/anytime/numerics"

// EValue is an immutable e-process snapshot at observation count T. E is
// stored internally in log space (LogE) and exponentiated only at the
// public boundary, clamped so it is always a finite float64; comparisons
// against the 1/alpha threshold must use LogE, not E, to avoid losing
// precision for large e-values.
//
// Decision latches to true once E first crosses 1/alpha and stays true
// for every subsequent snapshot from the same instance, even though LogE
// itself is free to fluctuate below the threshold afterward.
type EValue struct {
	T           int                 `json:"t"`
	LogE        float64             `json:"log_e"`
	E           float64             `json:"e"`
	Decision    bool                `json:"decision"`
	Tier        GuaranteeTier       `json:"tier"`
	Alpha       float64             `json:"alpha"`
	Diagnostics DiagnosticsSnapshot `json:"diagnostics"`
}

// NewEValue builds an EValue from a log-space e-value and the caller's
// own latched decision. The decision is not re-derived here: whether a
// crossing of log(1/alpha) counts as a decision depends on the
// e-process's declared side (SideLE/SideGE require the crossing to run
// in the declared direction; SideEQ does not), and only the caller knows
// that. Passing a bare logE>=threshold check here would silently ignore
// the caller's directional gate.
func NewEValue(t int, logE, alpha float64, decision bool, tier GuaranteeTier, diag DiagnosticsSnapshot) EValue {
	return EValue{
		T:           t,
		LogE:        logE,
		E:           numerics.ExpClamped(logE),
		Decision:    decision,
		Tier:        tier,
		Alpha:       alpha,
		Diagnostics: diag,
	}
}
