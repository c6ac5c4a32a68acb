package spec

// Interval is an immutable time-uniform confidence-sequence snapshot: the
// parameter estimate and bounds at observation count T, the guarantee
// tier in force, the configured alpha, and the diagnostics that produced
// it. For a one-sample bounded CS, A <= Lo <= Estimate <= Hi <= B; for a
// two-sample CS the analogous bound is [-(B-A), B-A]. Width = Hi - Lo is
// always >= 0 and never NaN or infinite.
type Interval struct {
	T           int                 `json:"t"`
	Estimate    float64             `json:"estimate"`
	Lo          float64             `json:"lo"`
	Hi          float64             `json:"hi"`
	Tier        GuaranteeTier       `json:"tier"`
	Alpha       float64             `json:"alpha"`
	Diagnostics DiagnosticsSnapshot `json:"diagnostics"`
}

// Width returns Hi - Lo.
func (iv Interval) Width() float64 { return iv.Hi - iv.Lo }
