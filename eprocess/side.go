package eprocess

// Side selects which one-sided (or two-sided) alternative an e-process
// targets: the direction the observed mean must run in, relative to the
// boundary, for a mixture-threshold crossing to count as a decision.
type Side int

const (
	// SideLE targets the alternative parameter <= boundary: a crossing
	// only latches while the observed mean runs at or below boundary.
	SideLE Side = iota

	// SideGE targets the alternative parameter >= boundary: a crossing
	// only latches while the observed mean runs at or above boundary.
	SideGE

	// SideEQ targets the two-sided alternative parameter != boundary,
	// with no directional filter.
	SideEQ
)

// String renders the side label for logging.
func (s Side) String() string {
	switch s {
	case SideLE:
		return "le"
	case SideGE:
		return "ge"
	case SideEQ:
		return "eq"
	default:
		return "?"
	}
}

// directionOK reports whether observedMean is consistent with the
// declared side's alternative. SideGE requires the data to run at or
// above boundary; SideLE is the mirror image. SideEQ imposes no
// directional filter: any crossing of the mixture threshold is evidence
// against the point null.
func (s Side) directionOK(observedMean, boundary float64) bool {
	switch s {
	case SideLE:
		return observedMean <= boundary
	case SideGE:
		return observedMean >= boundary
	default:
		return true
	}
}
