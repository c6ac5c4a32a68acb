package diagnostics

import (
	"math"

	"github.com/nibzard/anytime/numerics"
	"github.com/nibzard/anytime/spec"
)

// missingnessMinObservations is the minimum number of total observations
// (applied + missing) before the missingness ratio can downgrade the
// tier.
const missingnessMinObservations = 20

// missingnessThreshold is the missing-ratio above which the tier
// downgrades to Diagnostic.
const missingnessThreshold = 0.2

// State is the mutable diagnostics state owned by one CS or e-process
// instance. It is not safe for concurrent use; callers needing
// concurrency across streams must use one State per stream, mirroring
// the estimator package's ownership model.
type State struct {
	method   string
	support  spec.Support
	clipMode spec.ClipMode

	missing    int
	clipped    int
	outOfRange int

	tier spec.GuaranteeTier

	driftLatched bool
	cusumPos     float64
	cusumNeg     float64
}

// NewState constructs diagnostics state for method over the given spec's
// support and clip mode, starting at tier Guaranteed.
func NewState(method string, sp spec.StreamSpec) *State {
	return &State{
		method:   method,
		support:  sp.Support(),
		clipMode: sp.ClipMode(),
		tier:     spec.Guaranteed,
	}
}

// Reset clears all counters, the drift latch, and restores tier
// Guaranteed, establishing a new epoch in lockstep with the owning
// instance's estimator reset.
func (s *State) Reset() {
	s.missing = 0
	s.clipped = 0
	s.outOfRange = 0
	s.tier = spec.Guaranteed
	s.driftLatched = false
	s.cusumPos = 0
	s.cusumNeg = 0
}

// Tier returns the current (monotone non-increasing) guarantee tier.
func (s *State) Tier() spec.GuaranteeTier { return s.tier }

// Process runs one observation through the missingness, range, and drift
// gates. n is the number of observations already applied to the owning
// estimator (before this one), used to scale the CUSUM-lite drift
// threshold; runningMean is that estimator's current mean, the reference
// the CUSUM sums deviations from.
//
// Return values:
//   - value:   the (possibly clipped) value to fold into the estimator
//   - applied: false if the observation must be skipped (missing input);
//     the estimator must not be updated in that case
//   - err:     a *spec.AssumptionViolationError if ClipMode=ClipError and
//     x falls outside the declared support; the observation is not applied
func (s *State) Process(x float64, n int, runningMean float64) (value float64, applied bool, err error) {
	if math.IsNaN(x) {
		s.missing++
		total := n + s.missing
		if total >= missingnessMinObservations {
			ratio := float64(s.missing) / float64(total)
			if ratio > missingnessThreshold {
				s.tier = s.tier.Worse(spec.Diagnostic)
			}
		}
		return 0, false, nil
	}

	a, b := s.support.A, s.support.B
	value = x
	if x < a || x > b {
		s.outOfRange++
		if s.clipMode == spec.ClipError {
			return 0, false, spec.NewAssumptionViolationError(s.method, n, x, a, b)
		}
		value = numerics.Clip(x, a, b)
		s.clipped++
		s.tier = s.tier.Worse(spec.Clipped)
	}

	if !s.driftLatched {
		delta := value - runningMean
		s.cusumPos = math.Max(0, s.cusumPos+delta)
		s.cusumNeg = math.Max(0, s.cusumNeg-delta)
		threshold := (b - a) * math.Sqrt(float64(n+1))
		if threshold > 0 && (s.cusumPos > threshold || s.cusumNeg > threshold) {
			s.driftLatched = true
			s.tier = s.tier.Worse(spec.Diagnostic)
		}
	}

	return value, true, nil
}

// Snapshot returns an immutable copy of the current diagnostics counters
// for attachment to an Interval or EValue.
func (s *State) Snapshot() spec.DiagnosticsSnapshot {
	var notes []string
	if s.driftLatched {
		notes = append(notes, "drift heuristic latched (advisory, not a change-point test)")
	}
	if s.clipped > 0 {
		notes = append(notes, "one or more observations clipped into declared support")
	}
	return spec.DiagnosticsSnapshot{
		ClippedCount:    s.clipped,
		MissingCount:    s.missing,
		OutOfRangeCount: s.outOfRange,
		DriftDetected:   s.driftLatched,
		Method:          s.method,
		Notes:           notes,
	}
}

// DowngradeTo folds an externally observed tier (e.g. the empty-arm case
// in a two-sample CS) into this state's tier without touching counters.
func (s *State) DowngradeTo(tier spec.GuaranteeTier) {
	s.tier = s.tier.Worse(tier)
}
