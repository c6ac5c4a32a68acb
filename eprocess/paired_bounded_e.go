package eprocess

import (
	"math"

	"github.com/nibzard/anytime/diagnostics"
	"github.com/nibzard/anytime/estimator"
	"github.com/nibzard/anytime/spec"
)

const pairedBoundedEMethodName = "PairedBoundedE"

// pairedRho is the tuning parameter of the normal-mixture e-process,
// playing the same role as hoeffding.RhoDefault: it sets the increment
// scale at which the mixture is tightest. Howard, Ramdas, McAllester &
// Zhang (2021), "Time-uniform, nonparametric, nonasymptotic confidence
// sequences", §3.3 (normal mixture / "Gaussian" method).
const pairedRho = 1.0

// PairedBoundedE is a two-sample paired bounded e-process testing H0:
// Delta <= 0 / >= 0 / = 0. Observations arrive tagged
// with arm; each arm holds at most one unmatched value, and as soon as
// both arms hold one, the two are consumed as one bounded increment
// y_i = x_B - x_A in [-(b-a), b-a]. A new value on an arm that already
// holds an unmatched one overwrites it — if one arm runs ahead of the
// other, earlier unmatched values on that arm are never paired, a
// documented constant-memory limitation.
//
// Each paired increment feeds a normal-mixture martingale over the
// running sum S_t = sum(y_i) and sum-of-squares V_t = sum(y_i^2):
//
//	log E_t = 1/2*log(rho^2/(V_t*rho^2+1)) + S_t^2*rho^2 / (2*(V_t*rho^2+1))
//
// which is a closed-form e-process for a null mean of zero on a stream
// whose increments lie in a bounded range, analogous in spirit to the
// stitched Hoeffding bound used by hoeffding.CS.
type PairedBoundedE struct {
	abSpec spec.ABSpec
	side   Side
	rho    float64

	diagA, diagB *diagnostics.State
	estA, estB   *estimator.Welford

	pendingA, pendingB       float64
	hasPendingA, hasPendingB bool

	n            int
	sSum, vSum   float64
	logE         float64
	latched      bool
}

// New2Sample constructs a paired bounded e-process over abSpec testing the
// given side of Delta = mean(B) - mean(A) against zero.
func New2Sample(abSpec spec.ABSpec, side Side) (*PairedBoundedE, error) {
	sp := abSpec.StreamSpec
	return &PairedBoundedE{
		abSpec: abSpec,
		side:   side,
		rho:    pairedRho,
		diagA:  diagnostics.NewState(pairedBoundedEMethodName, sp),
		diagB:  diagnostics.NewState(pairedBoundedEMethodName, sp),
		estA:   estimator.New(),
		estB:   estimator.New(),
	}, nil
}

// Update folds one arm-tagged observation. An unrecognized arm is a
// ConfigError.
func (p *PairedBoundedE) Update(arm spec.Arm, x float64) error {
	switch arm {
	case spec.ArmA:
		value, applied, err := p.diagA.Process(x, p.estA.N(), p.estA.Mean())
		if err != nil {
			return err
		}
		if !applied {
			return nil
		}
		p.estA.Update(value)
		p.pendingA, p.hasPendingA = value, true
	case spec.ArmB:
		value, applied, err := p.diagB.Process(x, p.estB.N(), p.estB.Mean())
		if err != nil {
			return err
		}
		if !applied {
			return nil
		}
		p.estB.Update(value)
		p.pendingB, p.hasPendingB = value, true
	default:
		return spec.NewConfigError(pairedBoundedEMethodName, spec.ErrUnknownArm)
	}

	if p.hasPendingA && p.hasPendingB {
		p.consumePair()
	}
	return nil
}

func (p *PairedBoundedE) consumePair() {
	support := p.abSpec.Support()
	width := support.B - support.A

	y := p.pendingB - p.pendingA
	if y < -width {
		y = -width
	}
	if y > width {
		y = width
	}
	p.hasPendingA, p.hasPendingB = false, false

	p.n++
	p.sSum += y
	p.vSum += y * y

	rho2 := p.rho * p.rho
	denom := p.vSum*rho2 + 1
	p.logE = 0.5*math.Log(rho2/denom) + (p.sSum*p.sSum*rho2)/(2*denom)

	threshold := -math.Log(p.abSpec.Alpha())
	if !p.latched && p.logE >= threshold {
		observedMean := p.sSum / float64(p.n)
		if p.side.directionOK(observedMean, 0) {
			p.latched = true
		}
	}
}

// EValue returns the current e-process snapshot, t counted in paired
// increments consumed so far.
func (p *PairedBoundedE) EValue() spec.EValue {
	tier := p.diagA.Tier().Worse(p.diagB.Tier())
	snapA, snapB := p.diagA.Snapshot(), p.diagB.Snapshot()
	diag := spec.DiagnosticsSnapshot{
		ClippedCount:    snapA.ClippedCount + snapB.ClippedCount,
		MissingCount:    snapA.MissingCount + snapB.MissingCount,
		OutOfRangeCount: snapA.OutOfRangeCount + snapB.OutOfRangeCount,
		DriftDetected:   snapA.DriftDetected || snapB.DriftDetected,
		Method:          pairedBoundedEMethodName,
	}
	return spec.NewEValue(p.n, p.logE, p.abSpec.Alpha(), p.latched, tier, diag)
}

// Reset clears all state, including unmatched pending values, and
// establishes a new epoch.
func (p *PairedBoundedE) Reset() {
	p.diagA.Reset()
	p.diagB.Reset()
	p.estA.Reset()
	p.estB.Reset()
	p.pendingA, p.pendingB = 0, 0
	p.hasPendingA, p.hasPendingB = false, false
	p.n = 0
	p.sSum, p.vSum = 0, 0
	p.logE = 0
	p.latched = false
}
