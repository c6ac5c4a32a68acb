package hoeffding

import (
	"math"

	"github.com/nibzard/anytime/diagnostics"
	"github.com/nibzard/anytime/estimator"
	"github.com/nibzard/anytime/numerics"
	"github.com/nibzard/anytime/onesample"
	"github.com/nibzard/anytime/spec"
)

var _ onesample.CS = (*CS)(nil)

// RhoDefault is the tuning constant rho in the stitched bound, fixed at
// the default tuning point of the stitching construction. (Howard et
// al., "Time-uniform, nonparametric, nonasymptotic confidence
// sequences", Ann. Statist. 2021.)
const RhoDefault = 1.0

// methodName is attached to every diagnostics snapshot and error from
// this package.
const methodName = "HoeffdingCS"

// CS is a Hoeffding confidence sequence over a single bounded stream.
type CS struct {
	sp   spec.StreamSpec
	est  *estimator.Welford
	diag *diagnostics.State
	rho  float64
}

// New constructs a Hoeffding CS over sp. sp.Kind() must be Bounded or
// BernoulliKind (Bernoulli values are bounded in (0,1), so Hoeffding
// applies, just not as tightly as bernoulli.CS).
func New(sp spec.StreamSpec) (*CS, error) {
	if sp.Kind() != spec.Bounded && sp.Kind() != spec.BernoulliKind {
		return nil, spec.NewConfigError(methodName, spec.ErrUnsupportedKind)
	}
	return &CS{
		sp:   sp,
		est:  estimator.New(),
		diag: diagnostics.NewState(methodName, sp),
		rho:  RhoDefault,
	}, nil
}

// Update folds one observation into the running estimate. It returns a
// *spec.AssumptionViolationError only when sp.ClipMode()==spec.ClipError
// and x falls outside the declared support; the observation is then not
// applied. All other assumption concerns are soft and surface on the
// next Interval() call instead.
func (c *CS) Update(x float64) error {
	n := c.est.N()
	value, applied, err := c.diag.Process(x, n, c.est.Mean())
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}
	c.est.Update(value)
	return nil
}

// Interval returns the current time-uniform confidence sequence snapshot.
func (c *CS) Interval() spec.Interval {
	n := c.est.N()
	a, b := c.sp.Support().A, c.sp.Support().B
	mean := c.est.Mean()

	if n == 0 {
		estimate := numerics.Clip(mean, a, b)
		return spec.Interval{
			T: 0, Estimate: estimate, Lo: a, Hi: b,
			Tier: c.diag.Tier(), Alpha: c.sp.Alpha(), Diagnostics: c.diag.Snapshot(),
		}
	}

	hw := c.halfWidth(n)

	var lo, hi float64
	if c.sp.TwoSided() {
		lo = math.Max(a, mean-hw)
		hi = math.Min(b, mean+hw)
	} else {
		lo = a
		hi = math.Min(b, mean+hw)
	}
	lo = numerics.Clip(lo, a, b)
	hi = numerics.Clip(hi, a, b)
	if hi < lo {
		hi = lo
	}
	estimate := numerics.Clip(mean, lo, hi)

	return spec.Interval{
		T: n, Estimate: estimate, Lo: lo, Hi: hi,
		Tier: c.diag.Tier(), Alpha: c.sp.Alpha(), Diagnostics: c.diag.Snapshot(),
	}
}

// halfWidth evaluates the stitched bound at observation count n (n>=1).
func (c *CS) halfWidth(n int) float64 {
	a, b := c.sp.Support().A, c.sp.Support().B
	alpha := c.sp.Alpha()
	rho2 := c.rho * c.rho
	nf := float64(n)

	term := (1 + 1/(nf*rho2)) * math.Log(math.Sqrt(nf*rho2+1)/alpha) / (2 * nf)
	if term < 0 {
		term = 0
	}
	return (b - a) * math.Sqrt(term)
}

// Reset clears all state and establishes a new epoch at tier Guaranteed.
func (c *CS) Reset() {
	c.est.Reset()
	c.diag.Reset()
}
