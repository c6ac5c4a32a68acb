package ebernstein

import (
	"math"

	"github.com/nibzard/anytime/diagnostics"
	"github.com/nibzard/anytime/estimator"
	"github.com/nibzard/anytime/numerics"
	"github.com/nibzard/anytime/onesample"
	"github.com/nibzard/anytime/spec"
)

var _ onesample.CS = (*CS)(nil)

const methodName = "EmpiricalBernsteinCS"

// Constant triple in the half-width formula: Maurer & Pontil (2009) /
// Howard et al. (2021) time-uniform empirical-Bernstein bound.
const (
	varianceCoeff = 2.0
	biasCoeff     = 7.0
	biasDivisor   = 3.0
)

// CS is an Empirical-Bernstein confidence sequence over a single bounded
// stream.
type CS struct {
	sp   spec.StreamSpec
	est  *estimator.Welford
	diag *diagnostics.State
}

// New constructs an Empirical-Bernstein CS over sp. sp.Kind() must be
// Bounded or BernoulliKind.
func New(sp spec.StreamSpec) (*CS, error) {
	if sp.Kind() != spec.Bounded && sp.Kind() != spec.BernoulliKind {
		return nil, spec.NewConfigError(methodName, spec.ErrUnsupportedKind)
	}
	return &CS{
		sp:   sp,
		est:  estimator.New(),
		diag: diagnostics.NewState(methodName, sp),
	}, nil
}

// Update folds one observation into the running estimate.
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

	if n < 2 {
		estimate := numerics.Clip(mean, a, b)
		return spec.Interval{
			T: n, Estimate: estimate, Lo: a, Hi: b,
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

func (c *CS) halfWidth(n int) float64 {
	a, b := c.sp.Support().A, c.sp.Support().B
	alpha := c.sp.Alpha()
	sigma2 := c.est.Variance()
	nf := float64(n)
	logInvAlpha := math.Log(1 / alpha)

	variancePart := math.Sqrt(varianceCoeff * sigma2 * logInvAlpha / nf)
	biasPart := biasCoeff * (b - a) * logInvAlpha / (biasDivisor * (nf - 1))
	return variancePart + biasPart
}

// Reset clears all state and establishes a new epoch at tier Guaranteed.
func (c *CS) Reset() {
	c.est.Reset()
	c.diag.Reset()
}
