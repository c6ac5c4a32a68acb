package bernoulli

import (
	"math"

	"github.com/nibzard/anytime/diagnostics"
	"github.com/nibzard/anytime/numerics"
	"github.com/nibzard/anytime/onesample"
	"github.com/nibzard/anytime/spec"
)

var _ onesample.CS = (*CS)(nil)

const methodName = "BernoulliMixtureCS"

// priorAlpha and priorBeta fix the conjugate Beta(1/2,1/2) (Jeffreys)
// prior used by the mixture martingale.
const (
	priorAlpha = 0.5
	priorBeta  = 0.5
)

// CS is a beta-binomial mixture confidence sequence over a 0/1 stream.
type CS struct {
	sp   spec.StreamSpec
	diag *diagnostics.State
	s, f int
}

// New constructs a Bernoulli mixture CS over sp. sp.Kind() must be
// BernoulliKind.
func New(sp spec.StreamSpec) (*CS, error) {
	if sp.Kind() != spec.BernoulliKind {
		return nil, spec.NewConfigError(methodName, spec.ErrUnsupportedKind)
	}
	return &CS{sp: sp, diag: diagnostics.NewState(methodName, sp)}, nil
}

// Update folds one observation into the running success/failure counts.
// Values are expected in {0,1}; any value reaching this point already
// cleared the diagnostics range gate (so it lies in [0,1] under
// clip_mode=clip) and is rounded to the nearest trial outcome.
func (c *CS) Update(x float64) error {
	n := c.s + c.f
	mean := 0.0
	if n > 0 {
		mean = float64(c.s) / float64(n)
	}
	value, applied, err := c.diag.Process(x, n, mean)
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}
	if value >= 0.5 {
		c.s++
	} else {
		c.f++
	}
	return nil
}

// Interval returns the current time-uniform confidence sequence snapshot.
func (c *CS) Interval() spec.Interval {
	n := c.s + c.f
	alpha := c.sp.Alpha()

	if n == 0 {
		return spec.Interval{
			T: 0, Estimate: 0.5, Lo: 0, Hi: 1,
			Tier: c.diag.Tier(), Alpha: alpha, Diagnostics: c.diag.Snapshot(),
		}
	}

	phat := float64(c.s) / float64(n)
	logBB := numerics.LogBetaBinomial(c.s, n, priorAlpha, priorBeta)
	threshold := -math.Log(alpha)

	statFn := func(p float64) float64 {
		term1 := 0.0
		if c.s > 0 {
			if p <= 0 {
				return math.Inf(1)
			}
			term1 = -float64(c.s) * math.Log(p)
		}
		term2 := 0.0
		if c.f > 0 {
			if p >= 1 {
				return math.Inf(1)
			}
			term2 = -float64(c.f) * math.Log(1-p)
		}
		return logBB + term1 + term2
	}

	lo := 0.0
	if c.s > 0 {
		lo = numerics.BisectMonotoneDecreasing(statFn, 0, phat, threshold)
	}
	hi := 1.0
	if c.f > 0 {
		hi = numerics.BisectMonotoneIncreasing(statFn, phat, 1, threshold)
	}

	lo = numerics.Clip(lo, 0, 1)
	hi = numerics.Clip(hi, 0, 1)
	if hi < lo {
		hi = lo
	}
	estimate := numerics.Clip(phat, lo, hi)

	return spec.Interval{
		T: n, Estimate: estimate, Lo: lo, Hi: hi,
		Tier: c.diag.Tier(), Alpha: alpha, Diagnostics: c.diag.Snapshot(),
	}
}

// Reset clears all state and establishes a new epoch at tier Guaranteed.
func (c *CS) Reset() {
	c.s, c.f = 0, 0
	c.diag.Reset()
}
