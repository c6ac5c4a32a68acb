package eprocess

import (
	"math"

	"github.com/nibzard/anytime/diagnostics"
	"github.com/nibzard/anytime/numerics"
	"github.com/nibzard/anytime/spec"
)

const bernoulliEMethodName = "BernoulliMixtureE"

// priorAlpha, priorBeta fix the Beta(1/2,1/2) mixture alternative, shared
// with the bernoulli package's confidence sequence.
const (
	priorAlpha = 0.5
	priorBeta  = 0.5
)

// BernoulliE is a one-sample Bernoulli mixture e-process testing a null
// rate p0. The mixture alternative is a Beta(1/2,1/2)
// prior over the true rate; the e-value at time t is the sequential
// Bayes factor of that mixture against the point null Bernoulli(p0),
// computed in closed form from log-Beta differences:
//
//	log E_t = LogBeta(s+1/2, f+1/2) - LogBeta(1/2,1/2) - (s*log(p0) + f*log(1-p0))
//
// This is a valid e-process for the point null p=p0; side narrows the
// decision to a one-sided alternative by additionally requiring the
// running rate to sit on the correct side of p0 before latching.
type BernoulliE struct {
	sp   spec.StreamSpec
	p0   float64
	side Side
	diag *diagnostics.State

	s, f    int
	logE    float64
	latched bool
}

// New constructs a Bernoulli mixture e-process over sp testing H0 at p0
// with the given side. sp.Kind() must be BernoulliKind; p0 must be in
// (0,1).
func New(sp spec.StreamSpec, p0 float64, side Side) (*BernoulliE, error) {
	if sp.Kind() != spec.BernoulliKind {
		return nil, spec.NewConfigError(bernoulliEMethodName, spec.ErrUnsupportedKind)
	}
	if !(p0 > 0 && p0 < 1) {
		return nil, spec.NewConfigError(bernoulliEMethodName, spec.ErrInvalidNullRate)
	}
	return &BernoulliE{
		sp: sp, p0: p0, side: side,
		diag: diagnostics.NewState(bernoulliEMethodName, sp),
	}, nil
}

// Update folds one observation into the running success/failure counts
// and recomputes the log e-value. Values are rounded to the nearest
// trial outcome once they clear the diagnostics range gate, mirroring
// bernoulli.CS.
func (b *BernoulliE) Update(x float64) error {
	n := b.s + b.f
	mean := 0.0
	if n > 0 {
		mean = float64(b.s) / float64(n)
	}
	value, applied, err := b.diag.Process(x, n, mean)
	if err != nil {
		return err
	}
	if !applied {
		return nil
	}
	if value >= 0.5 {
		b.s++
	} else {
		b.f++
	}

	sf, ff := float64(b.s), float64(b.f)
	b.logE = numerics.LogBeta(sf+priorAlpha, ff+priorBeta) - numerics.LogBeta(priorAlpha, priorBeta) -
		(sf*math.Log(b.p0) + ff*math.Log(1-b.p0))

	threshold := -math.Log(b.sp.Alpha())
	if !b.latched && b.logE >= threshold {
		total := b.s + b.f
		observedMean := float64(b.s) / float64(total)
		if b.side.directionOK(observedMean, b.p0) {
			b.latched = true
		}
	}
	return nil
}

// EValue returns the current e-process snapshot.
func (b *BernoulliE) EValue() spec.EValue {
	t := b.s + b.f
	return spec.NewEValue(t, b.logE, b.sp.Alpha(), b.latched, b.diag.Tier(), b.diag.Snapshot())
}

// Reset clears all state and establishes a new epoch.
func (b *BernoulliE) Reset() {
	b.s, b.f = 0, 0
	b.logE = 0
	b.latched = false
	b.diag.Reset()
}
