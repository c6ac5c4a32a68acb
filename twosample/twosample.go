package twosample

import (
	"github.com/nibzard/anytime/ebernstein"
	"github.com/nibzard/anytime/hoeffding"
	"github.com/nibzard/anytime/onesample"
	"github.com/nibzard/anytime/spec"
)

const methodPrefix = "TwoSample"

// CS is a two-sample confidence sequence over Delta = mean(B) - mean(A),
// built from two independent one-sample onesample.CS instances of the
// same underlying method.
type CS struct {
	abSpec     spec.ABSpec
	armMethod  string
	armA, armB onesample.CS
}

// New constructs a two-sample CS over abSpec using factory to build each
// arm's one-sample CS at confidence level 1-alpha/2. abSpec.TwoSided()
// must be true (v1 supports two-sided Delta only).
func New(abSpec spec.ABSpec, factory onesample.Factory) (*CS, error) {
	const method = "twosample.New"
	if !abSpec.TwoSided() {
		return nil, spec.NewConfigError(method, spec.ErrOneSidedTwoSample)
	}

	armOpts := []spec.StreamOption{
		spec.WithAlpha(abSpec.Alpha() / 2),
		spec.WithKind(abSpec.Kind()),
		spec.WithSupport(abSpec.Support().A, abSpec.Support().B),
		spec.WithTwoSided(true),
		spec.WithClipMode(abSpec.ClipMode()),
		spec.WithName(abSpec.Name()),
	}
	armSpec, err := spec.NewStreamSpec(armOpts...)
	if err != nil {
		return nil, err
	}

	armA, err := factory(armSpec)
	if err != nil {
		return nil, err
	}
	armB, err := factory(armSpec)
	if err != nil {
		return nil, err
	}

	return &CS{abSpec: abSpec, armA: armA, armB: armB}, nil
}

// NewHoeffding builds a two-sample CS using hoeffding.CS per arm — the
// recommender's "union-of-Bernoulli variant" for kind=bernoulli
// two-sample specs (Bernoulli values are bounded in (0,1), so the
// generic Hoeffding bound applies directly).
func NewHoeffding(abSpec spec.ABSpec) (*CS, error) {
	cs, err := New(abSpec, func(sp spec.StreamSpec) (onesample.CS, error) { return hoeffding.New(sp) })
	if err != nil {
		return nil, err
	}
	cs.armMethod = "HoeffdingCS"
	return cs, nil
}

// NewEmpiricalBernstein builds a two-sample CS using ebernstein.CS per
// arm — the recommender's default for kind=bounded two-sample specs.
func NewEmpiricalBernstein(abSpec spec.ABSpec) (*CS, error) {
	cs, err := New(abSpec, func(sp spec.StreamSpec) (onesample.CS, error) { return ebernstein.New(sp) })
	if err != nil {
		return nil, err
	}
	cs.armMethod = "EmpiricalBernsteinCS"
	return cs, nil
}

// Update folds one observation tagged with its arm. An arm other than
// spec.ArmA or spec.ArmB is a ConfigError, not a data error.
func (c *CS) Update(arm spec.Arm, x float64) error {
	switch arm {
	case spec.ArmA:
		return c.armA.Update(x)
	case spec.ArmB:
		return c.armB.Update(x)
	default:
		return spec.NewConfigError(c.methodName(), spec.ErrUnknownArm)
	}
}

// Interval returns the current two-sample confidence sequence snapshot
// for Delta = mean(B) - mean(A).
func (c *CS) Interval() spec.Interval {
	ivA := c.armA.Interval()
	ivB := c.armB.Interval()

	lo := ivB.Lo - ivA.Hi
	hi := ivB.Hi - ivA.Lo
	if hi < lo {
		hi = lo
	}
	estimate := ivB.Estimate - ivA.Estimate

	tier := ivA.Tier.Worse(ivB.Tier)
	if ivA.T == 0 || ivB.T == 0 {
		tier = tier.Worse(spec.Diagnostic)
	}

	diag := spec.DiagnosticsSnapshot{
		ClippedCount:    ivA.Diagnostics.ClippedCount + ivB.Diagnostics.ClippedCount,
		MissingCount:    ivA.Diagnostics.MissingCount + ivB.Diagnostics.MissingCount,
		OutOfRangeCount: ivA.Diagnostics.OutOfRangeCount + ivB.Diagnostics.OutOfRangeCount,
		DriftDetected:   ivA.Diagnostics.DriftDetected || ivB.Diagnostics.DriftDetected,
		Method:          c.methodName(),
	}
	if ivA.T == 0 || ivB.T == 0 {
		diag.Notes = append(diag.Notes, "one or more arms have not yet received an observation")
	}

	return spec.Interval{
		T: ivA.T + ivB.T, Estimate: estimate, Lo: lo, Hi: hi,
		Tier: tier, Alpha: c.abSpec.Alpha(), Diagnostics: diag,
	}
}

// Reset clears both arms' state and establishes a new epoch.
func (c *CS) Reset() {
	c.armA.Reset()
	c.armB.Reset()
}

func (c *CS) methodName() string {
	if c.armMethod == "" {
		return methodPrefix
	}
	return methodPrefix + "(" + c.armMethod + ")"
}
