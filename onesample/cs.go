package onesample

import "github.com/nibzard/anytime/spec"

// CS is the capability set every one-sample confidence-sequence
// construction implements. Update folds one observation and returns a
// *spec.AssumptionViolationError only under ClipMode=ClipError with an
// out-of-support value; all other assumption concerns degrade the tier
// returned by a subsequent Interval() call instead of raising. Interval
// returns the current immutable snapshot without mutating state. Reset
// clears all state and establishes a new epoch at tier Guaranteed.
type CS interface {
	Update(x float64) error
	Interval() spec.Interval
	Reset()
}

// Factory constructs a fresh CS instance over the given spec. Each
// one-sample package (hoeffding, ebernstein, bernoulli) exposes a
// constructor matching this shape so twosample can build one instance per
// arm generically.
type Factory func(sp spec.StreamSpec) (CS, error)
