package atlas

import "github.com/nibzard/anytime/spec"

// StoppingRule decides, after the t-th observation has been folded in
// and iv is its resulting snapshot, whether the replicate should stop.
// It is evaluated once per step; a replicate that never returns true
// runs to the scenario's horizon.
type StoppingRule func(t int, iv spec.Interval) bool

// FixedHorizon never stops early; the replicate always runs to the
// scenario's full horizon.
func FixedHorizon() StoppingRule {
	return func(t int, iv spec.Interval) bool { return false }
}

// StopWhenExcluded stops the first time trueParam falls outside the
// current interval — the "stop as soon as the CS would mislead you"
// rule used to stress-test anytime coverage under optional stopping.
func StopWhenExcluded(trueParam float64) StoppingRule {
	return func(t int, iv spec.Interval) bool {
		return trueParam < iv.Lo || trueParam > iv.Hi
	}
}

// PeriodicLooks stops at the first multiple of period (at or after
// minLook) where the caller "looks" and finds the interval width below
// widthThreshold, modeling a practitioner who checks every period steps
// and stops once the result is "tight enough". A non-positive
// widthThreshold disables the width check and the rule stops on every
// period-th look unconditionally.
func PeriodicLooks(period, minLook int, widthThreshold float64) StoppingRule {
	return func(t int, iv spec.Interval) bool {
		if t < minLook || t%period != 0 {
			return false
		}
		if widthThreshold <= 0 {
			return true
		}
		return iv.Width() <= widthThreshold
	}
}
