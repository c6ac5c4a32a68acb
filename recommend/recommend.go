package recommend

import "github.com/nibzard/anytime/spec"

// Method names one of the concrete CS/e-process constructions. Values
// are stable strings; they are part of the logging/audit contract.
type Method string

const (
	BernoulliMixtureCS           Method = "BernoulliMixtureCS"
	EmpiricalBernsteinCS         Method = "EmpiricalBernsteinCS"
	HoeffdingCS                  Method = "HoeffdingCS"
	TwoSampleHoeffdingCS         Method = "TwoSampleHoeffdingCS"
	TwoSampleEmpiricalBernsteinCS Method = "TwoSampleEmpiricalBernsteinCS"
)

// Recommendation is the immutable result of RecommendCS/RecommendAB.
type Recommendation struct {
	Method       Method
	Reason       string
	TierExpected spec.GuaranteeTier
}

// RecommendCS selects a one-sample method. diag may be nil if no prior
// diagnostics snapshot is available (e.g. at construction time, before
// any observation has been seen).
func RecommendCS(sp spec.StreamSpec, diag *spec.DiagnosticsSnapshot) Recommendation {
	if sp.Kind() == spec.BernoulliKind {
		return Recommendation{
			Method:       BernoulliMixtureCS,
			Reason:       "kind=bernoulli: beta-binomial mixture strictly dominates bounded methods on 0/1 streams",
			TierExpected: spec.Guaranteed,
		}
	}

	if diag != nil && diag.DriftDetected {
		return Recommendation{
			Method:       HoeffdingCS,
			Reason:       "kind=bounded with drift_detected: falling back from empirical-Bernstein, whose variance adaptivity is unreliable under non-stationarity",
			TierExpected: spec.Diagnostic,
		}
	}

	return Recommendation{
		Method:       EmpiricalBernsteinCS,
		Reason:       "kind=bounded: variance-adaptive bound dominates Hoeffding whenever empirical variance is below (b-a)^2/4",
		TierExpected: spec.Guaranteed,
	}
}

// RecommendAB selects a two-sample method.
func RecommendAB(ab spec.ABSpec, diag *spec.DiagnosticsSnapshot) Recommendation {
	if ab.Kind() == spec.BernoulliKind {
		return Recommendation{
			Method:       TwoSampleHoeffdingCS,
			Reason:       "kind=bernoulli, two-sample: union-of-Bernoulli variant via per-arm Hoeffding bounds",
			TierExpected: spec.Guaranteed,
		}
	}

	tier := spec.Guaranteed
	if diag != nil && diag.DriftDetected {
		tier = spec.Diagnostic
	}
	return Recommendation{
		Method:       TwoSampleEmpiricalBernsteinCS,
		Reason:       "kind=bounded, two-sample: per-arm empirical-Bernstein CS combined by Minkowski difference",
		TierExpected: tier,
	}
}
