package atlas

import (
	"github.com/nibzard/anytime/onesample"
	"github.com/nibzard/anytime/spec"
)

// ReplicateResult is the outcome of driving one independent CS instance
// over one generated stream under one stopping rule.
type ReplicateResult struct {
	StoppedAt  int     // t at which the stopping rule fired (or the horizon)
	Covered    bool    // true iff TrueMean was inside the interval at StoppedAt
	FinalWidth float64 // interval width at StoppedAt
}

// RunReplicate drives one factory-built CS instance over one generated
// stream for scenario, stopping at the first t where rule fires (or at
// the scenario horizon).
func RunReplicate(scenario Scenario, factory onesample.Factory, rule StoppingRule) (ReplicateResult, error) {
	cs, err := factory(scenario.Spec)
	if err != nil {
		return ReplicateResult{}, err
	}

	xs := generate(scenario.Spec, scenario.TrueMean, scenario.N, scenario.Seed)

	var result ReplicateResult
	for i, x := range xs {
		if err := cs.Update(x); err != nil {
			return ReplicateResult{}, err
		}
		t := i + 1
		iv := cs.Interval()
		if rule(t, iv) || t == scenario.N {
			result = ReplicateResult{
				StoppedAt:  t,
				Covered:    scenario.TrueMean >= iv.Lo && scenario.TrueMean <= iv.Hi,
				FinalWidth: iv.Width(),
			}
			break
		}
	}
	return result, nil
}

// EProcessReplicateResult is the outcome of driving one e-process
// instance over one generated stream.
type EProcessReplicateResult struct {
	StoppedAt int
	Decision  bool
}

// EProcess is the capability set RunEProcessReplicate drives: any
// one-sample e-process exposing Update/EValue, such as eprocess.BernoulliE.
type EProcess interface {
	Update(x float64) error
	EValue() spec.EValue
}

// EProcessFactory constructs a fresh EProcess instance over sp.
type EProcessFactory func(sp spec.StreamSpec) (EProcess, error)

// RunEProcessReplicate drives one factory-built e-process instance over
// one generated stream for scenario, running to the full horizon (an
// e-process's decision is latched, so "stopping early" just means
// reading the snapshot at an earlier t; this always returns the final
// snapshot at scenario.N).
func RunEProcessReplicate(scenario Scenario, factory EProcessFactory) (EProcessReplicateResult, error) {
	ep, err := factory(scenario.Spec)
	if err != nil {
		return EProcessReplicateResult{}, err
	}

	xs := generate(scenario.Spec, scenario.TrueMean, scenario.N, scenario.Seed)

	decision := false
	for _, x := range xs {
		if err := ep.Update(x); err != nil {
			return EProcessReplicateResult{}, err
		}
		if ep.EValue().Decision {
			decision = true
		}
	}
	return EProcessReplicateResult{StoppedAt: scenario.N, Decision: decision}, nil
}
