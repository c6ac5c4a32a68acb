package atlas

import (
	"math/rand"

	"github.com/nibzard/anytime/spec"
)

// generate draws n observations for a one-sample scenario from a
// deterministic seeded source. For kind=Bernoulli, each draw is 1 with
// probability TrueMean, else 0. For kind=Bounded, each draw is a
// two-point distribution at the support endpoints {a,b} weighted so the
// population mean equals TrueMean — the maximum-variance distribution
// consistent with the declared support, the harder coverage case for any
// variance-adaptive method.
func generate(sp spec.StreamSpec, trueMean float64, n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	xs := make([]float64, n)

	if sp.Kind() == spec.BernoulliKind {
		for i := range xs {
			if rng.Float64() < trueMean {
				xs[i] = 1
			} else {
				xs[i] = 0
			}
		}
		return xs
	}

	support := sp.Support()
	a, b := support.A, support.B
	p := (trueMean - a) / (b - a)
	for i := range xs {
		if rng.Float64() < p {
			xs[i] = b
		} else {
			xs[i] = a
		}
	}
	return xs
}
