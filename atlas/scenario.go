package atlas

import "github.com/nibzard/anytime/spec"

// Scenario describes one Monte-Carlo generative setting: a stream spec,
// the true parameter the stream is generated under, and the sample size
// and seed for reproducibility.
type Scenario struct {
	Name      string
	Spec      spec.StreamSpec
	TrueMean  float64 // true mean (or rate, for kind=Bernoulli) the stream is drawn from
	N         int      // horizon: number of observations to generate
	Seed      int64
}

// ABScenario is the two-sample analogue of Scenario: each arm is drawn
// from its own true mean under the shared spec's support/kind.
type ABScenario struct {
	Name       string
	ABSpec     spec.ABSpec
	TrueMeanA  float64
	TrueMeanB  float64
	N          int // per-arm horizon
	Seed       int64
}
