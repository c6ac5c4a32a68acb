package atlas

// Metrics aggregates a batch of replicate results into the summary
// statistics used to validate coverage, Type-I error, power, and width.
type Metrics struct {
	Replicates int
	Coverage   float64 // fraction of CS replicates where TrueMean stayed inside
	TypeI      float64 // fraction of null e-process replicates that ever latched
	Power      float64 // fraction of alternative e-process replicates that ever latched
	MeanWidth  float64
}

// AggregateCoverage summarizes a batch of CS replicate results: coverage
// proportion and mean final width.
func AggregateCoverage(results []ReplicateResult) Metrics {
	if len(results) == 0 {
		return Metrics{}
	}
	var covered int
	var widthSum float64
	for _, r := range results {
		if r.Covered {
			covered++
		}
		widthSum += r.FinalWidth
	}
	return Metrics{
		Replicates: len(results),
		Coverage:   float64(covered) / float64(len(results)),
		MeanWidth:  widthSum / float64(len(results)),
	}
}

// AggregateDecisionRate summarizes a batch of e-process replicate
// results into the fraction that ever latched a decision. Under a null
// scenario this is Type-I error; under an alternative scenario it is
// power. The caller picks the field.
func AggregateDecisionRate(results []EProcessReplicateResult) float64 {
	if len(results) == 0 {
		return 0
	}
	var latched int
	for _, r := range results {
		if r.Decision {
			latched++
		}
	}
	return float64(latched) / float64(len(results))
}
