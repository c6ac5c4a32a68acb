package atlas

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder publishes batch Metrics as Prometheus gauges, labeled by
// scenario name, for a dashboard to track coverage/Type-I/power/width
// drift across atlas runs over time. It is optional: nothing in the
// core or in RunReplicates requires it.
type Recorder struct {
	coverage  *prometheus.GaugeVec
	typeI     *prometheus.GaugeVec
	power     *prometheus.GaugeVec
	meanWidth *prometheus.GaugeVec
}

// NewRecorder registers the atlas gauge vectors against reg. Pass
// prometheus.NewRegistry() for an isolated registry in tests, or
// prometheus.DefaultRegisterer to expose via the default /metrics
// endpoint.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		coverage: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "anytime",
			Subsystem: "atlas",
			Name:      "coverage_ratio",
			Help:      "Fraction of replicates where the true parameter stayed inside the confidence sequence.",
		}, []string{"scenario"}),
		typeI: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "anytime",
			Subsystem: "atlas",
			Name:      "type1_error_ratio",
			Help:      "Fraction of null-scenario replicates where the e-process decision ever latched.",
		}, []string{"scenario"}),
		power: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "anytime",
			Subsystem: "atlas",
			Name:      "power_ratio",
			Help:      "Fraction of alternative-scenario replicates where the e-process decision ever latched.",
		}, []string{"scenario"}),
		meanWidth: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "anytime",
			Subsystem: "atlas",
			Name:      "mean_width",
			Help:      "Mean final confidence sequence width across replicates.",
		}, []string{"scenario"}),
	}
}

// RecordCoverage publishes a coverage-scenario Metrics batch.
func (r *Recorder) RecordCoverage(scenario string, m Metrics) {
	r.coverage.WithLabelValues(scenario).Set(m.Coverage)
	r.meanWidth.WithLabelValues(scenario).Set(m.MeanWidth)
}

// RecordTypeI publishes a null-scenario decision-rate measurement.
func (r *Recorder) RecordTypeI(scenario string, rate float64) {
	r.typeI.WithLabelValues(scenario).Set(rate)
}

// RecordPower publishes an alternative-scenario decision-rate measurement.
func (r *Recorder) RecordPower(scenario string, rate float64) {
	r.power.WithLabelValues(scenario).Set(rate)
}
