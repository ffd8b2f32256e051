package optimizer

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts engine activity for the /metrics endpoint.
type Metrics struct {
	ComplianceAnalyses prometheus.Counter
	PlansGenerated     prometheus.Counter
	EffectPreviews     *prometheus.CounterVec
	RecomputeFallbacks prometheus.Counter
	ComplianceScores   prometheus.Histogram
}

// NewMetrics builds and registers the engine metrics on the given
// registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ComplianceAnalyses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "brewsmith",
			Subsystem: "optimizer",
			Name:      "compliance_analyses_total",
			Help:      "Number of style compliance analyses performed.",
		}),
		PlansGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "brewsmith",
			Subsystem: "optimizer",
			Name:      "plans_generated_total",
			Help:      "Number of adjustment plans generated.",
		}),
		EffectPreviews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brewsmith",
			Subsystem: "optimizer",
			Name:      "effect_previews_total",
			Help:      "Number of cascading-effect previews, by prediction source.",
		}, []string{"source"}),
		RecomputeFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "brewsmith",
			Subsystem: "optimizer",
			Name:      "recompute_fallbacks_total",
			Help:      "Previews that fell back to the model-only prediction.",
		}),
		ComplianceScores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "brewsmith",
			Subsystem: "optimizer",
			Name:      "compliance_score",
			Help:      "Distribution of overall compliance scores.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),
	}
	if reg != nil {
		reg.MustRegister(
			m.ComplianceAnalyses,
			m.PlansGenerated,
			m.EffectPreviews,
			m.RecomputeFallbacks,
			m.ComplianceScores,
		)
	}
	return m
}
