package api

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's Prometheus collectors. Create one per process,
// or per registry in tests.
type Metrics struct {
	AssessmentsTotal *prometheus.CounterVec
	Duration         prometheus.Histogram
	OverallScore     prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		AssessmentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "compass_assessments_total",
				Help: "Total number of assessments evaluated",
			},
			[]string{"phase"},
		),
		Duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "compass_assessment_duration_seconds",
				Help:    "Time spent evaluating a single assessment",
				Buckets: prometheus.DefBuckets,
			},
		),
		OverallScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "compass_assessment_overall_score",
				Help:    "Distribution of overall assessment scores",
				Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
			},
		),
	}
	reg.MustRegister(m.AssessmentsTotal, m.Duration, m.OverallScore)
	return m
}
