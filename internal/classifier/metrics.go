package classifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// classificationsTotal counts classifications by predicted category.
	classificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "assetclass",
			Subsystem: "classifier",
			Name:      "classifications_total",
			Help:      "Total number of classifications by predicted category",
		},
		[]string{"category"},
	)

	// classifyDuration tracks how long a single classification takes.
	classifyDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "assetclass",
			Subsystem: "classifier",
			Name:      "classify_duration_seconds",
			Help:      "Duration of classify calls in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// similarityFailures counts similarity lookups that degraded to zero.
	similarityFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "assetclass",
			Subsystem: "classifier",
			Name:      "similarity_failures_total",
			Help:      "Total number of similarity lookups that failed and scored zero",
		},
	)
)
