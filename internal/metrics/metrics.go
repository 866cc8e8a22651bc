// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journal_mutations_total",
			Help: "Total number of entity mutations",
		},
		[]string{"entity", "op"},
	)

	SubmissionScore = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "submission_score",
			Help:    "Distribution of computed submission scores",
			Buckets: prometheus.LinearBuckets(0, 5, 10),
		},
		[]string{"course"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)
)
