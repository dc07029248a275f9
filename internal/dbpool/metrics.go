package dbpool

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var latencyBuckets = []float64{
	.001, .002, .005, .01, .02, .05, .1, .2, .5, 1, 2, 5, 10,
}

var (
	statementDurations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "flostore_statement_duration_seconds",
		Help:    "the length of time it took to execute a prepared statement",
		Buckets: latencyBuckets,
	}, []string{"statement"})

	statementErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flostore_statement_errors_total",
		Help: "the number of times a prepared statement returned an error",
	}, []string{"statement"})
)
