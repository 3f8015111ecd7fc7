package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the analytics service.
type Metrics struct {
	Uploads       prometheus.Counter
	Queries       *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
}

// NewMetrics registers the service instruments on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Uploads: factory.NewCounter(prometheus.CounterOpts{
			Name: "rea_dataset_uploads_total",
			Help: "Number of dataset upload attempts.",
		}),
		Queries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rea_queries_total",
			Help: "Number of analytics queries by operation.",
		}, []string{"operation"}),
		QueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rea_query_duration_seconds",
			Help:    "Latency of analytics queries by operation.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}
