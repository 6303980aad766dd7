package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestCount counts HTTP requests
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP request duration in seconds",
		},
		[]string{"method", "endpoint"},
	)

	// ReportCount counts similarity report computations
	ReportCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "similarity_reports_total",
			Help: "Total number of similarity report computations",
		},
		[]string{"status"},
	)

	// ReportDuration measures report computation duration
	ReportDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name: "similarity_report_duration_seconds",
			Help: "Similarity report computation duration in seconds",
		},
	)

	// PairsCompared counts pairwise comparisons performed by the engine
	PairsCompared = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "similarity_pairs_compared_total",
			Help: "Total number of submission pairs compared",
		},
	)

	// SubmissionsIngested counts submissions consumed from the stream
	SubmissionsIngested = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submissions_ingested_total",
			Help: "Total number of submissions ingested from the stream",
		},
		[]string{"status"},
	)
)

// InitPrometheus registers all metrics with the default registry.
func InitPrometheus() {
	prometheus.MustRegister(RequestCount)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(ReportCount)
	prometheus.MustRegister(ReportDuration)
	prometheus.MustRegister(PairsCompared)
	prometheus.MustRegister(SubmissionsIngested)
}
