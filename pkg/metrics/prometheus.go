package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"InsightFlow/internal/domain/models"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	refreshes   *prometheus.CounterVec
	analyses    *prometheus.CounterVec
	errors      *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	lastRefresh *prometheus.GaugeVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		refreshes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insightflow_store_refreshes_total",
				Help: "Total store refreshes by domain and data source",
			},
			[]string{"domain", "source"},
		),
		analyses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insightflow_analyses_total",
				Help: "Total analysis requests by topic and outcome",
			},
			[]string{"topic", "outcome"},
		),
		errors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insightflow_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "insightflow_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		lastRefresh: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "insightflow_last_refresh_timestamp_seconds",
				Help: "Unix timestamp of the most recent refresh per domain",
			},
			[]string{"domain"},
		),
	}
}

// RecordRefresh counts one store refresh and the source that served it.
func (r *Recorder) RecordRefresh(domain models.Domain, source models.Source) {
	r.refreshes.WithLabelValues(string(domain), string(source)).Inc()
	r.lastRefresh.WithLabelValues(string(domain)).Set(float64(time.Now().Unix()))
}

// RecordAnalysis counts one analysis request outcome.
func (r *Recorder) RecordAnalysis(topic models.Topic, outcome string) {
	r.analyses.WithLabelValues(string(topic), outcome).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errors.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
