package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	BoardAnalyzeLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "insightflow",
			Subsystem: "board",
			Name:      "analyze_latency_seconds",
			Help:      "Latency of the analyze endpoint",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"domain"},
	)

	BoardAnalyzeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "insightflow",
			Subsystem: "board",
			Name:      "analyze_errors_total",
			Help:      "Errors by analyze endpoint domain",
		},
		[]string{"domain"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(BoardAnalyzeLatency, BoardAnalyzeErrors)
	})
}
