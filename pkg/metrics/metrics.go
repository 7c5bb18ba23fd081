package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request latency in seconds.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// DBQueryDuration tracks database query latency in seconds.
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation", "table"},
	)

	// SyncConsumeLatency tracks calendar-sync message handling latency in milliseconds.
	SyncConsumeLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sync_consume_latency_ms",
			Help:    "Calendar sync message consumption latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10), // 10ms to ~10s
		},
		[]string{"action"},
	)

	// SyncEventCount counts processed calendar-sync events by outcome.
	SyncEventCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sync_event_count",
			Help: "Total number of calendar sync events processed",
		},
		[]string{"action", "status"}, // status: success, failed
	)

	// ImportCount counts transfer imports by format and outcome.
	ImportCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transfer_import_count",
			Help: "Total number of import attempts",
		},
		[]string{"format", "status"},
	)
)

// ObserveDBQuery records one repository query. Call deferred with the
// method entry time.
func ObserveDBQuery(operation, table string, start time.Time) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}

// RecordSyncConsume records one consumed sync event.
func RecordSyncConsume(action string, start time.Time, err error) {
	SyncConsumeLatency.WithLabelValues(action).Observe(float64(time.Since(start).Milliseconds()))
	status := "success"
	if err != nil {
		status = "failed"
	}
	SyncEventCount.WithLabelValues(action, status).Inc()
}
