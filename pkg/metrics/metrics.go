package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	UploadRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upload_runs_total",
			Help: "Number of finished upload runs",
		},
		[]string{"status"}, // rejected|completed|partial|failed|superseded
	)
	UploadRowErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upload_row_errors_total",
			Help: "Number of row errors reported to users",
		},
		[]string{"stage"}, // structural|business_rule|submission
	)
	UploadParsedRows = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "upload_parsed_rows_total",
			Help: "Number of data rows parsed from uploaded files",
		},
	)
	RemoteCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "remote_call_duration_seconds",
			Help:    "Duration of calls to remote validation and cart services",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"client", "outcome"}, // outcome: ok|error
	)
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
	KafkaMessagesProduced = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_produced_total",
			Help: "Number of messages written to Kafka",
		},
		[]string{"topic", "outcome"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_cache_operations_total",
			Help: "Cart context cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_cache_size",
			Help: "Number of sessions currently in cart cache",
		},
	)
)

// MustRegister — регистрирует метрики в глобальном реестре; повторный вызов безопасен.
func MustRegister() {
	collectors := []prometheus.Collector{
		UploadRuns, UploadRowErrors, UploadParsedRows, RemoteCallDuration,
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed, KafkaMessagesProduced,
		CacheOps, CacheSize,
	}
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			panic(err)
		}
	}
}
