package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PlacementsRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "placements_registered_total",
			Help: "Number of placements registered successfully",
		},
	)
	PlacementFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placement_failures_total",
			Help: "Number of failed placement registrations by reason",
		},
		[]string{"reason"}, // invalid|product_not_found|warehouse_not_found|order_not_found|conflict|write_failed
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
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

var registered = false

func MustRegister() {
	if registered {
		return
	}
	prometheus.MustRegister(
		PlacementsRegistered, PlacementFailures,
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		CacheOps, CacheSize,
	)
	registered = true
}
