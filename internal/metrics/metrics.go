package metrics

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
)

// Store metrics are managed by the MetricsManager singleton. These
// variables stay nil when business metrics are disabled.
var (
	StoreReadsTotal     *prometheus.CounterVec
	StoreWritesTotal    *prometheus.CounterVec
	DecodeFailuresTotal *prometheus.CounterVec
	SeedRunsTotal       *prometheus.CounterVec
)

// initializeStoreMetrics initializes store metrics if they haven't been initialized yet
func initializeStoreMetrics() {
	if StoreReadsTotal != nil {
		return // Already initialized
	}

	// Collection read counter
	StoreReadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_reads_total",
			Help: "Total number of collection reads",
		},
		[]string{"collection", "outcome"},
	)

	// Collection write counter
	StoreWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_writes_total",
			Help: "Total number of collection writes",
		},
		[]string{"collection", "outcome"},
	)

	// Unreadable persisted payloads
	DecodeFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_decode_failures_total",
			Help: "Total number of collection payloads that could not be decoded",
		},
		[]string{"collection"},
	)

	// Seed initializer outcomes
	SeedRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "seed_runs_total",
			Help: "Total number of seed initializer runs",
		},
		[]string{"result"}, // "seeded", "already_initialized", "failed"
	)

	// Register with the singleton registry
	mm := GetInstance()
	mm.registry.MustRegister(
		StoreReadsTotal,
		StoreWritesTotal,
		DecodeFailuresTotal,
		SeedRunsTotal,
	)
}

// RecordStoreRead records the outcome of a collection read
func RecordStoreRead(collection, outcome string) {
	// Check if business metrics are enabled
	if os.Getenv("ENABLE_BUSINESS_METRICS") != "true" {
		return
	}

	// Initialize metrics if needed
	initializeStoreMetrics()

	StoreReadsTotal.WithLabelValues(collection, outcome).Inc()
}

// RecordStoreWrite records the outcome of a collection write
func RecordStoreWrite(collection, outcome string) {
	// Check if business metrics are enabled
	if os.Getenv("ENABLE_BUSINESS_METRICS") != "true" {
		return
	}

	// Initialize metrics if needed
	initializeStoreMetrics()

	StoreWritesTotal.WithLabelValues(collection, outcome).Inc()
}

// RecordDecodeFailure records an unreadable collection payload
func RecordDecodeFailure(collection string) {
	// Check if business metrics are enabled
	if os.Getenv("ENABLE_BUSINESS_METRICS") != "true" {
		return
	}

	// Initialize metrics if needed
	initializeStoreMetrics()

	DecodeFailuresTotal.WithLabelValues(collection).Inc()
}

// RecordSeedRun records a seed initializer outcome
func RecordSeedRun(result string) {
	// Check if business metrics are enabled
	if os.Getenv("ENABLE_BUSINESS_METRICS") != "true" {
		return
	}

	// Initialize metrics if needed
	initializeStoreMetrics()

	SeedRunsTotal.WithLabelValues(result).Inc()
}
