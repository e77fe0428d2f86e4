package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records operation counts and latency for the in-memory record stores.
type StoreMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	records  *prometheus.GaugeVec
}

// NewStoreMetrics registers the record store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "record_store_operation_duration_seconds",
		Help:    "Duration of record store operations, including simulated latency.",
		Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.2, 0.3, 0.4, 0.5, 1},
	}, []string{"store", "op"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "record_store_operation_success_total",
		Help: "Successful record store operations.",
	}, []string{"store", "op"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "record_store_operation_failure_total",
		Help: "Failed record store operations.",
	}, []string{"store", "op"})
	records := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "record_store_records",
		Help: "Number of records currently held by each store.",
	}, []string{"store"})
	reg.MustRegister(duration, success, failure, records)
	return &StoreMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		records:  records,
	}
}

// Observe records the outcome and duration of one store operation.
func (m *StoreMetrics) Observe(store, op string, duration time.Duration, err error) {
	if m == nil || m.duration == nil {
		return
	}
	store, op = normalizeLabel(store), normalizeLabel(op)
	m.duration.WithLabelValues(store, op).Observe(duration.Seconds())
	if err != nil {
		m.failure.WithLabelValues(store, op).Inc()
		return
	}
	m.success.WithLabelValues(store, op).Inc()
}

// SetRecords publishes the current record count for a store.
func (m *StoreMetrics) SetRecords(store string, count int) {
	if m == nil || m.records == nil {
		return
	}
	m.records.WithLabelValues(normalizeLabel(store)).Set(float64(count))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
