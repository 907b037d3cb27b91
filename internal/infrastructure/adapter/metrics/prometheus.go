package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	coreport "github.com/amirhossein-jamali/loan-cob-lock/internal/domain/port/core"
)

const namespace = "loan_cob"

// PrometheusMetrics records step and store metrics with Prometheus collectors
type PrometheusMetrics struct {
	stepExecutions *prometheus.CounterVec
	stepDuration   *prometheus.HistogramVec
	locksApplied   *prometheus.CounterVec
	storeChunks    *prometheus.CounterVec
	storeChunkRows *prometheus.HistogramVec

	dbOpenConnections prometheus.Gauge
	dbInUse           prometheus.Gauge
	dbIdle            prometheus.Gauge
	dbWaitCount       prometheus.Gauge
	dbWaitDuration    prometheus.Gauge
}

var _ coreport.Metrics = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics creates the collectors and registers them on reg
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		stepExecutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "step_executions_total",
			Help:      "Total number of COB step executions by outcome",
		}, []string{"step", "outcome"}),
		stepDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Duration of COB step executions",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 14),
		}, []string{"step"}),
		locksApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loan_locks_applied_total",
			Help:      "Total number of loan account locks written",
		}, []string{"owner"}),
		storeChunks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lock_store_chunks_total",
			Help:      "Total number of bounded lock store calls",
		}, []string{"operation"}),
		storeChunkRows: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lock_store_chunk_size",
			Help:      "Number of parameters bound into one lock store call",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 9),
		}, []string{"operation"}),
		dbOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_open_connections",
			Help:      "Open database connections",
		}),
		dbInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_in_use_connections",
			Help:      "Database connections currently in use",
		}),
		dbIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_idle_connections",
			Help:      "Idle database connections",
		}),
		dbWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_wait_count",
			Help:      "Total number of connections waited for",
		}),
		dbWaitDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_wait_duration_seconds",
			Help:      "Total time blocked waiting for a connection",
		}),
	}

	reg.MustRegister(
		m.stepExecutions,
		m.stepDuration,
		m.locksApplied,
		m.storeChunks,
		m.storeChunkRows,
		m.dbOpenConnections,
		m.dbInUse,
		m.dbIdle,
		m.dbWaitCount,
		m.dbWaitDuration,
	)
	return m
}

// ObserveStep records one step execution
func (m *PrometheusMetrics) ObserveStep(step, outcome string, duration time.Duration) {
	m.stepExecutions.WithLabelValues(step, outcome).Inc()
	m.stepDuration.WithLabelValues(step).Observe(duration.Seconds())
}

// AddLocksApplied counts written locks
func (m *PrometheusMetrics) AddLocksApplied(owner string, count int) {
	m.locksApplied.WithLabelValues(owner).Add(float64(count))
}

// ObserveStoreChunk records one bounded store call
func (m *PrometheusMetrics) ObserveStoreChunk(op string, size int) {
	m.storeChunks.WithLabelValues(op).Inc()
	m.storeChunkRows.WithLabelValues(op).Observe(float64(size))
}

// ObservePoolStats publishes a connection pool snapshot
func (m *PrometheusMetrics) ObservePoolStats(stats sql.DBStats) {
	m.dbOpenConnections.Set(float64(stats.OpenConnections))
	m.dbInUse.Set(float64(stats.InUse))
	m.dbIdle.Set(float64(stats.Idle))
	m.dbWaitCount.Set(float64(stats.WaitCount))
	m.dbWaitDuration.Set(stats.WaitDuration.Seconds())
}
