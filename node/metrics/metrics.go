// Package metrics holds the Prometheus collectors of the oracle node.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "oracle"

// Metrics is a private registry with the node's collectors.
type Metrics struct {
	registry *prometheus.Registry

	ReportsAccepted        prometheus.Counter
	ReportsRejected        *prometheus.CounterVec
	ConsensusFinalized     *prometheus.CounterVec
	ContributorsRegistered prometheus.Counter
	ContributorsEvicted    prometheus.Counter
	RewardsPaidLamports    prometheus.Counter
	OperationDuration      *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ReportsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_accepted_total",
			Help:      "Reports accepted by the oracle.",
		}),
		ReportsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_rejected_total",
			Help:      "Reports rejected by the oracle, by error category.",
		}, []string{"reason"}),
		ConsensusFinalized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consensus_finalized_total",
			Help:      "Txids finalized, by consensus status.",
		}, []string{"status"}),
		ContributorsRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contributors_registered_total",
			Help:      "Contributors registered.",
		}),
		ContributorsEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contributors_evicted_total",
			Help:      "Permanently banned contributors evicted.",
		}),
		RewardsPaidLamports: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rewards_paid_lamports_total",
			Help:      "Lamports paid out from the reward pool.",
		}),
		OperationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of state-changing operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ReportsAccepted,
		m.ReportsRejected,
		m.ConsensusFinalized,
		m.ContributorsRegistered,
		m.ContributorsEvicted,
		m.RewardsPaidLamports,
		m.OperationDuration,
	)
	return m
}

// Registry exposes the registry for gathering in tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveOperation records the time elapsed since start under operation.
func (m *Metrics) ObserveOperation(operation string, start time.Time) {
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
