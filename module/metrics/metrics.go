// Package metrics instruments the registry's storage and validation paths
// with a small fixed set of Prometheus counters/histograms, registered
// against a caller-supplied registry so tests never collide on the global
// default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters and histograms the registry updates on every
// store* call; get* calls record nothing.
type Metrics struct {
	storesTotal       *prometheus.CounterVec
	storeRejectsTotal *prometheus.CounterVec
	recoverSeconds    prometheus.Histogram
}

// New registers and returns a Metrics against reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		storesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "daosign",
			Name:      "stores_total",
			Help:      "Number of accepted store* calls by proof kind.",
		}, []string{"kind"}),
		storeRejectsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "daosign",
			Name:      "store_rejects_total",
			Help:      "Number of rejected store* calls by proof kind and reason.",
		}, []string{"kind", "reason"}),
		recoverSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "daosign",
			Name:      "recover_seconds",
			Help:      "Latency of secp256k1 signature recovery.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.storesTotal, m.storeRejectsTotal, m.recoverSeconds)
	return m
}

// StoreAccepted records a successful store* call for kind.
func (m *Metrics) StoreAccepted(kind string) {
	m.storesTotal.WithLabelValues(kind).Inc()
}

// StoreRejected records a failed store* call for kind, tagged with reason
// (the validation/recovery error string).
func (m *Metrics) StoreRejected(kind, reason string) {
	m.storeRejectsTotal.WithLabelValues(kind, reason).Inc()
}

// ObserveRecoverSeconds records how long one signature recovery took.
func (m *Metrics) ObserveRecoverSeconds(seconds float64) {
	m.recoverSeconds.Observe(seconds)
}
