// Package metrics owns the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Outcome labels for credential operations.
const (
	OutcomeSuccess        = "success"
	OutcomeValidation     = "validation"
	OutcomeNotFound       = "not_found"
	OutcomeAuthentication = "authentication"
	OutcomeInternal       = "internal"
)

// Metrics groups the service collectors so they can be registered on one registry.
type Metrics struct {
	credentialOps *prometheus.CounterVec
	hashDuration  *prometheus.HistogramVec
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// New creates the collectors and registers them with reg.
// Panics if registration fails (following prometheus convention).
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		credentialOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authsvc_credential_operations_total",
				Help: "Credential operations by name and outcome",
			},
			[]string{"operation", "outcome"},
		),
		hashDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "authsvc_password_hash_duration_seconds",
				Help:    "Time spent in bcrypt hash and compare, excluding worker-pool wait",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"op"},
		),
	}

	reg.MustRegister(m.credentialOps, m.hashDuration)

	return m
}

// ObserveOperation counts one credential operation outcome. Safe on a nil receiver.
func (m *Metrics) ObserveOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.credentialOps.WithLabelValues(operation, outcome).Inc()
}

// ObserveHash records the duration of a hash ("hash") or compare ("check"). Safe on a nil receiver.
func (m *Metrics) ObserveHash(op string, d time.Duration) {
	if m == nil {
		return
	}
	m.hashDuration.WithLabelValues(op).Observe(d.Seconds())
}
