package grpcguard

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/reoring/guard"
)

// Metrics counts violations that reached a gRPC boundary.
type Metrics struct {
	violations *prometheus.CounterVec
}

// NewMetrics creates the guard_violations_total counter and registers it
// with reg. A nil reg leaves it unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "guard_violations_total",
			Help: "Total number of contract violations returned by gRPC handlers",
		}, []string{"method", "code", "class"}), // class: argument, state, assertion
	}
	if reg != nil {
		if err := reg.Register(m.violations); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Record counts v for method.
func (m *Metrics) Record(method string, v *guard.Violation) {
	if m == nil {
		return
	}
	m.violations.WithLabelValues(method, v.Kind.String(), v.Class().String()).Inc()
}

// Collector exposes the underlying counter, for tests and custom registries.
func (m *Metrics) Collector() *prometheus.CounterVec { return m.violations }
