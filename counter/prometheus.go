// SPDX-License-Identifier: MIT

package counter

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusSink exports operation totals as the counter
// multicut_operations_total{op="..."}.
type PrometheusSink struct {
	ops *prometheus.CounterVec
}

// NewPrometheusSink creates the CounterVec and registers it with reg.
// A nil reg falls back to prometheus.DefaultRegisterer.
func NewPrometheusSink(reg prometheus.Registerer) (*PrometheusSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "multicut",
		Name:      "operations_total",
		Help:      "Elementary operations performed by the matching engine.",
	}, []string{"op"})
	if err := reg.Register(vec); err != nil {
		return nil, err
	}

	return &PrometheusSink{ops: vec}, nil
}

// Add increments the series for op. Negative deltas are ignored since
// prometheus counters only go up.
func (p *PrometheusSink) Add(op Op, delta int64) {
	if delta <= 0 {
		return
	}
	p.ops.WithLabelValues(string(op)).Add(float64(delta))
}
