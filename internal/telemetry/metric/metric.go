// Package metric provides Prometheus metrics for mapcell.
package metric

import (
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mapcell"

// Metrics tracks shell operation counts and map occupancy.
type Metrics struct {
	registry *prometheus.Registry

	ops      *prometheus.CounterVec
	entries  prometheus.Gauge
	capacity prometheus.Gauge
}

// New creates a Metrics instance backed by a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ops_total",
			Help:      "Shell operations executed, by operation name.",
		}, []string{"op"}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entries",
			Help:      "Live entries in the current map.",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "capacity",
			Help:      "Bucket capacity of the current map.",
		}),
	}

	m.registry.MustRegister(m.ops, m.entries, m.capacity)
	return m
}

// ObserveOp records one execution of the named operation.
func (m *Metrics) ObserveOp(op string) {
	m.ops.WithLabelValues(op).Inc()
}

// SetOccupancy records the map's current entry count and capacity.
func (m *Metrics) SetOccupancy(entries, capacity int) {
	m.entries.Set(float64(entries))
	m.capacity.Set(float64(capacity))
}

// OpCount is one operation's cumulative execution count.
type OpCount struct {
	Op    string
	Count uint64
}

// OpCounts gathers per-operation totals, sorted by operation name.
func (m *Metrics) OpCounts() ([]OpCount, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var counts []OpCount
	for _, mf := range families {
		if mf.GetName() != namespace+"_ops_total" {
			continue
		}
		for _, mtr := range mf.GetMetric() {
			var op string
			for _, lp := range mtr.GetLabel() {
				if lp.GetName() == "op" {
					op = lp.GetValue()
				}
			}
			counts = append(counts, OpCount{
				Op:    op,
				Count: uint64(mtr.GetCounter().GetValue()),
			})
		}
	}

	sort.Slice(counts, func(i, j int) bool { return counts[i].Op < counts[j].Op })
	return counts, nil
}
