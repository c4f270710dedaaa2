// Package prommetrics exports registry metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	c, _ := prommetrics.New(reg)
//	ns, _ := taxa.New(taxa.WithMetricsCollector(c))
package prommetrics

import (
	"errors"

	"github.com/hupe1980/taxa"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements taxa.MetricsCollector with Prometheus counters.
type Collector struct {
	mutations *prometheus.CounterVec
	lookups   *prometheus.CounterVec
	gate      *prometheus.CounterVec
}

var _ taxa.MetricsCollector = (*Collector)(nil)

type options struct {
	namespace string
	subsystem string
}

// Option configures New.
type Option func(*options)

// WithNamespace sets the metric namespace (default "taxa").
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// WithSubsystem sets the metric subsystem (default "registry").
func WithSubsystem(s string) Option {
	return func(o *options) {
		o.subsystem = s
	}
}

// New creates the counters and registers them with reg.
func New(reg prometheus.Registerer, optFns ...Option) (*Collector, error) {
	o := options{namespace: "taxa", subsystem: "registry"}
	for _, fn := range optFns {
		fn(&o)
	}

	c := &Collector{
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "mutations_total",
			Help:      "Gated registry operations by operation and result.",
		}, []string{"op", "result"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "lookups_total",
			Help:      "Registry lookups by operation and result.",
		}, []string{"op", "result"}),
		gate: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: o.subsystem,
			Name:      "gate_transitions_total",
			Help:      "Lock and unlock calls.",
		}, []string{"state"}),
	}

	for _, col := range []prometheus.Collector{c.mutations, c.lookups, c.gate} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RecordMutation implements taxa.MetricsCollector.
func (c *Collector) RecordMutation(op string, err error) {
	c.mutations.WithLabelValues(op, mutationResult(err)).Inc()
}

// RecordLookup implements taxa.MetricsCollector.
func (c *Collector) RecordLookup(op string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.lookups.WithLabelValues(op, result).Inc()
}

// RecordGate implements taxa.MetricsCollector.
func (c *Collector) RecordGate(locked bool) {
	state := "unlocked"
	if locked {
		state = "locked"
	}
	c.gate.WithLabelValues(state).Inc()
}

func mutationResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, taxa.ErrImmutableRegistry):
		return "locked"
	case errors.Is(err, taxa.ErrDuplicateLabel):
		return "duplicate"
	case errors.Is(err, taxa.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
