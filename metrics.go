package taxa

import (
	"sync/atomic"
)

// Operation names passed to MetricsCollector.
const (
	OpAddTaxon     = "add_taxon"
	OpNewTaxon     = "new_taxon"
	OpRequireTaxon = "require_taxon"
	OpRemoveTaxon  = "remove_taxon"
	OpClear        = "clear"
	OpGetTaxon     = "get_taxon"
	OpTaxonBitmask = "taxon_bitmask"
)

// MetricsCollector defines an interface for collecting registry metrics.
// Implement this interface to integrate with monitoring systems; the
// prommetrics package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordMutation is called after each gated operation.
	// err is nil if the operation succeeded.
	RecordMutation(op string, err error)

	// RecordLookup is called after each lookup; hit reports whether a member matched.
	RecordLookup(op string, hit bool)

	// RecordGate is called on every Lock, Unlock or SetLocked call.
	RecordGate(locked bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordMutation(string, error) {}
func (NoopMetricsCollector) RecordLookup(string, bool)    {}
func (NoopMetricsCollector) RecordGate(bool)              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	Mutations      atomic.Int64
	MutationErrors atomic.Int64
	Rejected       atomic.Int64
	Lookups        atomic.Int64
	LookupMisses   atomic.Int64
	Locks          atomic.Int64
	Unlocks        atomic.Int64
}

// RecordMutation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMutation(_ string, err error) {
	b.Mutations.Add(1)
	if err != nil {
		b.MutationErrors.Add(1)
		if isLocked(err) {
			b.Rejected.Add(1)
		}
	}
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(_ string, hit bool) {
	b.Lookups.Add(1)
	if !hit {
		b.LookupMisses.Add(1)
	}
}

// RecordGate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGate(locked bool) {
	if locked {
		b.Locks.Add(1)
	} else {
		b.Unlocks.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		Mutations:      b.Mutations.Load(),
		MutationErrors: b.MutationErrors.Load(),
		Rejected:       b.Rejected.Load(),
		Lookups:        b.Lookups.Load(),
		LookupMisses:   b.LookupMisses.Load(),
		Locks:          b.Locks.Load(),
		Unlocks:        b.Unlocks.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	Mutations      int64
	MutationErrors int64
	Rejected       int64
	Lookups        int64
	LookupMisses   int64
	Locks          int64
	Unlocks        int64
}
