package taxa

import (
	"log/slog"
)

type options struct {
	id               string
	label            string
	locked           bool
	collections      int
	entries          []Entry
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures registry construction.
type Option func(*options)

// Entry is one element of an initial taxon collection: either a label or
// an existing taxon. Build entries with LabelEntry or TaxonEntry.
type Entry struct {
	label string
	taxon *Taxon
}

// LabelEntry returns an entry that yields a fresh taxon with the given label.
func LabelEntry(label string) Entry {
	return Entry{label: label}
}

// TaxonEntry returns an entry that yields a new taxon carrying t's label.
// The registry does not adopt t itself; use AddTaxon for that.
func TaxonEntry(t *Taxon) Entry {
	return Entry{label: t.Label(), taxon: t}
}

// Label returns the label the entry resolves to.
func (e Entry) Label() string { return e.label }

// Taxon returns the source taxon, or nil for a label entry.
func (e Entry) Taxon() *Taxon { return e.taxon }

// WithEntries supplies the initial taxon collection as tagged entries.
func WithEntries(entries ...Entry) Option {
	return func(o *options) {
		o.collections++
		o.entries = append(o.entries, entries...)
	}
}

// WithLabels supplies the initial taxon collection as labels.
//
// At most one of WithLabels, WithTaxa and WithEntries may be given.
func WithLabels(labels ...string) Option {
	return func(o *options) {
		o.collections++
		for _, l := range labels {
			o.entries = append(o.entries, LabelEntry(l))
		}
	}
}

// WithTaxa supplies the initial taxon collection as taxa. Each taxon is
// converted into a new taxon that shares only its label.
func WithTaxa(taxa ...*Taxon) Option {
	return func(o *options) {
		o.collections++
		for _, t := range taxa {
			o.entries = append(o.entries, TaxonEntry(t))
		}
	}
}

// WithID sets the registry id. By default a random UUID is used.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithLabel sets the registry display label.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// Locked creates the registry in the locked state, after the initial
// collection has been added.
func Locked() Option {
	return func(o *options) {
		o.locked = true
	}
}

// WithMetricsCollector configures a metrics collector for registry operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &taxa.BasicMetricsCollector{}
//	reg, _ := taxa.New(taxa.WithLabels("A", "B"), taxa.WithMetricsCollector(metrics))
//	// ... use reg ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for registry operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := taxa.NewJSONLogger(slog.LevelDebug)
//	reg, _ := taxa.New(taxa.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
