package taxa

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/hupe1980/taxa/internal/membership"
)

// Registry is an ordered, duplicate-free collection of taxa.
//
// The order of members is the sole source of bit positions: the member at
// position i owns bit 1 << i. Positions are assigned when a taxon is
// appended and recomputed for later members when one is removed; every
// structural change increments Version.
//
// A Registry is not safe for concurrent use. Wrap it in a SyncRegistry
// when it is shared between goroutines.
type Registry struct {
	id    string
	label string

	taxa      []*Taxon
	positions map[Handle]int
	members   *membership.Set
	gate      Gate
	version   uint64

	base    *Logger
	logger  *Logger
	metrics MetricsCollector
}

// New creates a registry.
//
// The initial members come from at most one of WithLabels, WithTaxa or
// WithEntries; passing more than one returns ErrConstructionArity.
// Label entries produce fresh taxa. Taxon entries produce new taxa that
// share only the label of their source.
func New(optFns ...Option) (*Registry, error) {
	o := applyOptions(optFns)
	if o.collections > 1 {
		return nil, fmt.Errorf("%w: %d given", ErrConstructionArity, o.collections)
	}

	r := newRegistry(o)
	for _, e := range o.entries {
		r.push(NewTaxon(e.Label(), ""))
	}
	if o.locked {
		r.gate.Lock()
	}
	return r, nil
}

func newRegistry(o options) *Registry {
	id := o.id
	if id == "" {
		id = uuid.NewString()
	}
	return &Registry{
		id:        id,
		label:     o.label,
		positions: make(map[Handle]int),
		members:   membership.New(),
		base:      o.logger,
		logger:    o.logger.WithRegistry(id, o.label),
		metrics:   o.metricsCollector,
	}
}

// ID returns the registry id.
func (r *Registry) ID() string { return r.id }

// Label returns the registry display label.
func (r *Registry) Label() string { return r.label }

// Len returns the number of members.
func (r *Registry) Len() int { return len(r.taxa) }

// Version is incremented on every structural change. Masks computed under
// one version are only meaningful for the same version.
func (r *Registry) Version() uint64 { return r.version }

// At returns the member at position i.
func (r *Registry) At(i int) *Taxon { return r.taxa[i] }

// IndexOf returns the position of t.
func (r *Registry) IndexOf(t *Taxon) (int, bool) {
	if t == nil {
		return 0, false
	}
	i, ok := r.positions[t.handle]
	return i, ok
}

// Contains reports whether t is a member.
func (r *Registry) Contains(t *Taxon) bool {
	return t != nil && r.members.Contains(uint32(t.handle))
}

// Taxa returns the members in order. The slice is a copy; the taxa are not.
func (r *Registry) Taxa() []*Taxon {
	return slices.Clone(r.taxa)
}

// All iterates over the members in order.
func (r *Registry) All() iter.Seq2[int, *Taxon] {
	return func(yield func(int, *Taxon) bool) {
		for i, t := range r.taxa {
			if !yield(i, t) {
				return
			}
		}
	}
}

// Labels returns the member labels in order.
func (r *Registry) Labels() []string {
	labels := make([]string, len(r.taxa))
	for i, t := range r.taxa {
		labels[i] = t.label
	}
	return labels
}

// Lock prevents further structural changes.
func (r *Registry) Lock() { r.SetLocked(true) }

// Unlock allows structural changes again.
func (r *Registry) Unlock() { r.SetLocked(false) }

// IsLocked reports whether the registry is locked.
func (r *Registry) IsLocked() bool { return r.gate.IsLocked() }

// SetLocked sets the gate state.
func (r *Registry) SetLocked(locked bool) {
	if locked {
		r.gate.Lock()
	} else {
		r.gate.Unlock()
	}
	r.metrics.RecordGate(locked)
	r.logger.LogGate(locked)
}

// AddTaxon appends t. The registry holds t itself, not a copy.
// Adding a taxon that is already a member is a no-op.
func (r *Registry) AddTaxon(t *Taxon) error {
	if t == nil {
		return fmt.Errorf("%w: nil taxon", ErrInvalidQuery)
	}
	err := r.gate.check(OpAddTaxon, t.id, t.label)
	if err == nil {
		r.push(t)
	}
	r.observe(OpAddTaxon, t, err)
	return err
}

// TaxonOption configures Registry.NewTaxon.
type TaxonOption func(*taxonOptions)

type taxonOptions struct {
	id            string
	errorIfExists bool
}

// WithTaxonID sets the id of the new taxon. By default a random UUID is used.
func WithTaxonID(id string) TaxonOption {
	return func(o *taxonOptions) {
		o.id = id
	}
}

// ErrorIfExists makes NewTaxon fail with ErrDuplicateLabel when a member
// already carries the label.
func ErrorIfExists() TaxonOption {
	return func(o *taxonOptions) {
		o.errorIfExists = true
	}
}

// NewTaxon creates a taxon, appends it and returns it.
func (r *Registry) NewTaxon(label string, optFns ...TaxonOption) (*Taxon, error) {
	var o taxonOptions
	for _, fn := range optFns {
		fn(&o)
	}

	if err := r.gate.check(OpNewTaxon, o.id, label); err != nil {
		r.observe(OpNewTaxon, nil, err)
		return nil, err
	}
	if o.errorIfExists && r.findLabel(label) != nil {
		err := &ErrLabelExists{Label: label}
		r.observe(OpNewTaxon, nil, err)
		return nil, err
	}

	t := NewTaxon(label, o.id)
	r.push(t)
	r.observe(OpNewTaxon, t, nil)
	return t, nil
}

// RemoveTaxon removes t. Members after t move down one position, so masks
// computed before the removal no longer line up with the registry.
func (r *Registry) RemoveTaxon(t *Taxon) error {
	if t == nil {
		return fmt.Errorf("%w: nil taxon", ErrInvalidQuery)
	}
	if err := r.gate.check(OpRemoveTaxon, t.id, t.label); err != nil {
		r.observe(OpRemoveTaxon, t, err)
		return err
	}
	pos, ok := r.positions[t.handle]
	if !ok {
		err := &ErrTaxonNotFound{ID: t.id, Label: t.label}
		r.observe(OpRemoveTaxon, t, err)
		return err
	}

	r.taxa = slices.Delete(r.taxa, pos, pos+1)
	delete(r.positions, t.handle)
	for i := pos; i < len(r.taxa); i++ {
		r.positions[r.taxa[i].handle] = i
	}
	r.members.Remove(uint32(t.handle))
	r.version++

	r.observe(OpRemoveTaxon, t, nil)
	return nil
}

// Clear removes all members.
func (r *Registry) Clear() error {
	if err := r.gate.check(OpClear, "", ""); err != nil {
		r.observe(OpClear, nil, err)
		return err
	}
	r.taxa = nil
	clear(r.positions)
	r.members.Clear()
	r.version++
	r.observe(OpClear, nil, nil)
	return nil
}

// String returns a short description listing the member labels.
func (r *Registry) String() string {
	quoted := make([]string, len(r.taxa))
	for i, t := range r.taxa {
		quoted[i] = "'" + t.label + "'"
	}
	return fmt.Sprintf("<Registry %s: [%s]>", r.id, strings.Join(quoted, ", "))
}

func (r *Registry) push(t *Taxon) bool {
	if !r.members.Add(uint32(t.handle)) {
		return false
	}
	r.positions[t.handle] = len(r.taxa)
	r.taxa = append(r.taxa, t)
	r.version++
	return true
}

func (r *Registry) findLabel(label string) *Taxon {
	for _, t := range r.taxa {
		if t.label == label {
			return t
		}
	}
	return nil
}

func (r *Registry) observe(op string, t *Taxon, err error) {
	r.metrics.RecordMutation(op, err)
	r.logger.LogMutation(op, t, err)
}
