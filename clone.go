package taxa

import (
	"maps"
	"slices"

	"github.com/google/uuid"
)

// Clone returns a deep copy of the registry with a new id.
//
// The copy has the same label, lock state, logger and metrics collector.
// Its members are the same *Taxon values in the same order, so a mask
// computed against either registry is valid for both until one of them
// changes structurally.
func (r *Registry) Clone() *Registry {
	id := uuid.NewString()
	return &Registry{
		id:        id,
		label:     r.label,
		taxa:      slices.Clone(r.taxa),
		positions: maps.Clone(r.positions),
		members:   r.members.Clone(),
		gate:      r.gate,
		version:   r.version,
		base:      r.base,
		logger:    r.base.WithRegistry(id, r.label),
		metrics:   r.metrics,
	}
}
