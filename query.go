package taxa

import (
	"fmt"

	"github.com/hupe1980/taxa/internal/membership"
)

type selectorKind uint8

const (
	selectTaxon selectorKind = iota + 1
	selectID
	selectLabel
)

// Selector is one lookup criterion. Multiple selectors passed to the same
// lookup are alternatives: a member matches if it satisfies any of them.
type Selector struct {
	kind  selectorKind
	taxon *Taxon
	value string
}

// ByTaxon matches the member that is t.
func ByTaxon(t *Taxon) Selector {
	return Selector{kind: selectTaxon, taxon: t}
}

// ByID matches members with the given id.
func ByID(id string) Selector {
	return Selector{kind: selectID, value: id}
}

// ByLabel matches members with the given label.
func ByLabel(label string) Selector {
	return Selector{kind: selectLabel, value: label}
}

func (s Selector) matches(t *Taxon) bool {
	switch s.kind {
	case selectTaxon:
		return s.taxon != nil && s.taxon.handle == t.handle
	case selectID:
		return t.id == s.value
	case selectLabel:
		return t.label == s.value
	default:
		return false
	}
}

// HasTaxon reports whether some member matches any of the selectors.
func (r *Registry) HasTaxon(sels ...Selector) (bool, error) {
	if len(sels) == 0 {
		return false, fmt.Errorf("%w: need a taxon, id or label", ErrInvalidQuery)
	}
	for _, s := range sels {
		if s.kind == selectTaxon && r.Contains(s.taxon) {
			return true, nil
		}
	}
	for _, t := range r.taxa {
		for _, s := range sels {
			if s.kind != selectTaxon && s.matches(t) {
				return true, nil
			}
		}
	}
	return false, nil
}

// TaxaQuery is the argument of HasTaxa. A nil field is not part of the
// query; a non-nil empty field is trivially satisfied.
type TaxaQuery struct {
	Taxa   []*Taxon
	IDs    []string
	Labels []string
}

// HasTaxa reports whether all of q.Taxa are members, every id in q.IDs is
// held by some member and every label in q.Labels is held by some member.
func (r *Registry) HasTaxa(q TaxaQuery) (bool, error) {
	if q.Taxa == nil && q.IDs == nil && q.Labels == nil {
		return false, fmt.Errorf("%w: need taxa, ids or labels", ErrInvalidQuery)
	}

	want := membership.New()
	for _, t := range q.Taxa {
		if t == nil {
			return false, nil
		}
		want.Add(uint32(t.handle))
	}
	if !r.members.ContainsAll(want) {
		return false, nil
	}

	if len(q.IDs) > 0 || len(q.Labels) > 0 {
		ids := make(map[string]struct{}, len(r.taxa))
		labels := make(map[string]struct{}, len(r.taxa))
		for _, t := range r.taxa {
			ids[t.id] = struct{}{}
			labels[t.label] = struct{}{}
		}
		for _, id := range q.IDs {
			if _, ok := ids[id]; !ok {
				return false, nil
			}
		}
		for _, l := range q.Labels {
			if _, ok := labels[l]; !ok {
				return false, nil
			}
		}
	}
	return true, nil
}

// GetTaxon returns the first member, in registry order, that matches any
// id or label selector. A miss is reported through ok and is not an error.
// Taxon selectors are not accepted here.
func (r *Registry) GetTaxon(sels ...Selector) (t *Taxon, ok bool, err error) {
	keys, err := idOrLabel(sels)
	if err != nil {
		return nil, false, err
	}
	for _, m := range r.taxa {
		for _, s := range keys {
			if s.matches(m) {
				r.metrics.RecordLookup(OpGetTaxon, true)
				return m, true, nil
			}
		}
	}
	r.metrics.RecordLookup(OpGetTaxon, false)
	return nil, false, nil
}

// RequireTaxon returns the member matching the selectors like GetTaxon.
// If there is none and the registry is unlocked, a taxon with the selected
// label and id is created and appended. On a locked registry a miss fails
// with ErrImmutableRegistry.
func (r *Registry) RequireTaxon(sels ...Selector) (*Taxon, error) {
	t, ok, err := r.GetTaxon(sels...)
	if err != nil {
		return nil, err
	}
	if ok {
		return t, nil
	}

	var id, label string
	for _, s := range sels {
		switch s.kind {
		case selectID:
			id = s.value
		case selectLabel:
			label = s.value
		}
	}
	if err := r.gate.check(OpRequireTaxon, id, label); err != nil {
		r.observe(OpRequireTaxon, nil, err)
		return nil, err
	}
	t = NewTaxon(label, id)
	r.push(t)
	r.observe(OpRequireTaxon, t, nil)
	return t, nil
}

// RequireTaxa resolves one taxon per label, creating the missing ones.
// On a locked registry nothing is created and the first missing label
// fails the whole call.
func (r *Registry) RequireTaxa(labels ...string) ([]*Taxon, error) {
	if r.gate.IsLocked() {
		for _, l := range labels {
			if r.findLabel(l) == nil {
				err := r.gate.check(OpRequireTaxon, "", l)
				r.observe(OpRequireTaxon, nil, err)
				return nil, err
			}
		}
	}

	out := make([]*Taxon, len(labels))
	for i, l := range labels {
		t, err := r.RequireTaxon(ByLabel(l))
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

func idOrLabel(sels []Selector) ([]Selector, error) {
	keys := make([]Selector, 0, len(sels))
	for _, s := range sels {
		if s.kind == selectID || s.kind == selectLabel {
			keys = append(keys, s)
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: need an id or label", ErrInvalidQuery)
	}
	return keys, nil
}
