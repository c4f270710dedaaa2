package taxa

import (
	"github.com/hupe1980/taxa/bitmask"
)

// The split methods below never mutate the registry and ignore the gate.
// Masks must be built from members of the same registry; mixing registries
// yields masks whose positions mean different taxa, which is not detected.

// AllTaxaBitmask returns the mask with one bit per member, (1 << Len()) - 1.
func (r *Registry) AllTaxaBitmask() bitmask.Mask {
	return bitmask.Ones(len(r.taxa))
}

// TaxonBitmask returns 1 << position of t.
func (r *Registry) TaxonBitmask(t *Taxon) (bitmask.Mask, error) {
	pos, ok := r.IndexOf(t)
	r.metrics.RecordLookup(OpTaxonBitmask, ok)
	if !ok {
		if t == nil {
			return bitmask.Mask{}, &ErrTaxonNotFound{}
		}
		return bitmask.Mask{}, &ErrTaxonNotFound{ID: t.id, Label: t.label}
	}
	return bitmask.Bit(pos), nil
}

// SplitBitmask returns the union of the bits of the given taxa.
func (r *Registry) SplitBitmask(taxa ...*Taxon) (bitmask.Mask, error) {
	var m bitmask.Mask
	for _, t := range taxa {
		b, err := r.TaxonBitmask(t)
		if err != nil {
			return bitmask.Mask{}, err
		}
		m = m.Or(b)
	}
	return m, nil
}

// ComplementSplitBitmask returns the other side of the split, m XOR AllTaxaBitmask().
// Bits of m beyond Len() are not validated and survive the XOR.
func (r *Registry) ComplementSplitBitmask(m bitmask.Mask) bitmask.Mask {
	return m.Xor(r.AllTaxaBitmask())
}

// SplitBitmaskString renders m as a bit string of at least Len() characters.
// The rightmost character is position 0, the leftmost the last-added member.
func (r *Registry) SplitBitmaskString(m bitmask.Mask) string {
	return m.Format(len(r.taxa))
}

// SplitTaxa returns the members whose bit is set in m, in registry order.
// Bits beyond Len() are ignored.
func (r *Registry) SplitTaxa(m bitmask.Mask) []*Taxon {
	var out []*Taxon
	for i := range m.Bits() {
		if i >= len(r.taxa) {
			break
		}
		out = append(out, r.taxa[i])
	}
	return out
}
