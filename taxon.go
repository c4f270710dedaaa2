package taxa

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Handle is the process-unique token of a Taxon. Handles are never reused.
type Handle uint32

var lastHandle atomic.Uint32

func nextHandle() Handle {
	return Handle(lastHandle.Add(1))
}

// Taxon is a named leaf unit referenced by trees.
//
// A Taxon is compared by identity: two taxa with the same label (or even
// the same id) are distinct unless they are the same *Taxon. Taxon values
// are never copied; structures that are cloned keep pointing at the same
// *Taxon so that split masks stay valid across the clones.
type Taxon struct {
	handle Handle
	id     string
	label  string
}

// NewTaxon creates a taxon outside of any registry.
// An empty id is replaced by a random UUID.
func NewTaxon(label, id string) *Taxon {
	if id == "" {
		id = uuid.NewString()
	}
	return &Taxon{
		handle: nextHandle(),
		id:     id,
		label:  label,
	}
}

// Handle returns the identity token of t.
func (t *Taxon) Handle() Handle { return t.handle }

// ID returns the taxon id.
func (t *Taxon) ID() string { return t.id }

// Label returns the display label.
func (t *Taxon) Label() string { return t.label }

// Same reports whether t and other are the same taxon.
func (t *Taxon) Same(other *Taxon) bool {
	return t != nil && other != nil && t.handle == other.handle
}

// Clone returns t itself.
func (t *Taxon) Clone() *Taxon { return t }

// String returns the label.
func (t *Taxon) String() string { return t.label }

// CompareLabels orders taxa by label; it can be passed to slices.SortFunc.
func CompareLabels(a, b *Taxon) int {
	switch {
	case a.label < b.label:
		return -1
	case a.label > b.label:
		return 1
	default:
		return 0
	}
}
