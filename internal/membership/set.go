// Package membership tracks which taxon handles belong to a registry.
package membership

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a set of taxon handles backed by a Roaring bitmap.
// The zero value is not usable; call New.
type Set struct {
	rb *roaring.Bitmap
}

// New creates an empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// Add inserts h and reports whether it was newly added.
func (s *Set) Add(h uint32) bool {
	return s.rb.CheckedAdd(h)
}

// Remove deletes h and reports whether it was present.
func (s *Set) Remove(h uint32) bool {
	return s.rb.CheckedRemove(h)
}

// Contains reports whether h is in the set.
func (s *Set) Contains(h uint32) bool {
	return s.rb.Contains(h)
}

// ContainsAll reports whether every handle of other is in s.
func (s *Set) ContainsAll(other *Set) bool {
	return other.rb.AndCardinality(s.rb) == other.rb.GetCardinality()
}

// FromHandles builds a set holding the given handles.
func FromHandles(handles ...uint32) *Set {
	return &Set{rb: roaring.BitmapOf(handles...)}
}

// Len returns the number of handles.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// Clear removes every handle.
func (s *Set) Clear() {
	s.rb.Clear()
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// All iterates over the handles in ascending order.
func (s *Set) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
