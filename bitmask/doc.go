// Package bitmask provides the split mask type used by taxon registries.
//
// A Mask is an arbitrary-width set of bit positions. Bit i stands for the
// registry member at position i, so a Mask encodes one side of a split
// (bipartition) of a registry's taxa.
//
// Masks are immutable values: every operation returns a new Mask and the
// zero value is the empty mask. Widths never matter for comparison, so
// Bit(3) equals FromUint64(8) regardless of how either was built.
//
//	a := bitmask.Bit(0)
//	c := bitmask.Bit(2)
//	split := a.Or(c)          // 101
//	split.Format(4)           // "0101"
//	split.Uint64()            // 5, true
//
// Storage is backed by github.com/bits-and-blooms/bitset.
package bitmask
