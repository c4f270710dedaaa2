// Package taxa provides an ordered taxon registry and split bitmask encoding
// for phylogenetic trees.
//
// A Registry assigns every member Taxon a stable bit position: the member
// at position i owns bit 1 << i. Trees built against the same registry can
// then encode every edge as a split (bipartition) mask and compare splits
// across trees directly.
//
// # Quick Start
//
//	reg, _ := taxa.New(taxa.WithLabels("A", "B", "C"))
//	a, _, _ := reg.GetTaxon(taxa.ByLabel("A"))
//	c, _, _ := reg.GetTaxon(taxa.ByLabel("C"))
//
//	split, _ := reg.SplitBitmask(a, c)       // 101
//	reg.SplitBitmaskString(split)            // "101"
//	reg.ComplementSplitBitmask(split)        // 010
//	reg.AllTaxaBitmask()                     // 111
//
// Generated registries:
//
//	reg, _ := taxa.Generate(100)             // T001 ... T100
//
// # Locking
//
// A registry is typically populated while unlocked and locked once it is
// shared by several trees:
//
//	reg.Lock()
//	_, err := reg.NewTaxon("D")              // errors.Is(err, taxa.ErrImmutableRegistry)
//
// The gate guards only AddTaxon, NewTaxon, RequireTaxon (when it would
// create), RemoveTaxon and Clear. Lookups and split queries always succeed
// regardless of the gate.
//
// # Identity
//
// Taxa are compared by identity, never by label. Clone copies a registry
// but keeps the same *Taxon members, so masks stay valid across clones.
// Building a registry from existing taxa with WithTaxa, on the other hand,
// creates new taxa that share only the labels.
//
// # Concurrency
//
// Registry is meant for a single goroutine. Bit positions are assigned
// eagerly, so split queries have no hidden writes; SyncRegistry adds a
// read/write lock for shared use.
package taxa
