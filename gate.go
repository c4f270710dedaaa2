package taxa

// Gate is the two-state mutability flag of a registry.
//
// Only AddTaxon, NewTaxon, RequireTaxon (when it would create), RemoveTaxon
// and Clear consult it. Lookups and bitmask queries are always allowed,
// whatever the state. Gate is not a read/write lock.
type Gate struct {
	locked bool
}

// Lock moves the gate to the locked state.
func (g *Gate) Lock() { g.locked = true }

// Unlock moves the gate to the unlocked state.
func (g *Gate) Unlock() { g.locked = false }

// IsLocked reports the current state.
func (g *Gate) IsLocked() bool { return g.locked }

func (g *Gate) check(op string, id, label string) error {
	if g.locked {
		return &ErrLocked{Op: op, ID: id, Label: label}
	}
	return nil
}
