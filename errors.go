package taxa

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuery is returned when a lookup is called without any selector it accepts.
	ErrInvalidQuery = errors.New("invalid query: no selector given")

	// ErrImmutableRegistry is returned when a mutation is attempted on a locked registry.
	ErrImmutableRegistry = errors.New("registry is locked")

	// ErrDuplicateLabel is returned by NewTaxon with ErrorIfExists when the label is taken.
	ErrDuplicateLabel = errors.New("duplicate taxon label")

	// ErrNotFound is returned when a taxon is not a member of the registry.
	ErrNotFound = errors.New("taxon not found")

	// ErrConstructionArity is returned when more than one taxon collection is passed to New.
	ErrConstructionArity = errors.New("at most one taxon collection may be given")

	// ErrInvalidCount is returned by Generate for a negative count.
	ErrInvalidCount = errors.New("invalid taxon count")
)

// ErrTaxonNotFound indicates that a taxon is not (or no longer) a registry member.
//
// errors.Is(err, ErrNotFound) holds for this error.
type ErrTaxonNotFound struct {
	ID    string
	Label string
}

func (e *ErrTaxonNotFound) Error() string {
	return fmt.Sprintf("taxon with id %q and label %q not found", e.ID, e.Label)
}

func (e *ErrTaxonNotFound) Unwrap() error { return ErrNotFound }

// ErrLocked indicates a mutation rejected by the registry's gate.
//
// errors.Is(err, ErrImmutableRegistry) holds for this error.
type ErrLocked struct {
	Op    string
	ID    string
	Label string
}

func (e *ErrLocked) Error() string {
	if e.ID == "" && e.Label == "" {
		return fmt.Sprintf("%s: %v", e.Op, ErrImmutableRegistry)
	}
	return fmt.Sprintf("%s: taxon %q:%q cannot be added: %v", e.Op, e.ID, e.Label, ErrImmutableRegistry)
}

func (e *ErrLocked) Unwrap() error { return ErrImmutableRegistry }

// ErrLabelExists indicates that a taxon with the requested label is already a member.
//
// errors.Is(err, ErrDuplicateLabel) holds for this error.
type ErrLabelExists struct {
	Label string
}

func (e *ErrLabelExists) Error() string {
	return fmt.Sprintf("taxon with label %q already defined: %v", e.Label, ErrDuplicateLabel)
}

func (e *ErrLabelExists) Unwrap() error { return ErrDuplicateLabel }

func isLocked(err error) bool {
	return errors.Is(err, ErrImmutableRegistry)
}
