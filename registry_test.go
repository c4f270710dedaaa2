package taxa

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	r, err := New(opts...)
	require.NoError(t, err)
	return r
}

func mustGet(t *testing.T, r *Registry, label string) *Taxon {
	t.Helper()
	tx, ok, err := r.GetTaxon(ByLabel(label))
	require.NoError(t, err)
	require.True(t, ok, "taxon %q not found", label)
	return tx
}

func TestNewFromLabels(t *testing.T) {
	r := mustNew(t, WithLabels("A", "B", "C"), WithLabel("pythons"))

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"A", "B", "C"}, r.Labels())
	assert.Equal(t, "pythons", r.Label())
	assert.NotEmpty(t, r.ID())
	assert.False(t, r.IsLocked())

	// Equal labels still produce distinct members.
	dup := mustNew(t, WithLabels("A", "A"))
	assert.Equal(t, 2, dup.Len())
	assert.False(t, dup.At(0).Same(dup.At(1)))
}

func TestNewFromTaxaCreatesFreshTaxa(t *testing.T) {
	src := []*Taxon{NewTaxon("A", "a-1"), NewTaxon("B", "b-1")}

	r := mustNew(t, WithTaxa(src...))

	require.Equal(t, 2, r.Len())
	for i, tx := range r.Taxa() {
		assert.Equal(t, src[i].Label(), tx.Label())
		assert.False(t, tx.Same(src[i]))
		assert.NotEqual(t, src[i].ID(), tx.ID())
		assert.False(t, r.Contains(src[i]))
	}
}

func TestNewFromEntries(t *testing.T) {
	src := NewTaxon("B", "")
	r := mustNew(t, WithEntries(LabelEntry("A"), TaxonEntry(src)))

	assert.Equal(t, []string{"A", "B"}, r.Labels())
	assert.False(t, r.Contains(src))
	assert.Nil(t, LabelEntry("A").Taxon())
	assert.Same(t, src, TaxonEntry(src).Taxon())
}

func TestNewArity(t *testing.T) {
	_, err := New(WithLabels("A"), WithTaxa(NewTaxon("B", "")))
	assert.ErrorIs(t, err, ErrConstructionArity)

	_, err = New(WithLabels("A"), WithLabels("B"))
	assert.ErrorIs(t, err, ErrConstructionArity)
}

func TestNewLocked(t *testing.T) {
	r := mustNew(t, WithLabels("A", "B"), Locked(), WithID("ns-1"))

	assert.True(t, r.IsLocked())
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, "ns-1", r.ID())
}

func TestAddTaxonKeepsReference(t *testing.T) {
	r := mustNew(t)
	tx := NewTaxon("A", "")

	require.NoError(t, r.AddTaxon(tx))
	require.NoError(t, r.AddTaxon(tx))

	assert.Equal(t, 1, r.Len())
	assert.Same(t, tx, r.At(0))
	assert.ErrorIs(t, r.AddTaxon(nil), ErrInvalidQuery)
}

func TestNewTaxon(t *testing.T) {
	r := mustNew(t)

	a, err := r.NewTaxon("A", WithTaxonID("a-id"))
	require.NoError(t, err)
	assert.Equal(t, "a-id", a.ID())
	assert.Equal(t, "A", a.Label())

	// Same label is fine without ErrorIfExists.
	a2, err := r.NewTaxon("A")
	require.NoError(t, err)
	assert.False(t, a.Same(a2))

	_, err = r.NewTaxon("A", ErrorIfExists())
	assert.ErrorIs(t, err, ErrDuplicateLabel)
	var le *ErrLabelExists
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "A", le.Label)
	assert.Equal(t, 2, r.Len())
}

func TestLockedMutationsFail(t *testing.T) {
	r := mustNew(t, WithLabels("A", "B", "C"))
	before := r.Taxa()
	r.Lock()

	err := r.AddTaxon(NewTaxon("D", ""))
	assert.ErrorIs(t, err, ErrImmutableRegistry)

	_, err = r.NewTaxon("D")
	assert.ErrorIs(t, err, ErrImmutableRegistry)

	err = r.Clear()
	assert.ErrorIs(t, err, ErrImmutableRegistry)

	err = r.RemoveTaxon(before[0])
	assert.ErrorIs(t, err, ErrImmutableRegistry)

	var le *ErrLocked
	require.True(t, errors.As(err, &le))
	assert.Equal(t, OpRemoveTaxon, le.Op)

	assert.Equal(t, before, r.Taxa())

	r.Unlock()
	require.NoError(t, r.Clear())
	assert.Equal(t, 0, r.Len())
}

func TestLockedEmptyClearFails(t *testing.T) {
	r := mustNew(t, Locked())
	assert.ErrorIs(t, r.Clear(), ErrImmutableRegistry)
}

func TestSetLocked(t *testing.T) {
	r := mustNew(t)
	r.SetLocked(true)
	assert.True(t, r.IsLocked())
	r.SetLocked(false)
	assert.False(t, r.IsLocked())
}

func TestRemoveTaxonShiftsPositions(t *testing.T) {
	r := mustNew(t, WithLabels("A", "B", "C"))
	a, b, c := mustGet(t, r, "A"), mustGet(t, r, "B"), mustGet(t, r, "C")
	v := r.Version()

	require.NoError(t, r.RemoveTaxon(b))

	assert.Equal(t, []string{"A", "C"}, r.Labels())
	assert.Greater(t, r.Version(), v)
	assert.False(t, r.Contains(b))

	mc, err := r.TaxonBitmask(c)
	require.NoError(t, err)
	assert.Equal(t, "10", r.SplitBitmaskString(mc))

	ma, err := r.TaxonBitmask(a)
	require.NoError(t, err)
	assert.Equal(t, "01", r.SplitBitmaskString(ma))

	_, err = r.TaxonBitmask(b)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, r.RemoveTaxon(b), ErrNotFound)
	assert.ErrorIs(t, r.RemoveTaxon(nil), ErrInvalidQuery)
}

func TestVersion(t *testing.T) {
	r := mustNew(t)
	assert.Equal(t, uint64(0), r.Version())

	_, err := r.NewTaxon("A")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), r.Version())

	require.NoError(t, r.Clear())
	assert.Equal(t, uint64(2), r.Version())
}

func TestIteration(t *testing.T) {
	r := mustNew(t, WithLabels("A", "B", "C", "D"))

	var labels []string
	for i, tx := range r.All() {
		labels = append(labels, tx.Label())
		idx, ok := r.IndexOf(tx)
		assert.True(t, ok)
		assert.Equal(t, i, idx)
		if i == 2 {
			break
		}
	}
	assert.Equal(t, []string{"A", "B", "C"}, labels)

	_, ok := r.IndexOf(nil)
	assert.False(t, ok)
}

func TestTaxaReturnsCopy(t *testing.T) {
	r := mustNew(t, WithLabels("A", "B"))
	taxa := r.Taxa()
	taxa[0] = nil

	assert.NotNil(t, r.At(0))
}

func TestString(t *testing.T) {
	r := mustNew(t, WithLabels("A", "B"), WithID("x"))
	assert.Equal(t, "<Registry x: ['A', 'B']>", r.String())
}

func TestTaxonIdentity(t *testing.T) {
	a := NewTaxon("A", "same")
	b := NewTaxon("A", "same")

	assert.False(t, a.Same(b))
	assert.NotEqual(t, a.Handle(), b.Handle())
	assert.True(t, a.Same(a.Clone()))
	assert.Same(t, a, a.Clone())
	assert.False(t, a.Same(nil))
	assert.Equal(t, "A", a.String())
	assert.NotEmpty(t, NewTaxon("B", "").ID())
}

func TestCompareLabels(t *testing.T) {
	r := mustNew(t, WithLabels("C", "A", "B"))
	taxa := r.Taxa()
	slices.SortFunc(taxa, CompareLabels)

	got := make([]string, len(taxa))
	for i, tx := range taxa {
		got[i] = tx.Label()
	}
	assert.Equal(t, []string{"A", "B", "C"}, got)
	// Sorting a copy never reorders the registry.
	assert.Equal(t, []string{"C", "A", "B"}, r.Labels())
}
