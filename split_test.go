package taxa

import (
	"testing"

	"github.com/hupe1980/taxa/bitmask"
	"github.com/hupe1980/taxa/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTaxonBitmask(t *testing.T) {
	r := mustNew(t, WithLabels("A", "B", "C"))

	for label, want := range map[string]uint64{"A": 1, "B": 2, "C": 4} {
		m, err := r.TaxonBitmask(mustGet(t, r, label))
		require.NoError(t, err)
		v, ok := m.Uint64()
		require.True(t, ok)
		assert.Equal(t, want, v, label)
	}

	all, ok := r.AllTaxaBitmask().Uint64()
	require.True(t, ok)
	assert.Equal(t, uint64(7), all)
}

func TestTaxonBitmaskNotMember(t *testing.T) {
	r := mustNew(t, WithLabels("A"))
	outsider := NewTaxon("A", "x")

	_, err := r.TaxonBitmask(outsider)
	assert.ErrorIs(t, err, ErrNotFound)
	var nf *ErrTaxonNotFound
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "x", nf.ID)
	assert.Equal(t, "A", nf.Label)

	_, err = r.TaxonBitmask(nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBitmaskQueriesIgnoreGate(t *testing.T) {
	r := mustNew(t, WithLabels("A", "B"), Locked())

	m, err := r.TaxonBitmask(mustGet(t, r, "B"))
	require.NoError(t, err)
	assert.Equal(t, "10", r.SplitBitmaskString(m))
	assert.Equal(t, "01", r.SplitBitmaskString(r.ComplementSplitBitmask(m)))
}

func TestEmptyRegistryMasks(t *testing.T) {
	r := mustNew(t)
	assert.True(t, r.AllTaxaBitmask().IsZero())
	assert.Equal(t, "0", r.SplitBitmaskString(bitmask.Mask{}))
}

func TestSplitBitmaskString(t *testing.T) {
	r, err := Generate(5)
	require.NoError(t, err)

	assert.Equal(t, "00101", r.SplitBitmaskString(bitmask.FromUint64(5)))
	assert.Equal(t, "00000", r.SplitBitmaskString(bitmask.Mask{}))
	assert.Equal(t, "11111", r.SplitBitmaskString(r.AllTaxaBitmask()))
	// Out of range bits are kept, not truncated.
	assert.Equal(t, "1000000", r.SplitBitmaskString(bitmask.Bit(6)))
}

func TestSplitBitmaskAndTaxa(t *testing.T) {
	r := mustNew(t, WithLabels("A", "B", "C", "D"))
	a, c := mustGet(t, r, "A"), mustGet(t, r, "C")

	split, err := r.SplitBitmask(a, c)
	require.NoError(t, err)
	assert.Equal(t, "0101", r.SplitBitmaskString(split))
	assert.Equal(t, []*Taxon{a, c}, r.SplitTaxa(split))

	other := r.SplitTaxa(r.ComplementSplitBitmask(split))
	require.Len(t, other, 2)
	assert.Equal(t, "B", other[0].Label())
	assert.Equal(t, "D", other[1].Label())

	assert.Empty(t, r.SplitTaxa(bitmask.Bit(10)))

	_, err = r.SplitBitmask(a, NewTaxon("Z", ""))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestComplementOutOfRangeNotValidated(t *testing.T) {
	r := mustNew(t, WithLabels("A", "B"))
	c := r.ComplementSplitBitmask(bitmask.FromPositions(0, 5))
	assert.True(t, c.Equal(bitmask.FromPositions(1, 5)))
}

func TestComplementProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 130).Draw(rt, "n")
		r, err := Generate(n)
		if err != nil {
			rt.Fatal(err)
		}
		var positions []int
		if n > 0 {
			positions = rapid.SliceOf(rapid.IntRange(0, n-1)).Draw(rt, "positions")
		}
		m := bitmask.FromPositions(positions...)
		c := r.ComplementSplitBitmask(m)

		if !c.Or(m).Equal(r.AllTaxaBitmask()) {
			rt.Fatalf("complement | m = %s, want all", c.Or(m))
		}
		if !c.And(m).IsZero() {
			rt.Fatalf("complement & m = %s, want 0", c.And(m))
		}
	})
}

func TestSplitStringProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 130).Draw(rt, "n")
		r, err := Generate(n)
		if err != nil {
			rt.Fatal(err)
		}
		positions := rapid.SliceOf(rapid.IntRange(0, n-1)).Draw(rt, "positions")
		m := bitmask.FromPositions(positions...)

		s := r.SplitBitmaskString(m)
		if len(s) != n {
			rt.Fatalf("len = %d, want %d", len(s), n)
		}
		for i := 0; i < n; i++ {
			want := byte('0')
			if m.Test(i) {
				want = '1'
			}
			if s[n-1-i] != want {
				rt.Fatalf("member %d: got %q, want %q in %s", i, s[n-1-i], want, s)
			}
		}
	})
}

func TestSplitTaxaRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(4711)
	r, err := Generate(90)
	require.NoError(t, err)

	for _, m := range rng.Splits(100, r.Len()) {
		back, err := r.SplitBitmask(r.SplitTaxa(m)...)
		require.NoError(t, err)
		assert.True(t, back.Equal(m), "%s != %s", back, m)
	}
}
