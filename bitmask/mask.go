package bitmask

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// ErrInvalidBitString is returned by Parse for input that is not a string of '0' and '1'.
var ErrInvalidBitString = errors.New("invalid bit string")

// Mask is an immutable set of bit positions.
type Mask struct {
	bs *bitset.BitSet
}

// Bit returns the mask with only bit i set (1 << i).
func Bit(i int) Mask {
	if i < 0 {
		panic(fmt.Sprintf("bitmask: negative bit position %d", i))
	}
	return Mask{bs: bitset.New(uint(i) + 1).Set(uint(i))}
}

// Ones returns the mask with bits [0, n) set, i.e. (1 << n) - 1.
func Ones(n int) Mask {
	if n <= 0 {
		return Mask{}
	}
	bs := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		bs.Set(uint(i))
	}
	return Mask{bs: bs}
}

// FromUint64 converts a machine word into a Mask.
func FromUint64(v uint64) Mask {
	if v == 0 {
		return Mask{}
	}
	bs := bitset.New(uint(bits.Len64(v)))
	for v != 0 {
		i := bits.TrailingZeros64(v)
		bs.Set(uint(i))
		v &= v - 1
	}
	return Mask{bs: bs}
}

// FromPositions returns the mask with the given bit positions set.
func FromPositions(positions ...int) Mask {
	m := Mask{}
	for _, p := range positions {
		m = m.Or(Bit(p))
	}
	return m
}

// Parse reads a binary string, most significant bit first.
func Parse(s string) (Mask, error) {
	if s == "" {
		return Mask{}, fmt.Errorf("%w: empty", ErrInvalidBitString)
	}
	bs := bitset.New(uint(len(s)))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			bs.Set(uint(len(s) - 1 - i))
		case '0':
		default:
			return Mask{}, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidBitString, s[i], i)
		}
	}
	return Mask{bs: bs}, nil
}

func (m Mask) set() *bitset.BitSet {
	if m.bs == nil {
		return bitset.New(0)
	}
	return m.bs
}

// Or returns the union of m and other.
func (m Mask) Or(other Mask) Mask {
	return Mask{bs: m.set().Union(other.set())}
}

// And returns the intersection of m and other.
func (m Mask) And(other Mask) Mask {
	return Mask{bs: m.set().Intersection(other.set())}
}

// Xor returns the symmetric difference of m and other.
func (m Mask) Xor(other Mask) Mask {
	return Mask{bs: m.set().SymmetricDifference(other.set())}
}

// AndNot returns the bits of m that are not in other.
func (m Mask) AndNot(other Mask) Mask {
	return Mask{bs: m.set().Difference(other.set())}
}

// Test reports whether bit i is set.
func (m Mask) Test(i int) bool {
	if i < 0 || m.bs == nil {
		return false
	}
	return m.bs.Test(uint(i))
}

// Count returns the number of set bits.
func (m Mask) Count() int {
	if m.bs == nil {
		return 0
	}
	return int(m.bs.Count())
}

// IsZero reports whether no bit is set.
func (m Mask) IsZero() bool {
	return m.bs == nil || m.bs.None()
}

// Equal reports whether m and other have the same bits set.
// The allocated width of either mask is irrelevant.
func (m Mask) Equal(other Mask) bool {
	return m.Xor(other).IsZero()
}

// Contains reports whether every bit of sub is also set in m.
func (m Mask) Contains(sub Mask) bool {
	return sub.AndNot(m).IsZero()
}

// Bits iterates over the set bit positions in ascending order.
func (m Mask) Bits() iter.Seq[int] {
	return func(yield func(int) bool) {
		if m.bs == nil {
			return
		}
		for i, ok := m.bs.NextSet(0); ok; i, ok = m.bs.NextSet(i + 1) {
			if !yield(int(i)) {
				return
			}
		}
	}
}

// BitLen returns the position of the highest set bit plus one (0 for the empty mask).
func (m Mask) BitLen() int {
	n := 0
	for i := range m.Bits() {
		n = i + 1
	}
	return n
}

// Uint64 returns m as a machine word. ok is false if a bit at position 64 or higher is set.
func (m Mask) Uint64() (v uint64, ok bool) {
	for i := range m.Bits() {
		if i >= 64 {
			return 0, false
		}
		v |= 1 << uint(i)
	}
	return v, true
}

// String returns the binary representation, most significant bit first.
// The empty mask is "0".
func (m Mask) String() string {
	return m.Format(0)
}

// Format returns the binary representation left-padded with '0' to width.
// The result is never truncated: bits above width are kept.
func (m Mask) Format(width int) string {
	n := max(m.BitLen(), width, 1)
	buf := []byte(strings.Repeat("0", n))
	for i := range m.Bits() {
		buf[n-1-i] = '1'
	}
	return string(buf)
}
