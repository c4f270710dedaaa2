package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/taxa/bitmask"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Labels returns n labels drawn from a pool of size distinct names, so
// duplicates occur when size < n. Labels look like "sp17".
func (r *RNG) Labels(n, size int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("sp%d", r.rand.Intn(size))
	}
	return out
}

// Positions returns a random subset of [0, n) in ascending order. Each
// position is included with probability p.
func (r *RNG) Positions(n int, p float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []int
	for i := 0; i < n; i++ {
		if r.rand.Float64() < p {
			out = append(out, i)
		}
	}
	return out
}

// Split returns a random split mask over n taxa.
func (r *RNG) Split(n int) bitmask.Mask {
	return bitmask.FromPositions(r.Positions(n, 0.5)...)
}

// Splits returns count random split masks over n taxa.
func (r *RNG) Splits(count, n int) []bitmask.Mask {
	out := make([]bitmask.Mask, count)
	for i := range out {
		out[i] = r.Split(n)
	}
	return out
}
