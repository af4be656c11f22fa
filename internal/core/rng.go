package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// The PCG state lives inside the struct so reseeding never allocates.
type RNG struct {
	pcg rand.PCG
	r   *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	g := &RNG{}
	g.pcg.Seed(uint64(seed), 0)
	g.r = rand.New(&g.pcg)
	return g
}

// Reseed restarts the generator on the given seed and stream.
func (g *RNG) Reseed(seed int64, stream uint64) {
	g.pcg.Seed(uint64(seed), stream)
}

// CellStream derives the stream used for the cell at idx during step.
// Results therefore do not depend on the order cells are visited in.
func CellStream(step uint64, idx int) uint64 {
	return step<<32 ^ uint64(idx)
}

// Bool returns a random boolean value.
func (g *RNG) Bool() bool {
	return g.r.IntN(2) == 1
}

// Float64 returns a value in [0, 1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// IntN returns a value in [0, n). It returns 0 when n <= 0.
func (g *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return g.r.IntN(n)
}

// IntRange returns a value in [lo, hi], both ends inclusive.
func (g *RNG) IntRange(lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + g.r.IntN(hi-lo+1)
}
