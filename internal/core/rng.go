package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// Scatter sets cells inside region Alive with probability density. Cells the
// engine rejects are skipped; the first rejection is returned.
func Scatter(r *RNG, e Engine, region Rect, density float64) error {
	var first error
	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			if !r.Chance(density) {
				continue
			}
			if err := e.SetState(Coord{X: x, Y: y}, Alive); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}
