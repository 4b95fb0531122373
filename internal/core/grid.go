package core

import (
	"fmt"
	"iter"
)

// ByteGrid stores a bounded 2D grid of cell states in row-major order.
// Positions outside [0,W)x[0,H) do not exist; there is no wraparound.
type ByteGrid struct {
	W, H int
	data []State
}

// NewByteGrid allocates a grid with the given dimensions, every cell Dead.
// Both dimensions must be positive.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: NewByteGrid: invalid size %dx%d", w, h))
	}
	return &ByteGrid{W: w, H: h, data: make([]State, w*h)}
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// At returns the state at (x, y); positions outside the grid read as Dead.
func (g *ByteGrid) At(x, y int) State {
	if !g.InBounds(x, y) {
		return Dead
	}
	return g.data[g.Index(x, y)]
}

// Put overwrites the state at (x, y). Callers check bounds first.
func (g *ByteGrid) Put(x, y int, s State) { g.data[g.Index(x, y)] = s }

// Count returns the number of Alive cells.
func (g *ByteGrid) Count() int {
	n := 0
	for _, s := range g.data {
		if s == Alive {
			n++
		}
	}
	return n
}

// Alive yields the coordinates of live cells in row-major order.
func (g *ByteGrid) Alive() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for i, s := range g.data {
			if s != Alive {
				continue
			}
			if !yield(Coord{X: i % g.W, Y: i / g.W}) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the grid.
func (g *ByteGrid) Clone() *ByteGrid {
	return &ByteGrid{W: g.W, H: g.H, data: append([]State(nil), g.data...)}
}

// Clear fills the grid with Dead cells.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}
