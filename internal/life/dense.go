package life

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"

	"lifegrid/internal/core"
)

// Dense implements the automaton on a fixed rows x cols grid. Cells beyond the
// border do not exist and count as Dead.
type Dense struct {
	grid *core.ByteGrid

	// staging buffers reused across steps
	keep []core.Coord
	dead []core.Coord
}

// NewDense returns an all-Dead grid with the given dimensions. It panics when
// rows or cols is not positive.
func NewDense(rows, cols int) *Dense {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("life: NewDense: invalid size %dx%d", rows, cols))
	}
	return &Dense{grid: core.NewByteGrid(cols, rows)}
}

// Name returns the engine identifier.
func (d *Dense) Name() string { return "dense" }

// Size returns the grid dimensions.
func (d *Dense) Size() core.Size { return core.Size{W: d.grid.W, H: d.grid.H} }

// Get returns the state at (row, col). Out-of-range positions read as Dead.
func (d *Dense) Get(row, col int) core.State { return d.grid.At(col, row) }

// Set overwrites the cell at (row, col). It fails with ErrOutOfBounds, leaving
// the grid untouched, when the position is outside the grid.
func (d *Dense) Set(row, col int, s core.State) error {
	if !d.grid.InBounds(col, row) {
		return errors.Wrapf(core.ErrOutOfBounds, "[Dense.Set] (%d,%d) outside %dx%d grid", row, col, d.grid.H, d.grid.W)
	}
	d.grid.Put(col, row, s)
	return nil
}

// SetState sets the cell at c, where c.Y is the row and c.X the column.
func (d *Dense) SetState(c core.Coord, s core.State) error { return d.Set(c.Y, c.X, s) }

// Alive reports whether c is a live cell.
func (d *Dense) Alive(c core.Coord) bool { return d.grid.At(c.X, c.Y) == core.Alive }

// Population returns the number of live cells.
func (d *Dense) Population() int { return d.grid.Count() }

// Cells yields live cells of the generation current when Cells is called.
func (d *Dense) Cells() iter.Seq[core.Coord] { return d.grid.Clone().Alive() }

// Reset kills every cell.
func (d *Dense) Reset() { d.grid.Clear() }

// neighbors counts live cells around (x, y), clipping at the border.
func (d *Dense) neighbors(x, y int) int {
	n := 0
	for _, nb := range core.Neighbors(core.Coord{X: x, Y: y}) {
		if d.grid.At(nb.X, nb.Y) == core.Alive {
			n++
		}
	}
	return n
}

// Step computes the next generation. Every decision is made against the
// current grid and the staged changes are committed after the full scan.
func (d *Dense) Step() {
	d.keep = d.keep[:0]
	d.dead = d.dead[:0]
	for y := 0; y < d.grid.H; y++ {
		for x := 0; x < d.grid.W; x++ {
			c := core.Coord{X: x, Y: y}
			if core.NextState(d.grid.At(x, y), d.neighbors(x, y)) == core.Alive {
				d.keep = append(d.keep, c)
			} else if d.grid.At(x, y) == core.Alive {
				d.dead = append(d.dead, c)
			}
		}
	}
	for _, c := range d.keep {
		d.grid.Put(c.X, c.Y, core.Alive)
	}
	for _, c := range d.dead {
		d.grid.Put(c.X, c.Y, core.Dead)
	}
}

func init() {
	core.Register("dense", func(cfg map[string]string) core.Engine {
		c := FromMap(cfg)
		return NewDense(c.Height, c.Width)
	})
}
