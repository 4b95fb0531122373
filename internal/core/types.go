package core

import (
	"iter"
	"sort"

	"github.com/pkg/errors"
)

// State is the two-valued tag carried by every cell.
type State uint8

const (
	// Dead is the zero value so freshly allocated storage is empty.
	Dead State = iota
	// Alive marks a living cell.
	Alive
)

// String returns a lowercase name for the state.
func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Coord addresses a cell on the plane. X is the column and Y the row; both are
// signed so the sparse engine can extend in every direction.
type Coord struct {
	X int
	Y int
}

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord { return Coord{X: c.X + o.X, Y: c.Y + o.Y} }

// Size describes the dimensions of a bounded grid.
type Size struct {
	W int
	H int
}

// Rect is an inclusive-exclusive region of the plane.
type Rect struct {
	Min Coord
	Max Coord
}

// Contains reports whether c lies inside r.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.Min.X && c.X < r.Max.X && c.Y >= r.Min.Y && c.Y < r.Max.Y
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y }

// Engine is the contract shared by every automaton representation.
type Engine interface {
	Name() string
	// Step replaces the current generation with the next one.
	Step()
	SetState(c Coord, s State) error
	Alive(c Coord) bool
	Population() int
	// Cells yields every live coordinate of the generation current at call time.
	Cells() iter.Seq[Coord]
	// Reset kills every cell.
	Reset()
}

// ErrOutOfBounds is reported when a coordinate falls outside a bounded grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// SortCoords orders coordinates row-major so snapshots compare deterministically.
func SortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Y != cs[j].Y {
			return cs[i].Y < cs[j].Y
		}
		return cs[i].X < cs[j].X
	})
}

// LiveCells collects the engine's live cells in row-major order.
func LiveCells(e Engine) []Coord {
	out := make([]Coord, 0, e.Population())
	for c := range e.Cells() {
		out = append(out, c)
	}
	SortCoords(out)
	return out
}

// Factory constructs an Engine using an optional configuration map.
type Factory func(cfg map[string]string) Engine

var engines = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available engine factories.
func Engines() map[string]Factory {
	return engines
}

// NewEngine builds the engine registered under name.
func NewEngine(name string, cfg map[string]string) (Engine, error) {
	f, ok := engines[name]
	if !ok {
		return nil, errors.Errorf("unknown engine %q", name)
	}
	return f(cfg), nil
}
