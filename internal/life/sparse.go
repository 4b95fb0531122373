package life

import (
	"iter"
	"maps"

	"lifegrid/internal/core"
)

// Sparse implements the automaton on the unbounded plane by storing only live
// coordinates. A step visits live cells and their neighbours, nothing else.
type Sparse struct {
	live map[core.Coord]struct{}
}

// NewSparse returns an empty plane.
func NewSparse() *Sparse {
	return &Sparse{live: make(map[core.Coord]struct{})}
}

// Name returns the engine identifier.
func (s *Sparse) Name() string { return "sparse" }

// Set makes (x, y) live. Setting a live cell is a no-op.
func (s *Sparse) Set(x, y int) { s.live[core.Coord{X: x, Y: y}] = struct{}{} }

// Clear makes (x, y) dead. Clearing a dead cell is a no-op.
func (s *Sparse) Clear(x, y int) { delete(s.live, core.Coord{X: x, Y: y}) }

// SetState sets or clears c. The plane has no bounds so it never fails.
func (s *Sparse) SetState(c core.Coord, st core.State) error {
	if st == core.Alive {
		s.Set(c.X, c.Y)
	} else {
		s.Clear(c.X, c.Y)
	}
	return nil
}

// Alive reports whether c is a live cell.
func (s *Sparse) Alive(c core.Coord) bool {
	_, ok := s.live[c]
	return ok
}

// Population returns the number of live cells.
func (s *Sparse) Population() int { return len(s.live) }

// Cells yields live cells of the generation current when Cells is called, in
// no particular order.
func (s *Sparse) Cells() iter.Seq[core.Coord] {
	snap := make([]core.Coord, 0, len(s.live))
	for c := range s.live {
		snap = append(snap, c)
	}
	return func(yield func(core.Coord) bool) {
		for _, c := range snap {
			if !yield(c) {
				return
			}
		}
	}
}

// Reset kills every cell.
func (s *Sparse) Reset() { clear(s.live) }

// Bounds returns the smallest rectangle holding every live cell and false when
// the plane is empty.
func (s *Sparse) Bounds() (core.Rect, bool) {
	var r core.Rect
	first := true
	for c := range s.live {
		if first {
			r = core.Rect{Min: c, Max: core.Coord{X: c.X + 1, Y: c.Y + 1}}
			first = false
			continue
		}
		r.Min.X = min(r.Min.X, c.X)
		r.Min.Y = min(r.Min.Y, c.Y)
		r.Max.X = max(r.Max.X, c.X+1)
		r.Max.Y = max(r.Max.Y, c.Y+1)
	}
	return r, !first
}

func (s *Sparse) neighbors(c core.Coord) int {
	n := 0
	for _, nb := range core.Neighbors(c) {
		if _, ok := s.live[nb]; ok {
			n++
		}
	}
	return n
}

// Step computes the next generation as (live - deaths) + births. Deaths come
// from live cells with a neighbour count outside {2,3}; births from dead
// neighbours of live cells with exactly three live neighbours. The live set is
// only replaced once the scan is complete.
func (s *Sparse) Step() {
	var (
		deaths  []core.Coord
		births  []core.Coord
		visited = make(map[core.Coord]struct{}, len(s.live)*2)
	)
	for c := range s.live {
		if core.NextState(core.Alive, s.neighbors(c)) == core.Dead {
			deaths = append(deaths, c)
		}
		for _, nb := range core.Neighbors(c) {
			if _, ok := s.live[nb]; ok {
				continue
			}
			if _, seen := visited[nb]; seen {
				continue
			}
			visited[nb] = struct{}{}
			if core.NextState(core.Dead, s.neighbors(nb)) == core.Alive {
				births = append(births, nb)
			}
		}
	}

	next := maps.Clone(s.live)
	for _, c := range deaths {
		delete(next, c)
	}
	for _, c := range births {
		next[c] = struct{}{}
	}
	s.live = next
}

func init() {
	core.Register("sparse", func(map[string]string) core.Engine {
		return NewSparse()
	})
}
