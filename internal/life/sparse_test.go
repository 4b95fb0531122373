package life

import (
	"slices"
	"testing"

	"lifegrid/internal/core"
)

func sparseFrom(cells ...core.Coord) *Sparse {
	s := NewSparse()
	for _, c := range cells {
		s.Set(c.X, c.Y)
	}
	return s
}

func TestSparseBlinkerOscillation(t *testing.T) {
	s := sparseFrom(core.Coord{X: 0, Y: -1}, core.Coord{X: 0, Y: 0}, core.Coord{X: 0, Y: 1})
	vertical := core.LiveCells(s)

	s.Step()
	want := []core.Coord{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}
	if got := core.LiveCells(s); !slices.Equal(got, want) {
		t.Fatalf("got %v, expected %v", got, want)
	}
	s.Step()
	if got := core.LiveCells(s); !slices.Equal(got, vertical) {
		t.Fatalf("after second step got %v, expected %v", got, vertical)
	}
}

func TestSparseRule(t *testing.T) {
	centre := core.Coord{X: 0, Y: 0}
	around := core.Neighbors(centre)
	for n := 0; n <= 8; n++ {
		s := sparseFrom(around[:n]...)
		s.Step()
		if born := s.Alive(centre); born != (n == 3) {
			t.Fatalf("dead cell with %d neighbours: alive=%v", n, born)
		}

		s = sparseFrom(append([]core.Coord{centre}, around[:n]...)...)
		s.Step()
		if survived := s.Alive(centre); survived != (n == 2 || n == 3) {
			t.Fatalf("live cell with %d neighbours: alive=%v", n, survived)
		}
	}
}

func TestSparseBlockIsStill(t *testing.T) {
	block, _ := Lookup("block")
	s := NewSparse()
	if err := block.Stamp(s, core.Coord{X: -1, Y: -1}); err != nil {
		t.Fatalf("stamp: %v", err)
	}
	want := core.LiveCells(s)
	for i := 0; i < 10; i++ {
		s.Step()
		if got := core.LiveCells(s); !slices.Equal(got, want) {
			t.Fatalf("generation %d: got %v, expected %v", i+1, got, want)
		}
	}
}

func TestSparseEmptyStaysEmpty(t *testing.T) {
	s := NewSparse()
	s.Step()
	if s.Population() != 0 {
		t.Fatalf("empty plane grew %d cells", s.Population())
	}
}

func TestSparseGliderCrossesOrigin(t *testing.T) {
	// This orientation travels up and to the left, into negative coordinates.
	g := ParsePattern("glider-nw", `
###
#..
.#.`)
	s := NewSparse()
	if err := g.Stamp(s, core.Coord{X: 0, Y: 0}); err != nil {
		t.Fatalf("stamp: %v", err)
	}
	for period := 1; period <= 5; period++ {
		for i := 0; i < 4; i++ {
			s.Step()
		}
		want := g.Translate(core.Coord{X: -period, Y: -period})
		core.SortCoords(want)
		if got := core.LiveCells(s); !slices.Equal(got, want) {
			t.Fatalf("after %d generations got %v, expected %v", 4*period, got, want)
		}
	}
	r, ok := s.Bounds()
	if !ok || r.Min != (core.Coord{X: -5, Y: -5}) || r.Max != (core.Coord{X: -2, Y: -2}) {
		t.Fatalf("bounds %v ok=%v", r, ok)
	}
}

func TestSparseSetClearIdempotent(t *testing.T) {
	s := sparseFrom(core.Coord{X: 3, Y: 4})
	before := core.LiveCells(s)

	s.Set(3, 4)
	if s.Population() != 1 {
		t.Fatalf("duplicate set changed population to %d", s.Population())
	}
	s.Clear(100, -100)
	if got := core.LiveCells(s); !slices.Equal(got, before) {
		t.Fatalf("clearing a dead cell changed state: %v", got)
	}

	s.Set(-7, 9)
	s.Clear(-7, 9)
	if got := core.LiveCells(s); !slices.Equal(got, before) {
		t.Fatalf("set then clear got %v, expected %v", got, before)
	}
}

func TestSparseBoundsEmpty(t *testing.T) {
	if _, ok := NewSparse().Bounds(); ok {
		t.Fatal("empty plane reported bounds")
	}
}

func TestSparseCellsIsSnapshot(t *testing.T) {
	s := sparseFrom(core.Coord{X: 0, Y: -1}, core.Coord{X: 0, Y: 0}, core.Coord{X: 0, Y: 1})
	before := core.LiveCells(s)
	seq := s.Cells()
	s.Step()

	var got []core.Coord
	for c := range seq {
		got = append(got, c)
	}
	core.SortCoords(got)
	if !slices.Equal(got, before) {
		t.Fatalf("snapshot changed after step: got %v, expected %v", got, before)
	}
	// Iterating again restarts from the beginning.
	n := 0
	for range seq {
		n++
	}
	if n != len(before) {
		t.Fatalf("second iteration yielded %d cells, expected %d", n, len(before))
	}
	if s.Alive(core.Coord{X: 0, Y: -1}) {
		t.Fatalf("engine did not advance")
	}
}
