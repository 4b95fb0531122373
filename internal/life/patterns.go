package life

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"lifegrid/internal/core"
)

// Pattern is a named set of live cells relative to its top-left corner.
type Pattern struct {
	Name  string
	cells []core.Coord
}

// ParsePattern reads rows of '#'/'O' (alive) and '.' (dead) characters.
func ParsePattern(name, rows string) Pattern {
	p := Pattern{Name: name}
	for y, line := range strings.Split(strings.TrimSpace(rows), "\n") {
		for x, r := range strings.TrimSpace(line) {
			if r == '#' || r == 'O' {
				p.cells = append(p.cells, core.Coord{X: x, Y: y})
			}
		}
	}
	return p
}

// Cells returns a copy of the pattern's live cells.
func (p Pattern) Cells() []core.Coord {
	return append([]core.Coord(nil), p.cells...)
}

// Size returns the bounding box dimensions of the pattern.
func (p Pattern) Size() core.Size {
	var s core.Size
	for _, c := range p.cells {
		s.W = max(s.W, c.X+1)
		s.H = max(s.H, c.Y+1)
	}
	return s
}

// Translate returns the pattern's cells shifted by origin.
func (p Pattern) Translate(origin core.Coord) []core.Coord {
	out := make([]core.Coord, len(p.cells))
	for i, c := range p.cells {
		out[i] = c.Add(origin)
	}
	return out
}

// Stamp sets every pattern cell Alive with its top-left corner at origin.
// Cells the engine rejects are skipped and the first rejection is returned.
func (p Pattern) Stamp(e core.Engine, origin core.Coord) error {
	var first error
	for _, c := range p.Translate(origin) {
		if err := e.SetState(c, core.Alive); err != nil && first == nil {
			first = errors.Wrapf(err, "[Pattern.Stamp] %s", p.Name)
		}
	}
	return first
}

var patterns = map[string]Pattern{}

func register(name, rows string) {
	patterns[name] = ParsePattern(name, rows)
}

// Lookup returns the built-in pattern called name.
func Lookup(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists built-in patterns alphabetically.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for n := range patterns {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func init() {
	register("blinker", `
###`)
	register("block", `
##
##`)
	register("glider", `
.#.
..#
###`)
	register("beacon", `
##..
##..
..##
..##`)
	register("toad", `
.###
###.`)
	register("r-pentomino", `
.##
##.
.#.`)
	register("lwss", `
.#..#
#....
#...#
####.`)
}
