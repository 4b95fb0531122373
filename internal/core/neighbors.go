package core

// moore lists the eight Moore-neighbourhood offsets.
var moore = [8]Coord{
	{X: 0, Y: -1},
	{X: -1, Y: -1},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
	{X: -1, Y: 1},
	{X: 1, Y: -1},
}

// Neighbors returns the eight cells adjacent to c, diagonals included.
func Neighbors(c Coord) [8]Coord {
	var out [8]Coord
	for i, d := range moore {
		out[i] = c.Add(d)
	}
	return out
}

// NextState applies the birth/survival rule: a live cell survives with two or
// three live neighbours, a dead cell is born with exactly three.
func NextState(s State, neighbors int) State {
	if neighbors == 3 || (s == Alive && neighbors == 2) {
		return Alive
	}
	return Dead
}
