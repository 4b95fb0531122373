package app

import "lifegrid/internal/core"

// Viewport maps window pixels to cells. Camera is the cell drawn at the
// top-left corner; it only moves on unbounded engines.
type Viewport struct {
	Cols     int
	Rows     int
	CellSize int
	Camera   core.Coord
}

// Pixels returns the window dimensions covered by the viewport.
func (v Viewport) Pixels() (int, int) {
	return v.Cols * v.CellSize, v.Rows * v.CellSize
}

// CellAt maps a pixel position to a cell. It reports false for positions
// outside the viewport.
func (v Viewport) CellAt(px, py int) (core.Coord, bool) {
	w, h := v.Pixels()
	if px < 0 || py < 0 || px >= w || py >= h {
		return core.Coord{}, false
	}
	return core.Coord{X: px/v.CellSize + v.Camera.X, Y: py/v.CellSize + v.Camera.Y}, true
}

// Local converts a plane coordinate into viewport column and row. It reports
// false when the cell is not visible.
func (v Viewport) Local(c core.Coord) (int, int, bool) {
	col, row := c.X-v.Camera.X, c.Y-v.Camera.Y
	if col < 0 || row < 0 || col >= v.Cols || row >= v.Rows {
		return 0, 0, false
	}
	return col, row, true
}

// Region returns the plane rectangle currently on screen.
func (v Viewport) Region() core.Rect {
	return core.Rect{Min: v.Camera, Max: core.Coord{X: v.Camera.X + v.Cols, Y: v.Camera.Y + v.Rows}}
}

// Pan moves the camera by (dx, dy) cells.
func (v *Viewport) Pan(dx, dy int) {
	v.Camera.X += dx
	v.Camera.Y += dy
}

// Centre returns the cell in the middle of the viewport.
func (v Viewport) Centre() core.Coord {
	return core.Coord{X: v.Camera.X + v.Cols/2, Y: v.Camera.Y + v.Rows/2}
}
