package render

import (
	"image/color"

	"lifegrid/internal/core"
)

// Palette for the classic look: live cells are pale blue squares with a
// slightly darker rim on a white background.
var (
	Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	CellFill   = color.RGBA{R: 238, G: 244, B: 255, A: 255}
	CellRim    = color.RGBA{R: 223, G: 236, B: 255, A: 255}
)

// Tile is the on-screen square for one live cell. Outer is the rim and Inner
// the fill, both in pixels.
type Tile struct {
	OuterX, OuterY, OuterSize float32
	InnerX, InnerY, InnerSize float32
}

// tileFor lays out the cell at viewport column col and row.
func tileFor(col, row, cellSize int) Tile {
	x, y, s := float32(col*cellSize), float32(row*cellSize), float32(cellSize)
	inset := float32(1)
	if cellSize < 3 {
		inset = 0
	}
	return Tile{
		OuterX: x, OuterY: y, OuterSize: s,
		InnerX: x + inset, InnerY: y + inset, InnerSize: s - 2*inset,
	}
}

// Tiles converts visible (col, row) cells into screen squares.
func Tiles(visible []core.Coord, cellSize int) []Tile {
	out := make([]Tile, len(visible))
	for i, c := range visible {
		out[i] = tileFor(c.X, c.Y, cellSize)
	}
	return out
}

// fillBinaryRGBA paints a cols x rows RGBA buffer with on for live cells and
// off elsewhere. Cells outside the buffer are ignored.
func fillBinaryRGBA(buf []byte, cols, rows int, visible []core.Coord, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i := 0; i < cols*rows; i++ {
		base := i * 4
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
	for _, c := range visible {
		if c.X < 0 || c.Y < 0 || c.X >= cols || c.Y >= rows {
			continue
		}
		base := (c.Y*cols + c.X) * 4
		buf[base+0] = uint8(rOn >> 8)
		buf[base+1] = uint8(gOn >> 8)
		buf[base+2] = uint8(bOn >> 8)
		buf[base+3] = uint8(aOn >> 8)
	}
}
