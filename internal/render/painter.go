//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lifegrid/internal/core"
)

// blitBelow is the cell size under which cells are uploaded as single pixels
// and scaled instead of drawn as outlined squares.
const blitBelow = 3

// GridPainter draws the visible live cells of a cols x rows viewport.
type GridPainter struct {
	cols, rows int
	cellSize   int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for the given viewport.
func NewGridPainter(cols, rows, cellSize int) *GridPainter {
	gp := &GridPainter{cols: cols, rows: rows, cellSize: cellSize}
	if cellSize < blitBelow {
		gp.img = ebiten.NewImage(cols, rows)
		gp.buf = make([]byte, 4*cols*rows)
	}
	return gp
}

// Draw paints the background and every visible cell onto dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, visible []core.Coord) {
	if gp.img != nil {
		fillBinaryRGBA(gp.buf, gp.cols, gp.rows, visible, CellFill, Background)
		gp.img.WritePixels(gp.buf)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(gp.cellSize), float64(gp.cellSize))
		dst.DrawImage(gp.img, op)
		return
	}
	w, h := float32(gp.cols*gp.cellSize), float32(gp.rows*gp.cellSize)
	vector.DrawFilledRect(dst, 0, 0, w, h, Background, false)
	for _, t := range Tiles(visible, gp.cellSize) {
		vector.DrawFilledRect(dst, t.OuterX, t.OuterY, t.OuterSize, t.OuterSize, CellRim, false)
		vector.DrawFilledRect(dst, t.InnerX, t.InnerY, t.InnerSize, t.InnerSize, CellFill, false)
	}
}

// Size returns the viewport dimensions in cells.
func (gp *GridPainter) Size() (int, int) { return gp.cols, gp.rows }
