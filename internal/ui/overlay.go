//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay outlines the cell under the pointer and optionally draws grid lines.
type Overlay struct {
	cols, rows int
	cellSize   int
	showGrid   bool
	hover      bool
	hx, hy     int
}

// NewOverlay constructs an overlay for a cols x rows viewport.
func NewOverlay(cols, rows, cellSize int) *Overlay {
	return &Overlay{cols: cols, rows: rows, cellSize: cellSize}
}

// Update tracks the pointer and toggles grid lines with G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	mx, my := ebiten.CursorPosition()
	o.hover = mx >= 0 && my >= 0 && mx < o.cols*o.cellSize && my < o.rows*o.cellSize
	if o.hover {
		o.hx, o.hy = mx/o.cellSize, my/o.cellSize
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	s := float32(o.cellSize)
	if o.showGrid && o.cellSize >= 4 {
		w, h := float32(o.cols)*s, float32(o.rows)*s
		for c := 0; c <= o.cols; c++ {
			vector.StrokeLine(screen, float32(c)*s, 0, float32(c)*s, h, 1, gridColor, false)
		}
		for r := 0; r <= o.rows; r++ {
			vector.StrokeLine(screen, 0, float32(r)*s, w, float32(r)*s, 1, gridColor, false)
		}
	}
	if o.hover {
		vector.StrokeRect(screen, float32(o.hx)*s, float32(o.hy)*s, s, s, 1, hoverColor, false)
	}
}

var (
	gridColor  = color.RGBA{R: 235, G: 235, B: 240, A: 255}
	hoverColor = color.RGBA{R: 120, G: 150, B: 220, A: 255}
)
