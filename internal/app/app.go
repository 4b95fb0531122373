//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"
)

// hudWidth is the width in pixels of the status panel.
const hudWidth = 200

// Game adapts a Host to the ebiten.Game interface.
type Game struct {
	host    *Host
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	rate    int
}

// New constructs a Game for the provided host.
func New(h *Host) *Game {
	v := h.Viewport()
	return &Game{
		host:    h,
		painter: render.NewGridPainter(v.Cols, v.Rows, v.CellSize),
		hud:     ui.NewHUD(h, hudWidth),
		overlay: ui.NewOverlay(v.Cols, v.Rows, v.CellSize),
	}
}

// WindowSize returns the outer window size including the HUD.
func (g *Game) WindowSize() (int, int) {
	w, h := g.host.Viewport().Pixels()
	return w + g.hud.Width(), h
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	pb := g.host.Playback()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		pb.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		pb.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.host.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.host.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.host.Randomize(time.Now().UnixNano())
	}
	g.pan()
	if _, dy := ebiten.Wheel(); dy > 0 {
		pb.Adjust(1)
	} else if dy < 0 {
		pb.Adjust(-1)
	}

	if ebiten.IsFocused() {
		mx, my := ebiten.CursorPosition()
		switch {
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
			g.host.Paint(mx, my, core.Alive)
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
			g.host.Paint(mx, my, core.Dead)
		}
	}

	w, _ := g.host.Viewport().Pixels()
	g.hud.Update(w)
	g.overlay.Update()

	// Edit errors are logged by the host and never stop the loop.
	_, _ = g.host.Tick()

	if rate := pb.Rate(); rate != g.rate {
		ebiten.SetTPS(rate)
		g.rate = rate
	}
	return nil
}

func (g *Game) pan() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.host.Pan(-1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.host.Pan(1, 0)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.host.Pan(0, -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.host.Pan(0, 1)
	}
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.host.Visible())
	g.overlay.Draw(screen)
	w, h := g.host.Viewport().Pixels()
	g.hud.Draw(screen, w, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
