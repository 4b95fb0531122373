//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"lifegrid/internal/core"
)

// HUD renders the status panel to the right of the grid.
type HUD struct {
	src        core.ParameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	setter       core.IntParameterSetter
	panelOffsetX int
}

// NewHUD constructs a HUD reading from src with the given panel width.
func NewHUD(src core.ParameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width}
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the snapshot and handles clicks on the +/- buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.src.Parameters()
	h.layout()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawSnapshot()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawSnapshot() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, headerColor)
		y += lineSpacing
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, labelColor)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, labelColor)
			y += lineSpacing
		}
		y += lineSpacing / 2
	}
	text.Draw(h.panel, "space run  n step  c clear", face, panelPadding, h.lastHeight-panelPadding-lineSpacing, hintColor)
	text.Draw(h.panel, "r/s fill  wheel rate  esc", face, panelPadding, h.lastHeight-panelPadding, hintColor)
}

// layout places the controls below the snapshot text.
func (h *HUD) layout() {
	rows := 0
	for _, g := range h.snapshot.Groups {
		rows += len(g.Params) + 2
	}
	top := panelPadding + headerBaseline + rows*lineSpacing
	for i := range h.controls {
		rowTop := top + i*controlHeight
		buttonY := rowTop + (controlHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = rowTop
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = param.Value
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || h.setter == nil {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.apply(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.apply(state, 1)
			return
		}
	}
}

func (h *HUD) apply(state *hudControlState, direction int) {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.intValue + direction*step
	if h.setter.SetIntParameter(state.control.Key, target) {
		state.intValue = target
		state.value = strconv.Itoa(target)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + controlHeight/2 + 4
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)
		enabled := state.hasValue && h.setter != nil
		minusOK := enabled && state.control.Allows(state.intValue-state.control.Step)
		plusOK := enabled && state.control.Allows(state.intValue+state.control.Step)
		h.drawButton(state.minusRect, "-", minusOK)
		h.drawButton(state.plusRect, "+", plusOK)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control  core.ParameterControl
	value    string
	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hintColor   = color.RGBA{R: 140, G: 140, B: 150, A: 255}
)

const (
	panelPadding   = 12
	lineSpacing    = 16
	controlHeight  = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 14
)
