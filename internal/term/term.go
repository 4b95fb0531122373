// Package term runs the automaton in a terminal. Each cell is drawn two
// columns wide so it looks roughly square; painting uses the mouse.
package term

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
)

// CellWidth is the number of terminal columns per automaton cell.
const CellWidth = 2

// tickResolution is how often the loop checks whether a frame is due.
const tickResolution = 5 * time.Millisecond

const block = '█'

var (
	liveStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(238, 244, 255))
	statusStyle = tcell.StyleDefault.Reverse(true)
)

// ViewportFor sizes the grid to a terminal of w x h characters, keeping the
// last row for the status line.
func ViewportFor(w, h int) (cols, rows int) {
	return max(1, w/CellWidth), max(1, h-1)
}

// Terminal drives a Host from a tcell screen.
type Terminal struct {
	screen tcell.Screen
	host   *app.Host
	seed   int64
}

// New binds host to an initialised screen.
func New(screen tcell.Screen, host *app.Host) *Terminal {
	return &Terminal{screen: screen, host: host, seed: time.Now().UnixNano()}
}

// Run polls input on its own goroutine and renders frames at the playback
// rate until quit is requested or ctx is done.
func (t *Terminal) Run(ctx context.Context) error {
	t.screen.EnableMouse()
	t.screen.HideCursor()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(t.screen, events, done)

	pace := core.NewFixedStep(t.host.Playback().Rate())
	ticker := time.NewTicker(tickResolution)
	defer ticker.Stop()
	t.Frame()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if t.Handle(ev) {
				log.Printf("quit requested")
				return nil
			}
		case now := <-ticker.C:
			pace.SetRate(t.host.Playback().Rate())
			if pace.Due(now) {
				t.Frame()
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or done is
// closed. events is closed only when the screen runs dry.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// Handle applies one input event and reports whether the user asked to quit.
func (t *Terminal) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.key(ev)
	case *tcell.EventMouse:
		t.mouse(ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

func (t *Terminal) key(ev *tcell.EventKey) bool {
	pb := t.host.Playback()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		t.host.Pan(-1, 0)
	case tcell.KeyRight:
		t.host.Pan(1, 0)
	case tcell.KeyUp:
		t.host.Pan(0, -1)
	case tcell.KeyDown:
		t.host.Pan(0, 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			pb.Toggle()
		case 'n':
			pb.StepOnce()
		case 'c':
			t.host.Clear()
		case 'r':
			t.host.Reseed()
		case 's':
			t.seed++
			t.host.Randomize(t.seed)
		case '+', '=':
			pb.Adjust(1)
		case '-':
			pb.Adjust(-1)
		}
	}
	return false
}

// mouse paints with the primary button and erases with the others. The
// viewport works in square pixels, so rows are scaled to the cell width.
func (t *Terminal) mouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btn := ev.Buttons()
	switch {
	case btn&tcell.Button1 != 0:
		t.host.Paint(x, y*CellWidth, core.Alive)
	case btn&(tcell.Button2|tcell.Button3) != 0:
		t.host.Paint(x, y*CellWidth, core.Dead)
	}
}

// Frame advances the host by one tick and redraws.
func (t *Terminal) Frame() {
	_, _ = t.host.Tick()
	t.Draw()
}

// Draw renders the visible cells and the status line.
func (t *Terminal) Draw() {
	t.screen.Clear()
	for _, c := range t.host.Visible() {
		for i := 0; i < CellWidth; i++ {
			t.screen.SetContent(c.X*CellWidth+i, c.Y, block, nil, liveStyle)
		}
	}
	drawText(t.screen, 0, t.host.Viewport().Rows, statusStyle, t.status())
	t.screen.Show()
}

func (t *Terminal) status() string {
	snap := t.host.Session().Snapshot()
	pb := t.host.Playback()
	state := "running"
	if pb.Paused() {
		state = "paused"
	}
	return fmt.Sprintf(" %s | gen %d | pop %d | rate %d | %s | space run  n step  c clear  s fill  +/- rate  q quit ",
		t.host.Session().EngineName(), snap.Generation, snap.Population, pb.Rate(), state)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	w, _ := s.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
