package app

import (
	"log"
	"strconv"

	"github.com/pkg/errors"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
)

// defaultFill is the density used by Randomize when none is configured.
const defaultFill = 0.2

// Host ties an engine session to playback controls and a viewport. It holds
// everything a frontend needs except drawing and raw input polling.
type Host struct {
	cfg      *Config
	session  *core.Session
	playback *Playback
	view     Viewport
	bounded  bool
	seed     int64
}

// NewHost builds the configured engine and seeds it with the optional random
// fill and pattern.
func NewHost(cfg *Config) (*Host, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	engine, err := core.NewEngine(cfg.Engine, cfg.EngineConfig())
	if err != nil {
		return nil, err
	}
	_, bounded := engine.(*life.Dense)
	h := &Host{
		cfg:      cfg,
		playback: NewPlayback(cfg),
		view:     Viewport{Cols: cfg.Cols, Rows: cfg.Rows, CellSize: cfg.CellSize},
		bounded:  bounded,
		seed:     cfg.Seed,
	}
	if cfg.Density > 0 {
		if err := core.Scatter(core.NewRNG(cfg.Seed), engine, h.view.Region(), cfg.Density); err != nil {
			return nil, errors.Wrap(err, "[NewHost] random fill")
		}
	}
	if cfg.Pattern != "" {
		p, ok := life.Lookup(cfg.Pattern)
		if !ok {
			return nil, errors.Errorf("[NewHost] unknown pattern %q", cfg.Pattern)
		}
		size := p.Size()
		origin := h.view.Centre().Add(core.Coord{X: -size.W / 2, Y: -size.H / 2})
		if err := p.Stamp(engine, origin); err != nil {
			return nil, err
		}
	}
	h.session = core.NewSession(engine, cfg.History)
	return h, nil
}

// Session exposes the underlying session.
func (h *Host) Session() *core.Session { return h.session }

// Playback exposes the playback controls.
func (h *Host) Playback() *Playback { return h.playback }

// Viewport returns the current viewport.
func (h *Host) Viewport() Viewport { return h.view }

// Bounded reports whether the engine has a fixed grid.
func (h *Host) Bounded() bool { return h.bounded }

// Paint maps a pixel position to a cell and queues the edit. Positions that
// fall outside the viewport are dropped, which also keeps dense edits in range.
func (h *Host) Paint(px, py int, s core.State) bool {
	c, ok := h.view.CellAt(px, py)
	if !ok {
		return false
	}
	h.session.Paint(c, s)
	return true
}

// Pan moves the camera. Bounded grids always fill the viewport so they do not pan.
func (h *Host) Pan(dx, dy int) {
	if h.bounded {
		return
	}
	h.view.Pan(dx, dy)
}

// Clear queues killing every cell.
func (h *Host) Clear() { h.session.Clear() }

// Randomize queues replacing the visible region with a random fill drawn from seed.
func (h *Host) Randomize(seed int64) {
	h.seed = seed
	density := h.cfg.Density
	if density <= 0 {
		density = defaultFill
	}
	region := h.view.Region()
	h.session.Queue(func(e core.Engine) error {
		e.Reset()
		return core.Scatter(core.NewRNG(seed), e, region, density)
	})
}

// Reseed repeats the last random fill.
func (h *Host) Reseed() { h.Randomize(h.seed) }

// Tick advances the session by one frame using the playback signal.
func (h *Host) Tick() (bool, error) {
	stepped, err := h.session.Tick(h.playback.Tick())
	if err != nil {
		log.Printf("edit rejected: %v", err)
	}
	return stepped, err
}

// Visible returns live cells inside the viewport as (col, row) positions.
func (h *Host) Visible() []core.Coord {
	var out []core.Coord
	h.session.View(func(e core.Engine) {
		for c := range e.Cells() {
			if col, row, ok := h.view.Local(c); ok {
				out = append(out, core.Coord{X: col, Y: row})
			}
		}
	})
	return out
}

// Parameters assembles the HUD snapshot.
func (h *Host) Parameters() core.ParameterSnapshot {
	snap := h.session.Snapshot()
	period := "-"
	switch {
	case snap.Population == 0:
		period = "extinct"
	case snap.Period == 1:
		period = "still"
	case snap.Period > 1:
		period = "p" + strconv.Itoa(snap.Period)
	}
	world := core.ParameterGroup{
		Name: "World",
		Params: []core.Parameter{
			{Key: "engine", Label: "Engine", Type: core.ParamTypeText, Value: h.session.EngineName()},
			{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(snap.Generation)},
			{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(snap.Population)},
			{Key: "period", Label: "Period", Type: core.ParamTypeText, Value: period},
		},
	}
	if !h.bounded {
		cam := h.view.Camera
		world.Params = append(world.Params, core.Parameter{
			Key: "camera", Label: "Camera", Type: core.ParamTypeText,
			Value: strconv.Itoa(cam.X) + "," + strconv.Itoa(cam.Y),
		})
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{world, h.playback.parameters()}}
}

// ParameterControls exposes the adjustable pace.
func (h *Host) ParameterControls() []core.ParameterControl {
	return h.playback.ParameterControls()
}

// SetIntParameter forwards HUD adjustments to playback.
func (h *Host) SetIntParameter(key string, value int) bool {
	return h.playback.SetIntParameter(key, value)
}
