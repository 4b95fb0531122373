package app

import (
	"strconv"

	"lifegrid/internal/core"
)

// Playback owns the pause flag and the pace. It starts paused.
type Playback struct {
	paused   bool
	stepOnce bool
	rate     int

	runRate    int
	pausedRate int
	minRate    int
	maxRate    int
}

// NewPlayback builds playback controls from the host configuration.
func NewPlayback(cfg *Config) *Playback {
	return &Playback{
		paused:     true,
		rate:       cfg.Rate,
		runRate:    cfg.Rate,
		pausedRate: cfg.PausedRate,
		minRate:    cfg.MinRate,
		maxRate:    cfg.MaxRate,
	}
}

// Paused reports whether generations are held.
func (p *Playback) Paused() bool { return p.paused }

// Toggle flips between paused and running. The running pace always restarts
// from the configured rate.
func (p *Playback) Toggle() {
	p.paused = !p.paused
	p.rate = p.runRate
}

// StepOnce requests a single generation on the next tick while paused.
func (p *Playback) StepOnce() {
	if p.paused {
		p.stepOnce = true
	}
}

// Adjust changes the running pace by delta. It is ignored while paused and
// when the result would leave the open interval (min, max).
func (p *Playback) Adjust(delta int) bool {
	if p.paused || delta == 0 {
		return false
	}
	return p.setRate(p.rate + delta)
}

func (p *Playback) setRate(v int) bool {
	if !p.rateControl().Allows(v) {
		return false
	}
	p.rate = v
	return true
}

// Rate returns the frames per second the host should run at. While paused
// the host keeps a higher frame rate so painting stays responsive.
func (p *Playback) Rate() int {
	if p.paused {
		return p.pausedRate
	}
	return p.rate
}

// Tick produces the per-frame signal for the session.
func (p *Playback) Tick() core.TickConfig {
	advance := !p.paused || p.stepOnce
	p.stepOnce = false
	return core.TickConfig{Advance: advance, Rate: p.Rate()}
}

func (p *Playback) rateControl() core.ParameterControl {
	return core.ParameterControl{
		Key:    "rate",
		Label:  "Rate",
		Step:   1,
		Min:    p.minRate,
		Max:    p.maxRate,
		Strict: true,
	}
}

// ParameterControls exposes the pace to the HUD.
func (p *Playback) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{p.rateControl()}
}

// SetIntParameter updates the pace from the HUD. Like the mouse wheel it only
// applies while running.
func (p *Playback) SetIntParameter(key string, value int) bool {
	if key != "rate" || p.paused {
		return false
	}
	return p.setRate(value)
}

func (p *Playback) parameters() core.ParameterGroup {
	state := "running"
	if p.paused {
		state = "paused"
	}
	return core.ParameterGroup{
		Name: "Playback",
		Params: []core.Parameter{
			{Key: "state", Label: "State", Type: core.ParamTypeText, Value: state},
			{Key: "rate", Label: "Rate", Type: core.ParamTypeInt, Value: strconv.Itoa(p.Rate())},
		},
	}
}
