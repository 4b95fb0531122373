package core

import "time"

// DefaultRate is the generations-per-second pace used when none is given.
const DefaultRate = 14

// FixedStep releases ticks at a steady rate from a caller-driven clock.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep releasing rate ticks per second. The
// first call to Due always fires.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the tick rate without dropping accumulated time.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = DefaultRate
	}
	f.step = time.Second / time.Duration(rate)
}

// Interval returns the duration between ticks.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Due reports whether a tick should be released at now. At most one tick is
// released per call; a stalled caller does not get a burst afterwards.
func (f *FixedStep) Due(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return true
}
