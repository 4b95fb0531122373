package core

import (
	"sync"

	"github.com/pkg/errors"
)

// TickConfig is the per-frame signal a host hands to the session.
type TickConfig struct {
	// Advance requests one generation this tick.
	Advance bool
	// Rate is the host's current pace in generations per second.
	Rate int
}

// Edit is a mutation applied to the engine between generations.
type Edit func(Engine) error

// Snapshot is a consistent view of one generation.
type Snapshot struct {
	Generation int
	Population int
	Period     int
	Cells      []Coord
}

// Session serializes access to an engine. Edits are queued and drained at the
// start of the next Tick so they never interleave with a Step.
type Session struct {
	mu         sync.Mutex
	engine     Engine
	pending    []Edit
	generation int
	history    *History
}

// NewSession wraps e. historyDepth bounds the detectable oscillator period.
func NewSession(e Engine, historyDepth int) *Session {
	s := &Session{engine: e, history: NewHistory(historyDepth)}
	s.history.Record(FingerprintOf(e))
	return s
}

// EngineName returns the wrapped engine's name.
func (s *Session) EngineName() string { return s.engine.Name() }

// Queue schedules an arbitrary edit.
func (s *Session) Queue(e Edit) {
	if e == nil {
		return
	}
	s.mu.Lock()
	s.pending = append(s.pending, e)
	s.mu.Unlock()
}

// Paint schedules setting c to state.
func (s *Session) Paint(c Coord, state State) {
	s.Queue(func(e Engine) error { return e.SetState(c, state) })
}

// Clear schedules killing every cell.
func (s *Session) Clear() {
	s.Queue(func(e Engine) error {
		e.Reset()
		return nil
	})
}

// Pending returns the number of queued edits.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Tick drains queued edits and then advances one generation when cfg asks for
// it. Edit failures do not stop later edits or the step; the first one is
// returned.
func (s *Session) Tick(cfg TickConfig) (stepped bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	edits := s.pending
	s.pending = nil
	for i, edit := range edits {
		if editErr := edit(s.engine); editErr != nil && err == nil {
			err = errors.Wrapf(editErr, "[Session.Tick] edit %d of %d", i+1, len(edits))
		}
	}
	if len(edits) > 0 {
		s.history.Forget()
		s.history.Record(FingerprintOf(s.engine))
	}

	if !cfg.Advance {
		return false, err
	}
	s.engine.Step()
	s.generation++
	s.history.Record(FingerprintOf(s.engine))
	return true, err
}

// Snapshot copies the current generation out under the lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Generation: s.generation,
		Population: s.engine.Population(),
		Period:     s.history.Period(),
		Cells:      LiveCells(s.engine),
	}
}

// View runs fn with the engine locked. fn must not retain the engine.
func (s *Session) View(fn func(Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.engine)
}
