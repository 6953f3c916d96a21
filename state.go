package sixaxis

import "sync"

// state holds the latest known value for every control, shared between the
// single background writer and any number of query callers. Controls that
// have never reported are simply absent, which the map zero value turns into
// the rest reading (0 for analog, false for digital). Entries are only ever
// added or overwritten, never removed.
type state struct {
	mu        sync.RWMutex
	axes      map[Axis]int16
	shoulders map[Shoulder]uint16
	buttons   map[Button]bool
}

func newState() *state {
	return &state{
		axes:      make(map[Axis]int16),
		shoulders: make(map[Shoulder]uint16),
		buttons:   make(map[Button]bool),
	}
}

// apply records one decoded event, last write wins.
func (s *state) apply(ev event) {
	s.mu.Lock()
	ev.applyTo(s)
	s.mu.Unlock()
}

func (e axisEvent) applyTo(s *state)     { s.axes[e.axis] = e.value }
func (e shoulderEvent) applyTo(s *state) { s.shoulders[e.shoulder] = e.value }
func (e buttonEvent) applyTo(s *state)   { s.buttons[e.button] = e.pressed }

func (s *state) axis(a Axis) int16 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.axes[a]
}

func (s *state) shoulder(sh Shoulder) uint16 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shoulders[sh]
}

func (s *state) button(b Button) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buttons[b]
}
