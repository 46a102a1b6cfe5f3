package input

import (
	"sync"
	"time"
)

// HoldWindow is how long a key press counts as held. Terminals deliver no
// key-release events; auto-repeat refreshes the window, so a held key
// stays active and a tapped key decays after one window.
const HoldWindow = 250 * time.Millisecond

// State is the per-tick sampled action state. Press runs on the event
// goroutine, Held on the tick goroutine.
type State struct {
	mu        sync.Mutex
	heldUntil [actionCount]time.Time
}

// NewState creates an empty input state
func NewState() *State {
	return &State{}
}

// Press records an action press at now, extending its hold window
func (s *State) Press(a Action, now time.Time) {
	if a >= actionCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.heldUntil[a] = now.Add(HoldWindow)
}

// Held reports whether the action is active at now
func (s *State) Held(a Action, now time.Time) bool {
	if a >= actionCount {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Before(s.heldUntil[a])
}

// Clear drops all hold state, used when entering menus or on pause
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.heldUntil {
		s.heldUntil[i] = time.Time{}
	}
}
