package input

import (
	"testing"
	"time"
)

func TestHeldWithinWindow(t *testing.T) {
	s := NewState()
	now := time.Now()

	s.Press(ActionThrust, now)
	if !s.Held(ActionThrust, now.Add(HoldWindow/2)) {
		t.Error("Expected action held inside the window")
	}
	if s.Held(ActionThrust, now.Add(HoldWindow+time.Millisecond)) {
		t.Error("Expected action released after the window")
	}
}

func TestPressRefreshesWindow(t *testing.T) {
	s := NewState()
	now := time.Now()

	s.Press(ActionLeft, now)
	s.Press(ActionLeft, now.Add(HoldWindow/2))
	if !s.Held(ActionLeft, now.Add(HoldWindow)) {
		t.Error("Expected refreshed press to still be held")
	}
}

func TestClear(t *testing.T) {
	s := NewState()
	now := time.Now()

	s.Press(ActionRight, now)
	s.Clear()
	if s.Held(ActionRight, now) {
		t.Error("Expected no actions held after Clear")
	}
}
