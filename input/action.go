package input

// Action is a named control the simulation samples once per tick. The
// sector never sees raw key events.
type Action uint8

const (
	ActionLeft Action = iota
	ActionRight
	ActionThrust
	ActionShowMap
	ActionPause
	ActionQuit

	actionCount
)

// String returns the display name used by tutorial messages
func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionThrust:
		return "Up"
	case ActionShowMap:
		return "Tab"
	case ActionPause:
		return "P"
	case ActionQuit:
		return "Q"
	}
	return "?"
}
