package input

import (
	"github.com/gdamore/tcell/v2"
)

// Decode maps a tcell key event to an action. Returns false for keys with
// no binding.
func Decode(ev *tcell.EventKey) (Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionLeft, true
	case tcell.KeyRight:
		return ActionRight, true
	case tcell.KeyUp:
		return ActionThrust, true
	case tcell.KeyTab:
		return ActionShowMap, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h', 'a':
			return ActionLeft, true
		case 'l', 'd':
			return ActionRight, true
		case 'k', 'w', ' ':
			return ActionThrust, true
		case 'm':
			return ActionShowMap, true
		case 'p':
			return ActionPause, true
		case 'q':
			return ActionQuit, true
		}
	}
	return 0, false
}
