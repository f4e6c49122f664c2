package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gomba/internal/core"
)

// DefaultHoldTicks is how long a movement key counts as held after its
// last key event. Terminals report key repeats but never key releases.
const DefaultHoldTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions.
// Movement actions stay active for a number of ticks after each key event;
// all other actions fire once per press.
type KeyMapper struct {
	holdTicks int
	held      map[core.Action]int // remaining ticks per held action
}

// NewKeyMapper creates a key mapper. A non-positive holdTicks uses
// DefaultHoldTicks.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyMapper{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case " ", "w", "up":
		return core.ActionJump, false
	case "enter", "s":
		return core.ActionConfirm, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "b", "esc":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// Press records a key event. Held actions are refreshed, the rest are set
// on frame directly. Returns true if the key was a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionLeft:
		delete(km.held, core.ActionRight)
		km.held[action] = km.holdTicks
	case core.ActionRight:
		delete(km.held, core.ActionLeft)
		km.held[action] = km.holdTicks
	case core.ActionJump:
		km.held[action] = km.holdTicks
	default:
		frame.Set(action)
	}
	return isQuit
}

// Fill sets every held action on frame and counts down its hold.
// Call once per simulation tick.
func (km *KeyMapper) Fill(frame *core.InputFrame) {
	for action, remaining := range km.held {
		frame.Set(action)
		if remaining <= 1 {
			delete(km.held, action)
		} else {
			km.held[action] = remaining - 1
		}
	}
}

// Release drops all held actions.
func (km *KeyMapper) Release() {
	clear(km.held)
}

// Holding reports whether action is currently held.
func (km *KeyMapper) Holding(action core.Action) bool {
	_, ok := km.held[action]
	return ok
}
