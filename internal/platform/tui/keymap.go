package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-harvest/internal/core"
	"github.com/vovakirdan/tui-harvest/internal/game"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "shift+up", "K":
		return core.ActionDashUp, false
	case "shift+down", "J":
		return core.ActionDashDown, false
	case "shift+left", "H":
		return core.ActionDashLeft, false
	case "shift+right", "L":
		return core.ActionDashRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	case "f":
		return core.ActionToggleFill, false
	case "t":
		return core.ActionToggleTrail, false
	case "tab":
		return core.ActionScores, false
	}

	return core.ActionNone, false
}

// Direction maps a movement action to a board direction.
// Non-movement actions map to DirNone.
func Direction(a core.Action) game.Direction {
	switch a {
	case core.ActionUp, core.ActionDashUp:
		return game.DirUp
	case core.ActionDown, core.ActionDashDown:
		return game.DirDown
	case core.ActionLeft, core.ActionDashLeft:
		return game.DirLeft
	case core.ActionRight, core.ActionDashRight:
		return game.DirRight
	default:
		return game.DirNone
	}
}

// IsDash reports whether the action is a move-to-the-edge action.
func IsDash(a core.Action) bool {
	switch a {
	case core.ActionDashUp, core.ActionDashDown, core.ActionDashLeft, core.ActionDashRight:
		return true
	default:
		return false
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScores
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScores
	}

	return MenuActionNone
}
