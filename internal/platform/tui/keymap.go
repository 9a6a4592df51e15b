package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-tui/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit
	case " ", "space", "up", "w", "enter":
		return core.ActionFlap
	case "h":
		return core.ActionHistory
	}
	return core.ActionNone
}

// MapKeyToFrame records the key's action in frame. Quit and history
// toggles are handled by the model and never reach the game.
// Returns the mapped action.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) core.Action {
	action := km.MapKey(msg)
	if action == core.ActionFlap {
		frame.Set(action)
	}
	return action
}
