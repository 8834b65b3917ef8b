package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a semantic input derived from a key press. Terminals deliver key
// repeats rather than key-up events, so "held" directions are reconstructed
// by the model from repeated Left/Right actions.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionConfirm
	ActionPause
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings:
// A/Left and D/Right move, Enter starts/restarts, P pauses, Esc/Q/Ctrl+C quit.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return ActionQuit
	case "a", "left":
		return ActionLeft
	case "d", "right":
		return ActionRight
	case "enter":
		return ActionConfirm
	case "p":
		return ActionPause
	}
	return ActionNone
}
