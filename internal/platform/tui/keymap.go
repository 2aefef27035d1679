package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a platform-level input action. The simulation itself only
// knows one signal; the extra actions here are session concerns (pause,
// quit, screenshot) that never reach it.
type Action int

const (
	ActionNone Action = iota
	ActionPrimary
	ActionPause
	ActionScreenshot
	ActionQuit
)

// MapKey translates a key message to an action. Several keys alias the
// primary input so flap, start, and restart all feel natural.
func MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit
	case " ", "up", "w", "enter", "r":
		return ActionPrimary
	case "p", "esc":
		return ActionPause
	case "ctrl+s":
		return ActionScreenshot
	}
	return ActionNone
}
