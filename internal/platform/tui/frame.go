package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg carries the wall-clock time of a render frame. The model
// derives the simulation's elapsed milliseconds from consecutive frame
// times, so the game speed stays correct whatever rate the frames
// actually arrive at.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that delivers frame messages at
// the requested rate.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
