// Package tui runs Flappy Claude in a terminal with Bubble Tea: the frame
// clock, key mapping, lipgloss rendering, menus and the Wish SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per simulation frame.
type TickMsg time.Time

// tickCmd schedules the next frame after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = time.Second / 30
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
