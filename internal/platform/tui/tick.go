// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and session flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation frame. It carries the
// frame clock timestamp that gates the obstacle spawner.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends the next tick
// message at the specified rate. One frame is pending at a time: the
// next tick is only requested after the current frame's work is done.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
