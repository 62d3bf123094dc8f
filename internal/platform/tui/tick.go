// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and session flow.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// ID identifies the tick loop that scheduled it; a model ignores ticks
// from loops it no longer owns.
type TickMsg struct {
	ID   uint64
	Time time.Time
}

var lastLoopID atomic.Uint64

// nextLoopID returns a process-wide unique tick loop id.
func nextLoopID() uint64 {
	return lastLoopID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(id uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
