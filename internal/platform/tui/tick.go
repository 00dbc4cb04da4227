// Package tui provides the Bubble Tea front end of the arcade: the game
// loop, the launcher menu, the scoreboard and SSH sessions.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation tick of the model that scheduled it.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var lastTickID atomic.Int64

// nextTickID hands every game model its own tick chain, so a stale tick
// from a finished game never drives the next one.
func nextTickID() int64 {
	return lastTickID.Add(1)
}

// tickCmd returns a command that sends one tick after 1/tickRate seconds.
func tickCmd(id int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
