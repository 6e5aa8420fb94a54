// Package tui provides the Bubble Tea integration for the snake game.
// It drives the engine from a tick loop, maps keys and mouse clicks to
// actions, and serves sessions over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Loop identifies the tick loop that scheduled it.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopSeq atomic.Uint64

// nextLoop returns an identifier for a new tick loop.
func nextLoop() uint64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick message after interval.
// The interval is read from the engine after every tick, so speed changes
// take effect on the next scheduling.
func tickCmd(loop uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
