// Package tui provides the Bubble Tea front end for Bunny Catch.
// It handles the terminal UI loop, input mapping, and scene rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bunny-catch/internal/games/catch"
)

// maxFrameDelta bounds the time one tick may report after a stall.
const maxFrameDelta = catch.MaxTickSpan

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the wall time between two ticks. The first tick, a clock
// going backwards, or a zero prev all count as one nominal frame.
func frameDelta(prev, now time.Time, tickRate int) time.Duration {
	nominal := time.Second / time.Duration(tickRate)
	if prev.IsZero() {
		return nominal
	}
	dt := now.Sub(prev)
	if dt <= 0 {
		return nominal
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}
