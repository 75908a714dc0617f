// Package tui runs Shadow Strike in a terminal with Bubble Tea, locally or
// over SSH, and shows the score history.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameGap caps the elapsed time fed to one tick.
const maxFrameGap = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameElapsed returns the time between two ticks. The first tick of a
// session uses the nominal interval.
func frameElapsed(prev, now time.Time, tickRate int) time.Duration {
	if prev.IsZero() {
		if tickRate <= 0 {
			tickRate = 60
		}
		return time.Second / time.Duration(tickRate)
	}
	d := now.Sub(prev)
	if d < 0 {
		return 0
	}
	return min(d, maxFrameGap)
}
