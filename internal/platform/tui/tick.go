// Package tui provides the Bubble Tea surface for the breakout game.
// Besides the round itself it hosts the variant picker and
// the session results table.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

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

// fpsTitle formats the window title shown while playing.
func fpsTitle(fps int) string {
	return fmt.Sprintf("FPS: %d", fps)
}
