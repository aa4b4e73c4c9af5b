// Package tui provides the Bubble Tea host for the runner.
// It owns the terminal loop, maps keys to timestamped presses, and records
// finished runs in the journal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per host frame. It carries the wall-clock time of the
// frame so the model can feed real elapsed time to the game.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
