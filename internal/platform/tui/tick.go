// Package tui provides the Bubble Tea integration for scene documents.
// It rasterizes resolved layouts, maps keys to menu actions, follows scene
// transitions and serves the same model over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long informational status messages stay visible.
const statusTTL = 4 * time.Second

// statusExpiredMsg clears the status line if it still shows message seq.
type statusExpiredMsg struct {
	seq int
}

// expireStatus returns a command that fires once the status should fade.
func expireStatus(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}
