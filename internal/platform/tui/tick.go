// Package tui provides the Bubble Tea front end: the play screen, the goal
// picker, the scoreboard and the SSH server that hosts them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status line stays on screen.
const statusTTL = 3 * time.Second

// statusExpiredMsg clears the status line if it is still the one identified by id.
type statusExpiredMsg struct {
	id int
}

// expireStatusCmd returns a command that fires once the status line should fade.
func expireStatusCmd(id int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{id: id}
	})
}
