package tui

import tea "github.com/charmbracelet/bubbletea"

type statusMsg string

// deferredMsg carries a scheduled-work token back into the update loop.
type deferredMsg struct {
	id int
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg(text) }
}
