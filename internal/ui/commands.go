package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickCmd schedules the next tickMsg.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// frameCmd schedules the next frameMsg.
func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
