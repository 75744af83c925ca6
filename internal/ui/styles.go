package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane border colors
var (
	focusedBorderColor   = lipgloss.Color("62")  // bright purple/blue
	unfocusedBorderColor = lipgloss.Color("240") // dim gray
	promptBorderColor    = lipgloss.Color("42")  // green
)

// Status bar
var (
	statusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252"))
	statusBarAccentStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("62")).
		Bold(true)
	statusBarErrorStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("196")).
		Bold(true)
	statusBarPendingStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("214")).
		Bold(true)
)

// List rows
var (
	rowStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	rowSelectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("62")).
		Bold(true)
	rowInactiveSelectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238"))
)

// Scrollbar
var (
	scrollbarThumbStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	scrollbarTrackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// Pane style builders
func panelStyle(focused bool, prompting bool, width, height int) lipgloss.Style {
	borderColor := unfocusedBorderColor
	if focused {
		borderColor = focusedBorderColor
		if prompting {
			borderColor = promptBorderColor
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width).
		Height(height)
}

func panelHeaderStyle(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
}

// renderEmptyState renders a consistent empty state message with optional action hint.
func renderEmptyState(message, hint string) string {
	msg := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Padding(1, 1).
		Render("· " + message)
	if hint == "" {
		return msg
	}
	h := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		Padding(0, 1).
		Render(hint)
	return lipgloss.JoinVertical(lipgloss.Left, msg, h)
}

// renderRow renders one list row truncated to width.
func renderRow(text string, width int, selected, focused bool) string {
	line := ansi.Truncate(text, width, "…")
	if pad := width - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	switch {
	case selected && focused:
		return rowSelectedStyle.Render(line)
	case selected:
		return rowInactiveSelectedStyle.Render(line)
	default:
		return rowStyle.Render(line)
	}
}

// formatUserError converts raw error strings into user-friendly messages.
func formatUserError(err string) string {
	lower := strings.ToLower(err)
	switch {
	case strings.Contains(lower, "dnote cli not found"):
		return "dnote CLI not found. Install from https://www.getdnote.com"
	case strings.Contains(lower, "executable file not found"):
		return "dnote executable not found in PATH"
	case strings.Contains(lower, "demo mode"):
		return "Demo mode: notes are read-only"
	case strings.Contains(lower, "not valid utf-8"):
		return "dnote printed non-text output"
	default:
		return err
	}
}

// visibleWindow returns the [start, end) slice of n rows to show in height
// rows so that cursor stays on screen.
func visibleWindow(n, cursor, height int) (start, end int) {
	if height <= 0 || n == 0 {
		return 0, 0
	}
	if n <= height {
		return 0, n
	}
	if cursor < 0 {
		cursor = 0
	}
	start = cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > n {
		start = n - height
	}
	return start, start + height
}

func ansiTruncate(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}
