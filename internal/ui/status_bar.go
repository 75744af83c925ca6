package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/shhac/dnotetea/internal/keymap"
	"github.com/shhac/dnotetea/internal/state"
)

// StatusBarModel renders the bottom status bar.
type StatusBarModel struct {
	width int
}

func NewStatusBarModel() StatusBarModel {
	return StatusBarModel{}
}

func (m *StatusBarModel) SetWidth(width int) {
	m.width = width
}

// View renders the notice or key hints on the left and the mode, the
// pending chord and the current selection on the right.
func (m StatusBarModel) View(s *state.State, pending keymap.Sequence) string {
	left := " " + s.Line()
	style := statusBarAccentStyle
	if n, ok := s.Notice(); ok {
		left = " " + formatUserError(n.Text)
		if n.Error {
			style = statusBarErrorStyle
		}
	}

	right := statusBarStyle.Render(m.contextInfo(s))
	if len(pending) > 0 {
		right = statusBarPendingStyle.Render(" "+pending.String()+"-") + right
	}
	rightWidth := lipgloss.Width(right)

	leftRendered := style.Render(truncateLine(left, m.width-rightWidth))
	padding := m.width - lipgloss.Width(leftRendered) - rightWidth
	if padding < 0 {
		padding = 0
	}

	bar := leftRendered +
		statusBarStyle.Render(strings.Repeat(" ", padding)) +
		right

	return statusBarStyle.Width(m.width).MaxWidth(m.width).Render(bar)
}

func (m StatusBarModel) contextInfo(s *state.State) string {
	info := ""
	if b, ok := s.SelectedBook(); ok {
		info = b.Name
		if p, ok := s.SelectedPage(); ok {
			info += fmt.Sprintf(" #%d", p.ID)
		}
		info += " "
	}
	return " " + strings.ToUpper(s.Mode.String()) + " " + info
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansiTruncate(s, width)
}
