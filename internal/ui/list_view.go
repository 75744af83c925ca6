package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// listView is what the book and page columns have in common.
type listView struct {
	title     string
	rows      []string
	cursor    int
	focused   bool
	prompting bool
	empty     string
	emptyHint string
	footer    string
}

func (v listView) render(area Area) (string, error) {
	if area.Width < 4 || area.Height < 3 {
		return "", errAreaTooSmall(area)
	}
	innerW, innerH := area.Width-2, area.Height-2

	lines := []string{panelHeaderStyle(v.focused).Render(ansiTruncate(v.title, innerW))}
	avail := innerH - 1
	if v.footer != "" {
		avail--
	}

	if len(v.rows) == 0 {
		lines = append(lines, renderEmptyState(v.empty, v.emptyHint))
	} else {
		start, end := visibleWindow(len(v.rows), v.cursor, avail)
		for i := start; i < end; i++ {
			lines = append(lines, renderRow(v.rows[i], innerW, i == v.cursor, v.focused))
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if v.footer != "" {
		if pad := innerH - 1 - lipgloss.Height(body); pad > 0 {
			body += strings.Repeat("\n", pad)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, body, v.footer)
	}

	return panelStyle(v.focused, v.prompting, innerW, innerH).
		MaxHeight(area.Height).
		Render(body), nil
}
