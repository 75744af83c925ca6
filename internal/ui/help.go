package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shhac/dnotetea/internal/keymap"
	"github.com/shhac/dnotetea/internal/state"
)

// HelpOverlayModel renders a centered help overlay listing every binding.
type HelpOverlayModel struct {
	viewport viewport.Model
	km       *keymap.Keymap
	width    int
	height   int
	visible  bool
	context  state.Focus // which pane was focused when help opened
	ready    bool
	version  string
}

// NewHelpOverlayModel returns a hidden overlay. version, if set, is shown
// next to the app name in the title.
func NewHelpOverlayModel(km *keymap.Keymap, version string) HelpOverlayModel {
	return HelpOverlayModel{km: km, version: version}
}

// Show makes the overlay visible and sets the context pane.
func (m *HelpOverlayModel) Show(context state.Focus) {
	m.visible = true
	m.context = context
	m.refreshContent()
}

// Hide dismisses the overlay.
func (m *HelpOverlayModel) Hide() {
	m.visible = false
}

// Toggle shows or hides the overlay.
func (m *HelpOverlayModel) Toggle(context state.Focus) {
	if m.visible {
		m.Hide()
		return
	}
	m.Show(context)
}

// IsVisible returns whether the overlay is currently shown.
func (m HelpOverlayModel) IsVisible() bool {
	return m.visible
}

// SetSize updates the overlay dimensions and rebuilds the viewport.
func (m *HelpOverlayModel) SetSize(termWidth, termHeight int) {
	m.width = termWidth
	m.height = termHeight

	innerW, innerH := m.innerDimensions()
	if !m.ready {
		m.viewport = viewport.New(innerW, innerH)
		m.ready = true
	} else {
		m.viewport.Width = innerW
		m.viewport.Height = innerH
	}
	m.refreshContent()
}

// Scroll passes navigation keys to the viewport.
func (m *HelpOverlayModel) Scroll(msg tea.KeyMsg) {
	if m.ready {
		m.viewport, _ = m.viewport.Update(msg)
	}
}

func (m HelpOverlayModel) View() string {
	if !m.visible {
		return ""
	}

	overlayW, overlayH := m.overlayDimensions()

	var content string
	if m.ready {
		content = m.viewport.View()
	}

	title := helpTitleStyle.Render(m.title())
	footer := helpFooterStyle.Render(" ? / Esc to close ")

	innerW := max(1, overlayW-4)
	titleLine := lipgloss.PlaceHorizontal(innerW, lipgloss.Center, title)
	footerLine := lipgloss.PlaceHorizontal(innerW, lipgloss.Center, footer)

	box := lipgloss.JoinVertical(lipgloss.Left, titleLine, "", content, "", footerLine)

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Width(overlayW - 2).
		Height(overlayH - 2)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlayStyle.Render(box))
}

func (m HelpOverlayModel) title() string {
	name := "dnotetea"
	if m.version != "" {
		name += " " + m.version
	}
	return " " + name + " · Keyboard Shortcuts "
}

// overlayDimensions returns the outer dimensions of the overlay box.
func (m HelpOverlayModel) overlayDimensions() (width, height int) {
	width = int(float64(m.width) * 0.65)
	height = int(float64(m.height) * 0.75)
	if width < 50 {
		width = min(50, m.width)
	}
	if height < 15 {
		height = min(15, m.height)
	}
	return width, height
}

// innerDimensions returns the viewport dimensions inside the overlay box.
func (m HelpOverlayModel) innerDimensions() (width, height int) {
	ow, oh := m.overlayDimensions()
	// border (2), padding (2), title and footer with their blank lines (4)
	return max(1, ow-6), max(1, oh-8)
}

func (m *HelpOverlayModel) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderHelpContent())
	m.viewport.GotoTop()
}

func (m HelpOverlayModel) renderHelpContent() string {
	innerW, _ := m.innerDimensions()

	var b strings.Builder
	sections := []struct {
		title string
		mode  state.Focus
	}{
		{"Books", state.FocusBook},
		{"Pages", state.FocusPage},
		{"Content", state.FocusContent},
	}

	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		match := section.mode == m.context
		titleStr := section.title
		if match {
			titleStr += " (current)"
		}
		style, divider := helpSectionStyle, helpDividerStyle
		if match {
			style, divider = helpSectionActiveStyle, helpSectionActiveStyle
		}
		b.WriteString(style.Render(titleStr))
		b.WriteString("\n")
		b.WriteString(divider.Render(strings.Repeat("─", min(lipgloss.Width(titleStr)+2, innerW))))
		b.WriteString("\n")

		for _, kb := range m.km.Help(section.mode) {
			h := kb.Help()
			b.WriteString(helpKeyStyle.Render(padRight(h.Key, 20)) + helpDescStyle.Render(h.Desc) + "\n")
		}
	}
	return b.String()
}

func padRight(s string, width int) string {
	if lipgloss.Width(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}

// Help overlay styles
var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	helpFooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("33"))

	helpSectionActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("42"))

	helpDividerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)
