package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/shhac/dnotetea/internal/keymap"
	"github.com/shhac/dnotetea/internal/state"
)

// Hints renders the key-hint line for a mode from the active keymap.
type Hints struct {
	km   *keymap.Keymap
	help help.Model
}

// NewHints returns a hint renderer over km.
func NewHints(km *keymap.Keymap) *Hints {
	h := help.New()
	h.ShortSeparator = "  "
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	h.Styles.ShortSeparator = lipgloss.NewStyle()
	return &Hints{km: km, help: h}
}

// SetWidth caps the rendered line; wider hint sets end in an ellipsis.
func (h *Hints) SetWidth(width int) {
	h.help.Width = width
}

// For returns the hint line for mode.
func (h *Hints) For(mode state.Focus) string {
	return h.help.ShortHelpView(h.km.Help(mode))
}
