package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shhac/dnotetea/internal/action"
)

// renamePrompt is the single-line input shown under the book list while a
// book is being renamed.
type renamePrompt struct {
	input  textinput.Model
	old    string
	active bool
}

func newRenamePrompt() renamePrompt {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 128
	ti.Cursor.SetMode(cursor.CursorStatic)
	return renamePrompt{input: ti}
}

// Open starts editing with the current name pre-filled.
func (p *renamePrompt) Open(old string) {
	p.old = old
	p.active = true
	p.input.SetValue(old)
	p.input.CursorEnd()
	p.input.Focus()
}

// Close abandons the edit.
func (p *renamePrompt) Close() {
	p.active = false
	p.old = ""
	p.input.Blur()
	p.input.Reset()
}

// HandleKey feeds one key into the prompt. Enter yields a rename action
// unless the name is blank or unchanged; Esc cancels.
func (p *renamePrompt) HandleKey(msg tea.KeyMsg) action.Action {
	switch msg.Type {
	case tea.KeyEnter:
		old, name := p.old, strings.TrimSpace(p.input.Value())
		p.Close()
		if name == "" || name == old {
			return nil
		}
		return action.RenameBookTo{Old: old, New: name}
	case tea.KeyEsc:
		p.Close()
		return nil
	}
	p.input, _ = p.input.Update(msg)
	return nil
}

// View renders the prompt at width.
func (p *renamePrompt) View(width int) string {
	p.input.Width = max(1, width-len(p.input.Prompt)-1)
	return p.input.View()
}
