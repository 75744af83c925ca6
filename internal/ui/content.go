package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shhac/dnotetea/internal/action"
	"github.com/shhac/dnotetea/internal/state"
)

// ContentPane is the right column: the body of the selected page.
type ContentPane struct {
	svc      DnoteService
	hints    *Hints
	markdown *MarkdownRenderer
	viewport viewport.Model
	ready    bool

	// The viewport holds rendered text for (renderedFor, renderedWidth)
	// while rendered is set.
	rendered      bool
	renderedFor   uint32
	renderedWidth int
}

func NewContentPane(svc DnoteService, hints *Hints, md *MarkdownRenderer) *ContentPane {
	return &ContentPane{svc: svc, hints: hints, markdown: md}
}

func (p *ContentPane) Init(area Area) (action.Action, error) {
	p.resize(area)
	return nil, nil
}

func (p *ContentPane) HandleEvent(tea.KeyMsg, *state.State) (action.Action, bool) {
	return nil, false
}

func (p *ContentPane) Update(ctx *Context, a action.Action) (action.Action, error) {
	s := ctx.State
	switch a := a.(type) {
	case action.Tick:
		if ctx.Focus == state.FocusContent {
			s.StatusLine = p.hints.For(state.FocusContent)
		}

	case action.LoadContentFor:
		pg, ok := s.SelectedPage()
		if !ok || pg.ID != a.PageID {
			return nil, nil
		}
		content, err := p.svc.GetContent(ctx, a.PageID)
		if err != nil {
			return nil, fmt.Errorf("load page %d: %w", a.PageID, err)
		}
		s.Content = &content
		p.rendered = false
		if p.ready {
			p.viewport.GotoTop()
		}

	case action.FocusPrev:
		if ctx.Focus == state.FocusContent {
			s.Mode = state.FocusPage
		}

	case action.ScrollContentDown:
		if p.ready {
			p.viewport.SetYOffset(p.viewport.YOffset + 1)
		}

	case action.ScrollContentUp:
		if p.ready {
			p.viewport.SetYOffset(p.viewport.YOffset - 1)
		}
	}
	return nil, nil
}

func (p *ContentPane) resize(area Area) {
	// One column is kept for the scrollbar.
	w, h := max(1, area.Width-3), max(1, area.Height-3)
	if !p.ready {
		p.viewport = viewport.New(w, h)
		p.ready = true
		return
	}
	p.viewport.Width = w
	p.viewport.Height = h
}

func (p *ContentPane) Draw(area Area, s *state.State) (string, error) {
	if area.Width < 4 || area.Height < 4 {
		return "", errAreaTooSmall(area)
	}
	p.resize(area)
	focused := s.Mode == state.FocusContent
	innerW, innerH := area.Width-2, area.Height-2

	title := "Content"
	pg, hasPage := s.SelectedPage()
	if hasPage {
		title = fmt.Sprintf("Page %d", pg.ID)
	}
	header := panelHeaderStyle(focused).Render(ansiTruncate(title, innerW))

	var body string
	switch {
	case s.Content == nil:
		hint := "select a page"
		if hasPage {
			hint = ""
		}
		body = renderEmptyState("Nothing to show", hint)
	case strings.TrimSpace(s.Content.Text) == "":
		body = renderEmptyState("Empty page", "e to edit")
	default:
		if !p.rendered || p.renderedFor != pg.ID || p.renderedWidth != innerW {
			p.viewport.SetContent(p.markdown.Render(s.Content.Text, p.viewport.Width))
			p.rendered = true
			p.renderedFor = pg.ID
			p.renderedWidth = innerW
		}
		body = p.viewport.View()
		if bar := renderScrollbar(p.viewport); bar != "" {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, bar)
		}
	}

	out := lipgloss.JoinVertical(lipgloss.Left, header, body)
	return panelStyle(focused, false, innerW, innerH).
		MaxHeight(area.Height).
		Render(out), nil
}
