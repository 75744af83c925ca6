package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shhac/dnotetea/internal/action"
	"github.com/shhac/dnotetea/internal/dnote"
	"github.com/shhac/dnotetea/internal/state"
)

// PagesPane is the middle column: the pages of the selected book.
type PagesPane struct {
	svc   DnoteService
	hints *Hints

	// owner is the key of the book the listed pages were loaded for.
	owner string
}

func NewPagesPane(svc DnoteService, hints *Hints) *PagesPane {
	return &PagesPane{svc: svc, hints: hints}
}

func (p *PagesPane) Init(Area) (action.Action, error) { return nil, nil }

func (p *PagesPane) HandleEvent(tea.KeyMsg, *state.State) (action.Action, bool) {
	return nil, false
}

func (p *PagesPane) Update(ctx *Context, a action.Action) (action.Action, error) {
	s := ctx.State
	switch a := a.(type) {
	case action.Tick:
		if ctx.Focus == state.FocusPage {
			s.StatusLine = p.hints.For(state.FocusPage)
		}

	case action.LoadPagesFor:
		if !isSelectedBook(s, a.Book) {
			return nil, nil
		}
		key := dnote.Book{Name: a.Book}.Key()
		pages, err := p.svc.ListPages(ctx, a.Book)
		if err != nil {
			// Pages of another book must not stay under this one.
			if p.owner != key {
				s.ClearPages()
				p.owner = ""
			}
			return nil, fmt.Errorf("load pages of %q: %w", a.Book, err)
		}
		s.Pages.Set(pages)
		p.owner = key
		s.Content = nil
		if s.Mode == state.FocusContent {
			s.Mode = state.FocusPage
		}

	case action.RefreshPagesFor:
		if !isSelectedBook(s, a.Book) || p.owner != (dnote.Book{Name: a.Book}).Key() {
			return nil, nil
		}
		pages, err := p.svc.ListPages(ctx, a.Book)
		if err != nil {
			return nil, fmt.Errorf("refresh pages of %q: %w", a.Book, err)
		}
		s.Pages.Reconcile(pages, mergeSummary)

	case action.SelectNextPage:
		s.Pages.Next()
		return contentForSelection(s), nil

	case action.SelectPrevPage:
		s.Pages.Previous()
		return contentForSelection(s), nil

	case action.FocusNext:
		if ctx.Focus != state.FocusPage {
			return nil, nil
		}
		if _, ok := s.SelectedPage(); ok {
			s.Mode = state.FocusContent
		}

	case action.FocusPrev:
		if ctx.Focus != state.FocusPage {
			return nil, nil
		}
		s.Mode = state.FocusBook
		s.Content = nil
		s.Pages.Unselect()

	case action.EditPage:
		b, pg, err := selection(s)
		if err != nil {
			return nil, err
		}
		if err := runCommand(ctx, p.svc, dnote.EditPage(pg.ID)); err != nil {
			return nil, err
		}
		ctx.Emit(action.RefreshPagesFor{Book: b.Name})
		return action.LoadContentFor{PageID: pg.ID}, nil

	case action.DeletePage:
		b, pg, err := selection(s)
		if err != nil {
			return nil, err
		}
		if err := runCommand(ctx, p.svc, dnote.RemovePage(pg.ID)); err != nil {
			return nil, err
		}
		ctx.Emit(action.LoadPagesFor{Book: b.Name})
		return action.SelectNextPage{}, nil
	}
	return nil, nil
}

// mergeSummary keeps the existing entry and takes only the fresh summary.
func mergeSummary(old, fresh dnote.Page) dnote.Page {
	old.Summary = fresh.Summary
	return old
}

func isSelectedBook(s *state.State, name string) bool {
	b, ok := s.SelectedBook()
	return ok && b.Key() == (dnote.Book{Name: name}).Key()
}

func selection(s *state.State) (dnote.Book, dnote.Page, error) {
	b, ok := s.SelectedBook()
	if !ok {
		return dnote.Book{}, dnote.Page{}, errNoBook
	}
	pg, ok := s.SelectedPage()
	if !ok {
		return dnote.Book{}, dnote.Page{}, errNoPage
	}
	return b, pg, nil
}

// contentForSelection is the LoadContentFor for the selected page, if any.
func contentForSelection(s *state.State) action.Action {
	pg, ok := s.SelectedPage()
	if !ok {
		return nil
	}
	return action.LoadContentFor{PageID: pg.ID}
}

func (p *PagesPane) Draw(area Area, s *state.State) (string, error) {
	items := s.Pages.Items()
	rows := make([]string, len(items))
	for i, pg := range items {
		rows[i] = fmt.Sprintf(" (%d) %s", pg.ID, pg.Summary)
	}
	title := "Pages"
	if b, ok := s.SelectedBook(); ok {
		title = fmt.Sprintf("Pages in %s (%d)", b.Name, len(items))
	}
	v := listView{
		title:   title,
		rows:    rows,
		cursor:  s.Pages.Cursor(),
		focused: s.Mode == state.FocusPage,
		empty:   "No pages",
	}
	if _, ok := s.SelectedBook(); ok {
		v.emptyHint = "a to add one"
	} else {
		v.emptyHint = "select a book"
	}
	return v.render(area)
}
