package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shhac/dnotetea/internal/action"
	"github.com/shhac/dnotetea/internal/dnote"
	"github.com/shhac/dnotetea/internal/state"
)

// BooksPane is the left column. It owns book loading, book selection and the
// book-level mutations, and it is the first pane every action reaches.
type BooksPane struct {
	svc    DnoteService
	hints  *Hints
	prompt renamePrompt

	// reselect is the book key to put the cursor on after the next reload.
	reselect string
}

func NewBooksPane(svc DnoteService, hints *Hints) *BooksPane {
	return &BooksPane{svc: svc, hints: hints, prompt: newRenamePrompt()}
}

func (p *BooksPane) Init(Area) (action.Action, error) {
	return action.LoadBooks{}, nil
}

// Renaming reports whether the rename prompt is open.
func (p *BooksPane) Renaming() bool { return p.prompt.active }

func (p *BooksPane) HandleEvent(msg tea.KeyMsg, _ *state.State) (action.Action, bool) {
	if !p.prompt.active || msg.String() == "ctrl+c" {
		return nil, false
	}
	return p.prompt.HandleKey(msg), true
}

func (p *BooksPane) Update(ctx *Context, a action.Action) (action.Action, error) {
	s := ctx.State
	switch a := a.(type) {
	case action.Tick:
		if ctx.Focus == state.FocusBook {
			if p.prompt.active {
				s.StatusLine = "enter rename  esc cancel"
			} else {
				s.StatusLine = p.hints.For(state.FocusBook)
			}
		}

	case action.LoadBooks:
		return p.loadBooks(ctx)

	case action.SelectNextBook:
		s.Books.Next()
		return pagesForSelection(s), nil

	case action.SelectPrevBook:
		s.Books.Previous()
		return pagesForSelection(s), nil

	case action.FocusNext:
		if ctx.Focus != state.FocusBook {
			return nil, nil
		}
		if _, ok := s.SelectedBook(); ok {
			s.Mode = state.FocusPage
			return action.SelectNextPage{}, nil
		}

	case action.AddPageToBook:
		b, ok := s.SelectedBook()
		if !ok {
			return nil, errNoBook
		}
		if err := runCommand(ctx, p.svc, dnote.AddPage(b.Name)); err != nil {
			return nil, err
		}
		return action.RefreshPagesFor{Book: b.Name}, nil

	case action.EditBook:
		b, ok := s.SelectedBook()
		if !ok {
			return nil, errNoBook
		}
		p.reselect = b.Key()
		if err := runCommand(ctx, p.svc, dnote.EditBook(b.Name)); err != nil {
			return nil, err
		}
		return action.LoadBooks{}, nil

	case action.DeleteBook:
		b, ok := s.SelectedBook()
		if !ok {
			return nil, errNoBook
		}
		if err := runCommand(ctx, p.svc, dnote.RemoveBook(b.Name)); err != nil {
			return nil, err
		}
		return action.LoadBooks{}, nil

	case action.RenameBook:
		b, ok := s.SelectedBook()
		if !ok {
			return nil, errNoBook
		}
		p.prompt.Open(b.Name)

	case action.RenameBookTo:
		if err := runCommand(ctx, p.svc, dnote.RenameBook(a.Old, a.New)); err != nil {
			return nil, fmt.Errorf("rename %q: %w", a.Old, err)
		}
		p.reselect = dnote.Book{Name: a.New}.Key()
		return action.LoadBooks{}, nil
	}
	return nil, nil
}

// loadBooks replaces the book list, keeping the cursor on the same book
// where possible, and reloads that book's pages.
func (p *BooksPane) loadBooks(ctx *Context) (action.Action, error) {
	s := ctx.State
	books, err := p.svc.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load books: %w", err)
	}
	s.Books.Replace(books)
	if p.reselect != "" {
		s.Books.SelectByKey(p.reselect)
		p.reselect = ""
	}
	if _, ok := s.SelectedBook(); !ok {
		s.ClearPages()
		s.Mode = state.FocusBook
		return nil, nil
	}
	return pagesForSelection(s), nil
}

// pagesForSelection is the LoadPagesFor for the selected book, if any.
func pagesForSelection(s *state.State) action.Action {
	b, ok := s.SelectedBook()
	if !ok {
		return nil
	}
	return action.LoadPagesFor{Book: b.Name}
}

func (p *BooksPane) Draw(area Area, s *state.State) (string, error) {
	items := s.Books.Items()
	rows := make([]string, len(items))
	for i, b := range items {
		rows[i] = " " + b.Name
	}
	v := listView{
		title:     fmt.Sprintf("Books (%d)", len(items)),
		rows:      rows,
		cursor:    s.Books.Cursor(),
		focused:   s.Mode == state.FocusBook,
		prompting: p.prompt.active,
		empty:     "No books",
		emptyHint: "dnote add <book> to create one",
	}
	if p.prompt.active {
		v.footer = p.prompt.View(area.Width - 2)
	}
	return v.render(area)
}
