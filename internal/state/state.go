// Package state holds what the panes share: the focused pane, the loaded
// books and pages, the open page content and the status line.
package state

import (
	"fmt"
	"strings"

	"github.com/shhac/dnotetea/internal/dnote"
)

// Focus identifies the pane receiving input.
type Focus int

const (
	FocusBook Focus = iota
	FocusPage
	FocusContent
)

var focusNames = [...]string{"book", "page", "content"}

func (f Focus) String() string {
	if f < FocusBook || f > FocusContent {
		return fmt.Sprintf("Focus(%d)", int(f))
	}
	return focusNames[f]
}

// Next returns the focus one pane to the right, stopping at Content.
func (f Focus) Next() Focus {
	if f >= FocusContent {
		return FocusContent
	}
	return f + 1
}

// Prev returns the focus one pane to the left, stopping at Book.
func (f Focus) Prev() Focus {
	if f <= FocusBook {
		return FocusBook
	}
	return f - 1
}

// ParseFocus maps a mode name from the config file to a Focus.
func ParseFocus(s string) (Focus, error) {
	for i, name := range focusNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Focus(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Notice is a transient message that expires after a number of ticks.
type Notice struct {
	Text  string
	Error bool
	ttl   int
}

// DefaultNoticeTicks is how long an error stays on screen.
const DefaultNoticeTicks = 20

// State is owned by the dispatch loop and lent to one pane at a time.
type State struct {
	Mode       Focus
	Books      *List[dnote.Book, string]
	Pages      *List[dnote.Page, uint32]
	Content    *dnote.PageContent
	StatusLine string

	notice *Notice
}

// New returns an empty state focused on the book pane.
func New() *State {
	return &State{
		Mode:  FocusBook,
		Books: NewList[dnote.Book, string](),
		Pages: NewList[dnote.Page, uint32](),
	}
}

// SelectedBook returns the book under the cursor.
func (s *State) SelectedBook() (dnote.Book, bool) { return s.Books.Selected() }

// SelectedPage returns the page under the cursor.
func (s *State) SelectedPage() (dnote.Page, bool) { return s.Pages.Selected() }

// ClearPages empties the page list and drops any open content.
func (s *State) ClearPages() {
	s.Pages.Set(nil)
	s.Content = nil
}

// Notify shows text in place of the status line for ticks ticks.
func (s *State) Notify(text string, ticks int, isErr bool) {
	if ticks <= 0 {
		ticks = DefaultNoticeTicks
	}
	s.notice = &Notice{Text: text, Error: isErr, ttl: ticks}
}

// Notice returns the active notice, if any.
func (s *State) Notice() (Notice, bool) {
	if s.notice == nil {
		return Notice{}, false
	}
	return *s.notice, true
}

// AgeNotice counts down the active notice by one tick.
func (s *State) AgeNotice() {
	if s.notice == nil {
		return
	}
	s.notice.ttl--
	if s.notice.ttl <= 0 {
		s.notice = nil
	}
}

// Line returns the text for the bottom line: the notice while it lasts,
// the key hints otherwise.
func (s *State) Line() string {
	if s.notice != nil {
		return s.notice.Text
	}
	return s.StatusLine
}
