// Package action defines the closed set of actions that flow through the
// dispatch loop. Every variant is a small value type; the set is sealed by an
// unexported marker method so only this package can add variants.
package action

import (
	"fmt"
	"reflect"
	"strings"
)

// Action is one event travelling through the action bus.
type Action interface {
	isAction()
}

// -- Lifecycle --

type Tick struct{}
type Render struct{}

// Resize reports new terminal dimensions.
type Resize struct {
	Width  int
	Height int
}

type Suspend struct{}
type Resume struct{}
type Quit struct{}
type Refresh struct{}

// Error carries a message for the status line.
type Error struct {
	Message string
}

// StatusLine replaces the key-hint line.
type StatusLine struct {
	Text string
}

type Help struct{}

// -- Focus --

type FocusNext struct{}
type FocusPrev struct{}

// -- Data loading --

type LoadBooks struct{}

// LoadPagesFor replaces the page list with the pages of Book.
type LoadPagesFor struct {
	Book string
}

// RefreshPagesFor reconciles freshly fetched pages of Book into the page list.
type RefreshPagesFor struct {
	Book string
}

// LoadContentFor fetches the body of one page.
type LoadContentFor struct {
	PageID uint32
}

// -- Selection --

type SelectNextBook struct{}
type SelectPrevBook struct{}
type SelectNextPage struct{}
type SelectPrevPage struct{}
type ScrollContentDown struct{}
type ScrollContentUp struct{}

// -- Mutation requests --

type AddPageToBook struct{}
type EditPage struct{}
type DeletePage struct{}
type EditBook struct{}
type DeleteBook struct{}
type RenameBook struct{}

// RenameBookTo renames Old to New without leaving the managed terminal.
type RenameBookTo struct {
	Old string
	New string
}

// RunExternalCommand hands the terminal to Program until it exits.
type RunExternalCommand struct {
	Program string
	Args    []string
}

func (Tick) isAction() {}
func (Render) isAction() {}
func (Resize) isAction() {}
func (Suspend) isAction() {}
func (Resume) isAction() {}
func (Quit) isAction() {}
func (Refresh) isAction() {}
func (Error) isAction() {}
func (StatusLine) isAction() {}
func (Help) isAction() {}
func (FocusNext) isAction() {}
func (FocusPrev) isAction() {}
func (LoadBooks) isAction() {}
func (LoadPagesFor) isAction() {}
func (RefreshPagesFor) isAction() {}
func (LoadContentFor) isAction() {}
func (SelectNextBook) isAction() {}
func (SelectPrevBook) isAction() {}
func (SelectNextPage) isAction() {}
func (SelectPrevPage) isAction() {}
func (ScrollContentDown) isAction() {}
func (ScrollContentUp) isAction() {}
func (AddPageToBook) isAction() {}
func (EditPage) isAction() {}
func (DeletePage) isAction() {}
func (EditBook) isAction() {}
func (DeleteBook) isAction() {}
func (RenameBook) isAction() {}
func (RenameBookTo) isAction() {}
func (RunExternalCommand) isAction() {}

// Equal reports structural equality. RunExternalCommand holds a slice, so
// plain == would panic on it.
func Equal(a, b Action) bool {
	return reflect.DeepEqual(a, b)
}

// Name returns the variant name, e.g. "SelectNextBook".
func Name(a Action) string {
	if a == nil {
		return ""
	}
	return reflect.TypeOf(a).Name()
}

// String renders an action for logs.
func String(a Action) string {
	switch v := a.(type) {
	case nil:
		return "<nil>"
	case Resize:
		return fmt.Sprintf("Resize(%d, %d)", v.Width, v.Height)
	case Error:
		return fmt.Sprintf("Error(%q)", v.Message)
	case LoadPagesFor:
		return fmt.Sprintf("LoadPagesFor(%q)", v.Book)
	case RefreshPagesFor:
		return fmt.Sprintf("RefreshPagesFor(%q)", v.Book)
	case LoadContentFor:
		return fmt.Sprintf("LoadContentFor(%d)", v.PageID)
	case RenameBookTo:
		return fmt.Sprintf("RenameBookTo(%q, %q)", v.Old, v.New)
	case RunExternalCommand:
		return fmt.Sprintf("RunExternalCommand(%s %s)", v.Program, strings.Join(v.Args, " "))
	default:
		return Name(a)
	}
}

// bindable lists the parameterless actions that can be bound to keys.
var bindable = map[string]Action{
	"Quit":              Quit{},
	"Suspend":           Suspend{},
	"Refresh":           Refresh{},
	"Help":              Help{},
	"FocusNext":         FocusNext{},
	"FocusPrev":         FocusPrev{},
	"LoadBooks":         LoadBooks{},
	"SelectNextBook":    SelectNextBook{},
	"SelectPrevBook":    SelectPrevBook{},
	"SelectNextPage":    SelectNextPage{},
	"SelectPrevPage":    SelectPrevPage{},
	"ScrollContentDown": ScrollContentDown{},
	"ScrollContentUp":   ScrollContentUp{},
	"AddPageToBook":     AddPageToBook{},
	"EditPage":          EditPage{},
	"DeletePage":        DeletePage{},
	"EditBook":          EditBook{},
	"DeleteBook":        DeleteBook{},
	"RenameBook":        RenameBook{},
}

// Parse maps a keybinding-config action name to its variant.
func Parse(name string) (Action, error) {
	a, ok := bindable[strings.TrimSpace(name)]
	if !ok {
		return nil, fmt.Errorf("unknown or non-bindable action %q", name)
	}
	return a, nil
}

// Label is the short help text shown next to a key hint.
func Label(a Action) string {
	switch a.(type) {
	case Quit:
		return "quit"
	case Help:
		return "help"
	case Suspend:
		return "suspend"
	case FocusNext:
		return "next pane"
	case FocusPrev:
		return "prev pane"
	case LoadBooks:
		return "reload"
	case SelectNextBook, SelectNextPage, ScrollContentDown:
		return "down"
	case SelectPrevBook, SelectPrevPage, ScrollContentUp:
		return "up"
	case AddPageToBook:
		return "add"
	case EditPage, EditBook:
		return "edit"
	case RenameBook:
		return "rename"
	case DeletePage, DeleteBook:
		return "delete"
	default:
		return ""
	}
}

// Order sorts key hints; lower comes first.
func Order(a Action) int {
	switch a.(type) {
	case SelectNextBook, SelectNextPage, ScrollContentDown:
		return 10
	case SelectPrevBook, SelectPrevPage, ScrollContentUp:
		return 20
	case FocusNext, FocusPrev:
		return 30
	case AddPageToBook:
		return 40
	case EditPage, EditBook, RenameBook:
		return 50
	case DeletePage, DeleteBook:
		return 60
	case LoadBooks:
		return 70
	case Quit, Help:
		return 80
	default:
		return 100
	}
}
