package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shhac/dnotetea/internal/action"
	"github.com/shhac/dnotetea/internal/dnote"
	"github.com/shhac/dnotetea/internal/state"
)

// DnoteService defines the dnote operations used by the UI layer.
// *dnote.Client satisfies this interface.
type DnoteService interface {
	ListBooks(ctx context.Context) ([]dnote.Book, error)
	ListPages(ctx context.Context, book string) ([]dnote.Page, error)
	GetContent(ctx context.Context, id uint32) (dnote.PageContent, error)
	Mutate(ctx context.Context, cmd dnote.Command) error
	Program() string
}

// Area is the outer size of a pane, borders included.
type Area struct {
	Width  int
	Height int
}

// Context is what a pane sees while handling one action.
type Context struct {
	context.Context

	// State is shared by every pane and owned by the dispatcher.
	State *state.State
	// Focus is the mode at the moment the action was dequeued. Panes decide
	// focus transitions on this rather than State.Mode, so a transition made
	// by an earlier pane does not cascade into a later one.
	Focus state.Focus

	bus *Bus
}

// Emit queues a follow-up action behind everything already queued.
func (c *Context) Emit(a action.Action) {
	if a != nil {
		c.bus.Push(a)
	}
}

// Pane is one column of the dashboard.
type Pane interface {
	// Init is called once at startup and may return an initial action.
	Init(area Area) (action.Action, error)
	// HandleEvent sees raw keys before the keymap. Returning captured=true
	// stops the key from reaching the resolver.
	HandleEvent(msg tea.KeyMsg, s *state.State) (a action.Action, captured bool)
	// Update reacts to a dispatched action. The returned action, if any, is
	// queued after anything passed to Emit.
	Update(ctx *Context, a action.Action) (action.Action, error)
	// Draw renders the pane into area.
	Draw(area Area, s *state.State) (string, error)
}

// runCommand hands an interactive command to the terminal and runs any other
// command in place.
func runCommand(ctx *Context, svc DnoteService, cmd dnote.Command) error {
	if cmd.Interactive() {
		ctx.Emit(cmd.Delegate(svc.Program()))
		return nil
	}
	return svc.Mutate(ctx, cmd)
}
