package ui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shhac/dnotetea/internal/action"
	"github.com/shhac/dnotetea/internal/state"
)

// spyPane records every action it sees and optionally reacts through fn.
type spyPane struct {
	name  string
	log   *[]string
	seen  []action.Action
	focus []state.Focus
	fn    func(ctx *Context, a action.Action) (action.Action, error)
}

func (p *spyPane) Init(Area) (action.Action, error) { return nil, nil }

func (p *spyPane) HandleEvent(tea.KeyMsg, *state.State) (action.Action, bool) { return nil, false }

func (p *spyPane) Update(ctx *Context, a action.Action) (action.Action, error) {
	p.seen = append(p.seen, a)
	p.focus = append(p.focus, ctx.Focus)
	if p.log != nil {
		*p.log = append(*p.log, p.name+":"+action.Name(a))
	}
	if p.fn != nil {
		return p.fn(ctx, a)
	}
	return nil, nil
}

func (p *spyPane) Draw(Area, *state.State) (string, error) { return p.name, nil }

func (p *spyPane) count(pred func(action.Action) bool) int {
	n := 0
	for _, a := range p.seen {
		if pred(a) {
			n++
		}
	}
	return n
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDrain_OrderAcrossPanesAndFollowUps(t *testing.T) {
	var log []string
	first := &spyPane{name: "first", log: &log, fn: func(ctx *Context, a action.Action) (action.Action, error) {
		if _, ok := a.(action.Refresh); ok {
			ctx.Emit(action.Render{})
			return action.Resume{}, nil
		}
		return nil, nil
	}}
	second := &spyPane{name: "second", log: &log}

	bus := &Bus{}
	d := NewDispatcher(bus, 0, first, second)
	bus.Push(action.Refresh{})
	res := d.Drain(context.Background(), state.New(), nil)

	want := []string{
		"first:Refresh", "second:Refresh",
		"first:Render", "second:Render",
		"first:Resume", "second:Resume",
	}
	if !equalStrings(log, want) {
		t.Errorf("delivery order = %v, want %v", log, want)
	}
	if res.Processed != 3 || res.Paused || res.Dropped != 0 {
		t.Errorf("result = %+v", res)
	}
	if bus.Len() != 0 {
		t.Errorf("queue not drained: %v", bus.Pending())
	}
}

func TestDrain_HookRunsFirstAndCanPause(t *testing.T) {
	var log []string
	p := &spyPane{name: "pane", log: &log}
	bus := &Bus{}
	d := NewDispatcher(bus, 0, p)
	bus.Push(action.Tick{})
	bus.Push(action.RunExternalCommand{Program: "dnote", Args: []string{"edit", "1"}})
	bus.Push(action.LoadBooks{})

	hook := func(a action.Action) bool {
		log = append(log, "hook:"+action.Name(a))
		_, isExternal := a.(action.RunExternalCommand)
		return isExternal
	}
	res := d.Drain(context.Background(), state.New(), hook)

	want := []string{"hook:Tick", "pane:Tick", "hook:RunExternalCommand", "pane:RunExternalCommand"}
	if !equalStrings(log, want) {
		t.Errorf("order = %v, want %v", log, want)
	}
	if !res.Paused {
		t.Error("drain should report the pause")
	}
	pending := bus.Pending()
	if len(pending) != 1 || !action.Equal(pending[0], action.LoadBooks{}) {
		t.Errorf("pending = %v, want [LoadBooks]", pending)
	}

	// Resuming picks up exactly where it stopped.
	log = nil
	d.Drain(context.Background(), state.New(), hook)
	if !equalStrings(log, []string{"hook:LoadBooks", "pane:LoadBooks"}) {
		t.Errorf("after resume = %v", log)
	}
}

func TestDrain_PaneErrorBecomesErrorAction(t *testing.T) {
	failing := &spyPane{name: "failing", fn: func(_ *Context, a action.Action) (action.Action, error) {
		if _, ok := a.(action.LoadBooks); ok {
			return action.Quit{}, errors.New("boom")
		}
		return nil, nil
	}}
	after := &spyPane{name: "after"}
	bus := &Bus{}
	d := NewDispatcher(bus, 0, failing, after)
	bus.Push(action.LoadBooks{})
	d.Drain(context.Background(), state.New(), nil)

	if n := after.count(func(a action.Action) bool { _, ok := a.(action.LoadBooks); return ok }); n != 1 {
		t.Errorf("later pane saw LoadBooks %d times, want 1", n)
	}
	if n := after.count(func(a action.Action) bool { return action.Equal(a, action.Error{Message: "boom"}) }); n != 1 {
		t.Errorf("Error(boom) delivered %d times, want 1; saw %v", n, after.seen)
	}
	if n := after.count(func(a action.Action) bool { _, ok := a.(action.Quit); return ok }); n != 0 {
		t.Error("follow-up of a failed update must be discarded")
	}
}

func TestDrain_LimitStopsRunawayLoop(t *testing.T) {
	loop := &spyPane{name: "loop", fn: func(_ *Context, a action.Action) (action.Action, error) {
		return action.Refresh{}, nil
	}}
	bus := &Bus{}
	d := NewDispatcher(bus, 10, loop)
	s := state.New()
	bus.Push(action.Refresh{})
	res := d.Drain(context.Background(), s, nil)

	if res.Processed != 10 {
		t.Errorf("Processed = %d, want 10", res.Processed)
	}
	if res.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", res.Dropped)
	}
	if bus.Len() != 0 {
		t.Errorf("queue should be discarded, has %d", bus.Len())
	}
	n, ok := s.Notice()
	if !ok || !n.Error {
		t.Fatalf("expected an error notice, got %+v %v", n, ok)
	}
	if want := fmt.Sprintf("dispatch limit of %d actions reached", 10); len(n.Text) < len(want) || n.Text[:len(want)] != want {
		t.Errorf("notice = %q", n.Text)
	}
}

func TestDrain_FocusSnapshotPerAction(t *testing.T) {
	mover := &spyPane{name: "mover", fn: func(ctx *Context, a action.Action) (action.Action, error) {
		if _, ok := a.(action.FocusNext); ok {
			ctx.State.Mode = ctx.State.Mode.Next()
		}
		return nil, nil
	}}
	watcher := &spyPane{name: "watcher"}
	bus := &Bus{}
	d := NewDispatcher(bus, 0, mover, watcher)
	s := state.New()
	bus.Push(action.FocusNext{})
	bus.Push(action.Tick{})
	d.Drain(context.Background(), s, nil)

	if watcher.focus[0] != state.FocusBook {
		t.Errorf("watcher saw %v for FocusNext, want the focus at dequeue time", watcher.focus[0])
	}
	if watcher.focus[1] != state.FocusPage {
		t.Errorf("watcher saw %v for the next action, want page", watcher.focus[1])
	}
	if s.Mode != state.FocusPage {
		t.Errorf("Mode = %v, want one step only", s.Mode)
	}
}

func TestBus_FIFO(t *testing.T) {
	b := &Bus{}
	b.Push(action.Tick{})
	b.Push(action.Render{})
	if a, _ := b.Pop(); !action.Equal(a, action.Tick{}) {
		t.Errorf("first pop = %v, want Tick", a)
	}
	if a, _ := b.Pop(); !action.Equal(a, action.Render{}) {
		t.Errorf("second pop = %v, want Render", a)
	}
	if _, ok := b.Pop(); ok {
		t.Error("pop on empty bus should report false")
	}
}
