package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/shhac/dnotetea/internal/action"
	"github.com/shhac/dnotetea/internal/state"
)

// DefaultMaxActionsPerTick bounds one drain pass.
const DefaultMaxActionsPerTick = 256

// Hook sees every action before the panes do. Returning pause=true stops the
// drain after the current action; the rest of the queue is kept for the next
// call to Drain.
type Hook func(a action.Action) (pause bool)

// DrainResult summarises one Drain call.
type DrainResult struct {
	Processed int
	Paused    bool
	// Dropped is the number of actions discarded after the limit was hit.
	Dropped int
}

// Dispatcher delivers queued actions to the panes in registration order.
type Dispatcher struct {
	bus   *Bus
	panes []Pane
	limit int
}

// NewDispatcher returns a dispatcher over panes. Order matters: every action
// is handed to panes[0] first, and a pane may rely on state written by the
// panes before it in the same pass.
func NewDispatcher(bus *Bus, limit int, panes ...Pane) *Dispatcher {
	if limit <= 0 {
		limit = DefaultMaxActionsPerTick
	}
	return &Dispatcher{bus: bus, panes: panes, limit: limit}
}

// Bus returns the queue the dispatcher drains.
func (d *Dispatcher) Bus() *Bus { return d.bus }

// Panes returns the registered panes in order.
func (d *Dispatcher) Panes() []Pane { return d.panes }

// Drain processes queued actions, including the follow-ups they produce,
// until the queue is empty, the hook pauses, or the per-pass limit is hit.
func (d *Dispatcher) Drain(ctx context.Context, s *state.State, hook Hook) DrainResult {
	var res DrainResult
	for {
		if res.Processed >= d.limit && d.bus.Len() > 0 {
			res.Dropped = d.bus.Clear()
			msg := fmt.Sprintf("dispatch limit of %d actions reached, dropped %d", d.limit, res.Dropped)
			log.Printf("dispatch: %s", msg)
			s.Notify(msg, 0, true)
			return res
		}
		a, ok := d.bus.Pop()
		if !ok {
			return res
		}
		res.Processed++
		if !quiet(a) {
			log.Printf("dispatch: %s", action.String(a))
		}

		pause := hook != nil && hook(a)

		pctx := &Context{Context: ctx, State: s, Focus: s.Mode, bus: d.bus}
		for _, p := range d.panes {
			next, err := p.Update(pctx, a)
			if err != nil {
				log.Printf("dispatch: %T on %s: %v", p, action.Name(a), err)
				d.bus.Push(action.Error{Message: err.Error()})
				continue
			}
			pctx.Emit(next)
		}

		if pause {
			res.Paused = true
			return res
		}
	}
}

// quiet reports whether a fires too often to be worth logging.
func quiet(a action.Action) bool {
	switch a.(type) {
	case action.Tick, action.Render:
		return true
	}
	return false
}
