package ui

import "github.com/shhac/dnotetea/internal/action"

// Bus is the FIFO queue of pending actions.
type Bus struct {
	queue []action.Action
}

// Push appends a to the queue.
func (b *Bus) Push(a action.Action) {
	b.queue = append(b.queue, a)
}

// Pop removes and returns the oldest action.
func (b *Bus) Pop() (action.Action, bool) {
	if len(b.queue) == 0 {
		return nil, false
	}
	a := b.queue[0]
	b.queue[0] = nil
	b.queue = b.queue[1:]
	return a, true
}

// Len returns the number of queued actions.
func (b *Bus) Len() int { return len(b.queue) }

// Clear drops every queued action and returns how many there were.
func (b *Bus) Clear() int {
	n := len(b.queue)
	b.queue = nil
	return n
}

// Pending returns a copy of the queue, oldest first.
func (b *Bus) Pending() []action.Action {
	return append([]action.Action(nil), b.queue...)
}
