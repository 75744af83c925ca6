package keymap

import (
	"github.com/shhac/dnotetea/internal/action"
	"github.com/shhac/dnotetea/internal/state"
)

// Resolver turns keypresses into actions. It remembers a pending chord
// prefix between keys until Reset is called.
type Resolver struct {
	km      *Keymap
	history Sequence
}

// NewResolver returns a resolver over km.
func NewResolver(km *Keymap) *Resolver {
	return &Resolver{km: km}
}

// Pending returns the keys held as a chord prefix.
func (r *Resolver) Pending() Sequence {
	return append(Sequence(nil), r.history...)
}

// Reset drops any pending chord prefix.
func (r *Resolver) Reset() {
	r.history = nil
}

// Resolve feeds one key descriptor in mode. It returns the bound action, if
// the key completes a sequence.
func (r *Resolver) Resolve(mode state.Focus, k string) (action.Action, bool) {
	if len(r.history) > 0 {
		chord := append(r.Pending(), k)
		if a, ok := r.km.Lookup(mode, chord); ok {
			r.Reset()
			return a, true
		}
	}
	single := Sequence{k}
	if a, ok := r.km.Lookup(mode, single); ok {
		r.Reset()
		return a, true
	}

	chord := append(r.Pending(), k)
	switch {
	case len(r.history) > 0 && r.km.IsPrefix(mode, chord):
		r.history = chord
	case r.km.IsPrefix(mode, single):
		r.history = single
	default:
		r.Reset()
	}
	return nil, false
}
