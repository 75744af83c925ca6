// Package keymap maps key sequences to actions per focus mode and turns
// individual keypresses into actions, including multi-key chords.
package keymap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/shhac/dnotetea/internal/action"
	"github.com/shhac/dnotetea/internal/state"
)

// GlobalMode is the config name for bindings active in every mode.
const GlobalMode = "global"

// Sequence is one or more key descriptors as produced by tea.KeyMsg.String().
type Sequence []string

// ParseSequence splits a space-separated sequence such as "d d".
func ParseSequence(s string) (Sequence, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty key sequence")
	}
	return Sequence(fields), nil
}

func (s Sequence) String() string { return strings.Join(s, " ") }

// hasPrefix reports whether p is a strict prefix of s.
func (s Sequence) hasPrefix(p Sequence) bool {
	if len(p) >= len(s) {
		return false
	}
	for i := range p {
		if s[i] != p[i] {
			return false
		}
	}
	return true
}

// Binding ties a key sequence to the action it emits.
type Binding struct {
	Keys   Sequence
	Action action.Action
}

// table holds one mode's bindings keyed by Sequence.String().
type table map[string]Binding

func (t table) bind(keys string, a action.Action) {
	seq, err := ParseSequence(keys)
	if err != nil {
		panic(err)
	}
	t[seq.String()] = Binding{Keys: seq, Action: a}
}

// Keymap is the full binding table.
type Keymap struct {
	global table
	modes  map[state.Focus]table
}

func newKeymap() *Keymap {
	return &Keymap{
		global: table{},
		modes: map[state.Focus]table{
			state.FocusBook:    {},
			state.FocusPage:    {},
			state.FocusContent: {},
		},
	}
}

// Default returns the built-in bindings.
func Default() *Keymap {
	km := newKeymap()

	g := km.global
	g.bind("q", action.Quit{})
	g.bind("ctrl+c", action.Quit{})
	g.bind("ctrl+z", action.Suspend{})
	g.bind("ctrl+l", action.Refresh{})
	g.bind("?", action.Help{})

	b := km.modes[state.FocusBook]
	b.bind("j", action.SelectNextBook{})
	b.bind("down", action.SelectNextBook{})
	b.bind("k", action.SelectPrevBook{})
	b.bind("up", action.SelectPrevBook{})
	b.bind("l", action.FocusNext{})
	b.bind("right", action.FocusNext{})
	b.bind("enter", action.FocusNext{})
	b.bind("tab", action.FocusNext{})
	b.bind("a", action.AddPageToBook{})
	b.bind("e", action.EditBook{})
	b.bind("r", action.RenameBook{})
	b.bind("d d", action.DeleteBook{})
	b.bind("R", action.LoadBooks{})
	b.bind("ctrl+r", action.LoadBooks{})

	p := km.modes[state.FocusPage]
	p.bind("j", action.SelectNextPage{})
	p.bind("down", action.SelectNextPage{})
	p.bind("k", action.SelectPrevPage{})
	p.bind("up", action.SelectPrevPage{})
	p.bind("h", action.FocusPrev{})
	p.bind("left", action.FocusPrev{})
	p.bind("esc", action.FocusPrev{})
	p.bind("shift+tab", action.FocusPrev{})
	p.bind("l", action.FocusNext{})
	p.bind("right", action.FocusNext{})
	p.bind("enter", action.FocusNext{})
	p.bind("tab", action.FocusNext{})
	p.bind("a", action.AddPageToBook{})
	p.bind("e", action.EditPage{})
	p.bind("d d", action.DeletePage{})

	c := km.modes[state.FocusContent]
	c.bind("j", action.ScrollContentDown{})
	c.bind("down", action.ScrollContentDown{})
	c.bind("k", action.ScrollContentUp{})
	c.bind("up", action.ScrollContentUp{})
	c.bind("h", action.FocusPrev{})
	c.bind("left", action.FocusPrev{})
	c.bind("esc", action.FocusPrev{})
	c.bind("shift+tab", action.FocusPrev{})
	c.bind("e", action.EditPage{})

	return km
}

// FromConfig overlays user bindings on the defaults. The outer key is a mode
// name ("global", "book", "page", "content"); the inner map goes from a
// space-separated sequence to an action name.
func FromConfig(cfg map[string]map[string]string) (*Keymap, error) {
	km := Default()
	modes := make([]string, 0, len(cfg))
	for m := range cfg {
		modes = append(modes, m)
	}
	sort.Strings(modes)
	for _, m := range modes {
		var t table
		if strings.EqualFold(strings.TrimSpace(m), GlobalMode) {
			t = km.global
		} else {
			f, err := state.ParseFocus(m)
			if err != nil {
				return nil, fmt.Errorf("keybindings: %w", err)
			}
			t = km.modes[f]
		}
		for keys, name := range cfg[m] {
			seq, err := ParseSequence(keys)
			if err != nil {
				return nil, fmt.Errorf("keybindings.%s: %w", m, err)
			}
			a, err := action.Parse(name)
			if err != nil {
				return nil, fmt.Errorf("keybindings.%s %q: %w", m, keys, err)
			}
			t[seq.String()] = Binding{Keys: seq, Action: a}
		}
	}
	return km, nil
}

// Lookup returns the action bound to seq in mode. Mode bindings shadow
// global ones.
func (km *Keymap) Lookup(mode state.Focus, seq Sequence) (action.Action, bool) {
	k := seq.String()
	if b, ok := km.modes[mode][k]; ok {
		return b.Action, true
	}
	if b, ok := km.global[k]; ok {
		return b.Action, true
	}
	return nil, false
}

// IsPrefix reports whether seq is the start of a longer binding in mode.
func (km *Keymap) IsPrefix(mode state.Focus, seq Sequence) bool {
	for _, t := range []table{km.modes[mode], km.global} {
		for _, b := range t {
			if b.Keys.hasPrefix(seq) {
				return true
			}
		}
	}
	return false
}

// Bindings returns the effective bindings for mode, global ones included,
// in a stable order.
func (km *Keymap) Bindings(mode state.Focus) []Binding {
	merged := make(map[string]Binding, len(km.global)+len(km.modes[mode]))
	for k, b := range km.global {
		merged[k] = b
	}
	for k, b := range km.modes[mode] {
		merged[k] = b
	}
	out := make([]Binding, 0, len(merged))
	for _, b := range merged {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		oi, oj := action.Order(out[i].Action), action.Order(out[j].Action)
		if oi != oj {
			return oi < oj
		}
		ni, nj := action.Name(out[i].Action), action.Name(out[j].Action)
		if ni != nj {
			return ni < nj
		}
		return out[i].Keys.String() < out[j].Keys.String()
	})
	return out
}

// Help groups the bindings of mode by action into bubbles key bindings,
// ordered by action.Order. Actions without a label are left out.
func (km *Keymap) Help(mode state.Focus) []key.Binding {
	var (
		order []action.Action
		keys  = map[string][]string{}
	)
	for _, b := range km.Bindings(mode) {
		if action.Label(b.Action) == "" {
			continue
		}
		n := action.Name(b.Action)
		if _, ok := keys[n]; !ok {
			order = append(order, b.Action)
		}
		keys[n] = append(keys[n], b.Keys.String())
	}
	out := make([]key.Binding, 0, len(order))
	for _, a := range order {
		ks := keys[action.Name(a)]
		out = append(out, key.NewBinding(
			key.WithKeys(ks...),
			key.WithHelp(strings.Join(ks, "/"), action.Label(a)),
		))
	}
	return out
}
