package keymap

import (
	"testing"

	"github.com/shhac/dnotetea/internal/action"
	"github.com/shhac/dnotetea/internal/state"
)

type step struct {
	key  string
	want action.Action // nil means nothing emitted
}

func runSteps(t *testing.T, r *Resolver, mode state.Focus, steps []step) {
	t.Helper()
	for i, s := range steps {
		got, ok := r.Resolve(mode, s.key)
		if s.want == nil {
			if ok {
				t.Errorf("step %d (%q): emitted %v, want nothing", i, s.key, got)
			}
			continue
		}
		if !ok || !action.Equal(got, s.want) {
			t.Errorf("step %d (%q): got %v, %v; want %v", i, s.key, got, ok, s.want)
		}
	}
}

func TestResolve_Single(t *testing.T) {
	r := NewResolver(Default())
	runSteps(t, r, state.FocusBook, []step{
		{"j", action.SelectNextBook{}},
		{"k", action.SelectPrevBook{}},
		{"x", nil},
	})
}

func TestResolve_Chord(t *testing.T) {
	r := NewResolver(Default())
	runSteps(t, r, state.FocusBook, []step{
		{"d", nil},
		{"d", action.DeleteBook{}},
	})
	if len(r.Pending()) != 0 {
		t.Errorf("history = %v after chord, want empty", r.Pending())
	}
}

func TestResolve_ChordInterruptedBySingle(t *testing.T) {
	r := NewResolver(Default())
	runSteps(t, r, state.FocusBook, []step{
		{"d", nil},
		{"j", action.SelectNextBook{}},
		{"d", nil},
		{"d", action.DeleteBook{}},
	})
}

func TestResolve_ChordBrokenByUnbound(t *testing.T) {
	r := NewResolver(Default())
	runSteps(t, r, state.FocusBook, []step{
		{"d", nil},
		{"x", nil},
	})
	if len(r.Pending()) != 0 {
		t.Errorf("history = %v, want cleared", r.Pending())
	}
	// A single d afterwards starts a fresh chord rather than completing one.
	runSteps(t, r, state.FocusBook, []step{
		{"d", nil},
		{"d", action.DeleteBook{}},
	})
}

func TestResolve_ResetOnTick(t *testing.T) {
	r := NewResolver(Default())
	runSteps(t, r, state.FocusBook, []step{{"d", nil}})
	r.Reset()
	runSteps(t, r, state.FocusBook, []step{
		{"d", nil},
		{"d", action.DeleteBook{}},
	})
}

func TestResolve_ModeWithoutChord(t *testing.T) {
	r := NewResolver(Default())
	runSteps(t, r, state.FocusContent, []step{
		{"d", nil},
		{"d", nil},
	})
	if len(r.Pending()) != 0 {
		t.Errorf("history = %v, want empty in a mode without chords", r.Pending())
	}
}

func TestResolve_ThreeKeyChord(t *testing.T) {
	km, err := FromConfig(map[string]map[string]string{
		"page": {"g g g": "SelectPrevPage"},
	})
	if err != nil {
		t.Fatal(err)
	}
	r := NewResolver(km)
	runSteps(t, r, state.FocusPage, []step{
		{"g", nil},
		{"g", nil},
		{"g", action.SelectPrevPage{}},
	})
}
