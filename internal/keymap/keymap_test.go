package keymap

import (
	"strings"
	"testing"

	"github.com/shhac/dnotetea/internal/action"
	"github.com/shhac/dnotetea/internal/state"
)

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence("  d   d ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seq.String() != "d d" {
		t.Errorf("String() = %q, want %q", seq.String(), "d d")
	}
	if _, err := ParseSequence("   "); err == nil {
		t.Error("blank sequence should fail")
	}
}

func TestDefault_Lookup(t *testing.T) {
	km := Default()
	tests := []struct {
		mode state.Focus
		keys string
		want action.Action
	}{
		{state.FocusBook, "j", action.SelectNextBook{}},
		{state.FocusPage, "j", action.SelectNextPage{}},
		{state.FocusContent, "j", action.ScrollContentDown{}},
		{state.FocusBook, "d d", action.DeleteBook{}},
		{state.FocusPage, "d d", action.DeletePage{}},
		{state.FocusContent, "q", action.Quit{}},
		{state.FocusPage, "ctrl+c", action.Quit{}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String()+"/"+tt.keys, func(t *testing.T) {
			seq, _ := ParseSequence(tt.keys)
			got, ok := km.Lookup(tt.mode, seq)
			if !ok || !action.Equal(got, tt.want) {
				t.Errorf("Lookup = %v, %v; want %v", got, ok, tt.want)
			}
		})
	}
}

func TestFromConfig_Overrides(t *testing.T) {
	km, err := FromConfig(map[string]map[string]string{
		"book":   {"x": "DeleteBook", "q": "Help"},
		"global": {"ctrl+q": "Quit"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a, _ := km.Lookup(state.FocusBook, Sequence{"x"}); !action.Equal(a, action.DeleteBook{}) {
		t.Errorf("x = %v, want DeleteBook", a)
	}
	// Mode binding shadows the global q.
	if a, _ := km.Lookup(state.FocusBook, Sequence{"q"}); !action.Equal(a, action.Help{}) {
		t.Errorf("book q = %v, want Help", a)
	}
	if a, _ := km.Lookup(state.FocusPage, Sequence{"q"}); !action.Equal(a, action.Quit{}) {
		t.Errorf("page q = %v, want Quit", a)
	}
	if a, _ := km.Lookup(state.FocusContent, Sequence{"ctrl+q"}); !action.Equal(a, action.Quit{}) {
		t.Errorf("ctrl+q = %v, want Quit", a)
	}
	// Defaults survive.
	if a, _ := km.Lookup(state.FocusBook, Sequence{"j"}); !action.Equal(a, action.SelectNextBook{}) {
		t.Errorf("j = %v, want SelectNextBook", a)
	}
}

func TestFromConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  map[string]map[string]string
	}{
		{"unknown mode", map[string]map[string]string{"sidebar": {"x": "Quit"}}},
		{"unknown action", map[string]map[string]string{"book": {"x": "Explode"}}},
		{"parameterised action", map[string]map[string]string{"book": {"x": "LoadPagesFor"}}},
		{"empty sequence", map[string]map[string]string{"book": {" ": "Quit"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromConfig(tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestHelp(t *testing.T) {
	km := Default()
	help := km.Help(state.FocusBook)
	if len(help) == 0 {
		t.Fatal("no help bindings")
	}
	first := help[0].Help()
	if first.Desc != "down" {
		t.Errorf("first hint = %q, want down", first.Desc)
	}
	if !strings.Contains(first.Key, "j") || !strings.Contains(first.Key, "down") {
		t.Errorf("first hint keys = %q, want j and down", first.Key)
	}
	seen := map[string]bool{}
	for _, b := range help {
		seen[b.Help().Desc] = true
	}
	for _, want := range []string{"add", "rename", "delete", "quit", "help"} {
		if !seen[want] {
			t.Errorf("missing hint %q", want)
		}
	}
	// Refresh has no label and is not advertised.
	for _, b := range help {
		for _, k := range b.Keys() {
			if k == "ctrl+l" {
				t.Error("unlabelled action should not appear in help")
			}
		}
	}
}
