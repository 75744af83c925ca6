package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestWordWrap(t *testing.T) {
	got := wordWrap("the quick brown fox jumps over the lazy dog", 10)
	for _, line := range strings.Split(got, "\n") {
		if lipgloss.Width(line) > 10 {
			t.Errorf("line %q wider than 10", line)
		}
	}
	if !strings.Contains(got, "quick") {
		t.Errorf("words lost: %q", got)
	}
}

func TestMarkdownRenderer_Plain(t *testing.T) {
	mr := NewMarkdownRenderer(false)
	got := mr.Render("# Title\n\nbody", 40)
	if got != "# Title\n\nbody" {
		t.Errorf("plain render = %q", got)
	}
}

func TestMarkdownRenderer_Markdown(t *testing.T) {
	mr := NewMarkdownRenderer(true)
	got := mr.Render("# Title\n\nsome **bold** body", 40)
	if !strings.Contains(got, "Title") || !strings.Contains(got, "bold") {
		t.Errorf("markdown render lost text: %q", got)
	}
	first := mr.renderer
	mr.Render("again", 40)
	if mr.renderer != first {
		t.Error("renderer should be cached for the same width")
	}
}
