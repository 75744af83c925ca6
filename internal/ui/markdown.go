package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// MarkdownRenderer provides cached glamour markdown rendering for page
// content. With markdown disabled it only word-wraps.
type MarkdownRenderer struct {
	enabled  bool
	renderer *glamour.TermRenderer
	width    int
}

// NewMarkdownRenderer returns a renderer; enabled=false forces plain text.
func NewMarkdownRenderer(enabled bool) *MarkdownRenderer {
	return &MarkdownRenderer{enabled: enabled}
}

// Render renders markdown text for terminal display at width.
// Uses a cached renderer per width to avoid re-creating it on every call.
// Falls back to plain word wrapping if glamour fails.
func (mr *MarkdownRenderer) Render(markdown string, width int) string {
	if width < 10 {
		width = 10
	}
	if !mr.enabled {
		return wordWrap(markdown, width)
	}
	r := mr.getOrCreate(width)
	if r == nil {
		return wordWrap(markdown, width)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return wordWrap(markdown, width)
	}
	return strings.Trim(out, "\n")
}

func (mr *MarkdownRenderer) getOrCreate(width int) *glamour.TermRenderer {
	if mr.renderer != nil && mr.width == width {
		return mr.renderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	mr.renderer = r
	mr.width = width
	return r
}

// wordWrap wraps text at word boundaries to fit width.
func wordWrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}
