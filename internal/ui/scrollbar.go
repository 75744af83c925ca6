package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// renderScrollbar builds a 1-char-wide column for vp. Rows map
// proportionally onto the content; the thumb covers the visible part.
// It returns "" when everything fits.
func renderScrollbar(vp viewport.Model) string {
	height := vp.Height
	total := vp.TotalLineCount()
	if height <= 0 || total <= height {
		return ""
	}

	thumbSize := max(1, height*height/total)
	thumbStart := vp.YOffset * height / total
	if thumbStart+thumbSize > height {
		thumbStart = height - thumbSize
	}

	rows := make([]string, height)
	for i := range rows {
		if i >= thumbStart && i < thumbStart+thumbSize {
			rows[i] = scrollbarThumbStyle.Render("┃")
		} else {
			rows[i] = scrollbarTrackStyle.Render("│")
		}
	}
	return strings.Join(rows, "\n")
}
