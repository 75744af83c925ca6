package ui

// Layout constants
const (
	minBooksWidth   = 16
	minPagesWidth   = 24
	minContentWidth = 30
	minTotalWidth   = minBooksWidth + minPagesWidth + minContentWidth
	minPaneHeight   = 5

	booksRatio = 0.20
	pagesRatio = 0.30

	statusBarHeight = 1
)

// PaneSizes holds calculated pane dimensions, borders included.
type PaneSizes struct {
	BooksWidth   int
	PagesWidth   int
	ContentWidth int
	PaneHeight   int
	TooSmall     bool
}

// CalculatePaneSizes splits the terminal into the three columns above the
// status bar. The content column takes whatever is left.
func CalculatePaneSizes(termWidth, termHeight int) PaneSizes {
	if termWidth < minTotalWidth {
		return PaneSizes{TooSmall: true}
	}
	paneHeight := termHeight - statusBarHeight
	if paneHeight < minPaneHeight {
		return PaneSizes{TooSmall: true}
	}

	booksW := max(minBooksWidth, int(float64(termWidth)*booksRatio))
	pagesW := max(minPagesWidth, int(float64(termWidth)*pagesRatio))
	contentW := termWidth - booksW - pagesW
	if contentW < minContentWidth {
		// Shrink the list columns back towards their minimums.
		deficit := minContentWidth - contentW
		take := min(deficit, pagesW-minPagesWidth)
		pagesW -= take
		deficit -= take
		booksW -= min(deficit, booksW-minBooksWidth)
		contentW = termWidth - booksW - pagesW
	}

	return PaneSizes{
		BooksWidth:   booksW,
		PagesWidth:   pagesW,
		ContentWidth: contentW,
		PaneHeight:   paneHeight,
	}
}

// Areas returns the pane areas in registration order.
func (s PaneSizes) Areas() []Area {
	return []Area{
		{Width: s.BooksWidth, Height: s.PaneHeight},
		{Width: s.PagesWidth, Height: s.PaneHeight},
		{Width: s.ContentWidth, Height: s.PaneHeight},
	}
}
