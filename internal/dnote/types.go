package dnote

import "strings"

// Book is a dnote notebook. Its identity is the trimmed, case-folded name.
type Book struct {
	Name string
}

// Key returns the identity used to match books across reloads.
func (b Book) Key() string {
	return strings.ToLower(strings.TrimSpace(b.Name))
}

// Page is one note inside a book, as listed by `dnote view <book>`.
type Page struct {
	ID      uint32
	Summary string
}

// Key returns the page id.
func (p Page) Key() uint32 {
	return p.ID
}

// PageContent is the full body of a page.
type PageContent struct {
	Text string
}
