package dnote

import (
	"strconv"
	"strings"
)

// moreMarker trails the summary of notes whose body spans several lines.
const moreMarker = "[---More---]"

// splitLines breaks command output into lines. A single trailing newline
// does not produce an extra empty line, and empty output yields no lines.
func splitLines(out string) []string {
	out = strings.TrimSuffix(out, "\n")
	if out == "" {
		return nil
	}
	lines := strings.Split(out, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// ParseBook parses one line of `dnote view --name-only`.
func ParseBook(line string) (Book, error) {
	name := strings.TrimSpace(line)
	if name == "" {
		return Book{}, &ParseError{Text: line, Reason: "empty book name"}
	}
	return Book{Name: name}, nil
}

// ParseBooks parses the full output of `dnote view --name-only`.
func ParseBooks(out string) ([]Book, error) {
	lines := splitLines(out)
	books := make([]Book, 0, len(lines))
	for i, line := range lines {
		b, err := ParseBook(line)
		if err != nil {
			err.(*ParseError).Line = i + 1
			return nil, err
		}
		books = append(books, b)
	}
	return books, nil
}

// ParsePage parses one listing line of the form
// "(<id>) <summary> [---More---]". Leading whitespace and a missing marker
// are tolerated.
func ParsePage(line string) (Page, error) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "(") {
		return Page{}, &ParseError{Text: line, Reason: "missing '(' before page id"}
	}
	end := strings.IndexByte(s, ')')
	if end < 0 {
		return Page{}, &ParseError{Text: line, Reason: "missing ')' after page id"}
	}
	id, err := strconv.ParseUint(strings.TrimSpace(s[1:end]), 10, 32)
	if err != nil {
		return Page{}, &ParseError{Text: line, Reason: "page id is not an unsigned integer"}
	}
	summary := strings.TrimSpace(s[end+1:])
	summary = strings.TrimSpace(strings.TrimSuffix(summary, moreMarker))
	return Page{ID: uint32(id), Summary: summary}, nil
}

// ParsePages parses the output of `dnote view <book>`. The first line is a
// header and is dropped; any other line that fails to parse aborts.
func ParsePages(out string) ([]Page, error) {
	lines := splitLines(out)
	if len(lines) <= 1 {
		return []Page{}, nil
	}
	pages := make([]Page, 0, len(lines)-1)
	for i, line := range lines[1:] {
		p, err := ParsePage(line)
		if err != nil {
			err.(*ParseError).Line = i + 2
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, nil
}

// ParseContent parses the output of `dnote view <id> --content-only`.
func ParseContent(out string) PageContent {
	return PageContent{Text: strings.TrimSpace(out)}
}
