// Package demo provides an in-memory stand-in for the dnote CLI.
// Reads come from a seeded notebook; anything that would open an editor or
// prompt returns ErrDemoMode so the UI surfaces a friendly read-only message.
package demo

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/shhac/dnotetea/internal/dnote"
)

// ErrDemoMode is returned by all interactive operations in demo mode.
var ErrDemoMode = fmt.Errorf("Demo mode: editing disabled")

// Program is the name reported as the dnote binary in demo mode.
const Program = "dnote-demo"

type note struct {
	id   uint32
	book string
	body string
}

// Service keeps books and notes in memory and answers dnote invocations
// with the same text the real CLI prints.
type Service struct {
	mu     sync.Mutex
	books  []string
	notes  []note
	nextID uint32
	calls  []string
}

// NewService creates a Service populated with the demo notebook.
func NewService() *Service {
	s := NewEmptyService()
	for _, b := range seed {
		s.AddBook(b.book)
		for _, body := range b.notes {
			s.AddNote(b.book, body)
		}
	}
	return s
}

// NewEmptyService creates a Service with no books.
func NewEmptyService() *Service {
	return &Service{nextID: 1}
}

// Client returns a dnote client backed by s.
func (s *Service) Client() *dnote.Client {
	return dnote.NewTestClient(Program, s.Run)
}

// AddBook creates an empty book if it does not exist.
func (s *Service) AddBook(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hasBook(name) {
		return
	}
	s.books = append(s.books, name)
}

// AddNote appends a note to book, creating the book if needed, and returns
// its id.
func (s *Service) AddNote(book, body string) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasBook(book) {
		s.books = append(s.books, book)
	}
	id := s.nextID
	s.nextID++
	s.notes = append(s.notes, note{id: id, book: book, body: body})
	return id
}

// SetNote replaces the body of note id.
func (s *Service) SetNote(id uint32, body string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].id == id {
			s.notes[i].body = body
			return true
		}
	}
	return false
}

// RemoveNote deletes note id.
func (s *Service) RemoveNote(id uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].id == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveBook deletes book and every note in it.
func (s *Service) RemoveBook(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.bookIndex(name)
	if idx < 0 {
		return false
	}
	s.books = append(s.books[:idx], s.books[idx+1:]...)
	kept := s.notes[:0]
	for _, n := range s.notes {
		if n.book != name {
			kept = append(kept, n)
		}
	}
	s.notes = kept
	return true
}

// Calls returns every invocation seen so far, space-joined.
func (s *Service) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// Run implements dnote.CommandRunner.
func (s *Service) Run(_ context.Context, args ...string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, strings.Join(args, " "))

	if len(args) == 0 {
		return "", fmt.Errorf("demo: no subcommand")
	}
	switch args[0] {
	case "view":
		return s.view(args[1:])
	case "edit":
		if len(args) == 4 && args[2] == "-n" {
			return "", s.rename(args[1], args[3])
		}
	}
	return "", ErrDemoMode
}

func (s *Service) view(args []string) (string, error) {
	switch {
	case len(args) == 1 && args[0] == "--name-only":
		names := append([]string(nil), s.books...)
		sort.Strings(names)
		if len(names) == 0 {
			return "", nil
		}
		return strings.Join(names, "\n") + "\n", nil
	case len(args) == 2 && args[1] == "--content-only":
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return "", fmt.Errorf("demo: invalid note id %q", args[0])
		}
		for _, n := range s.notes {
			if n.id == uint32(id) {
				return n.body + "\n", nil
			}
		}
		return "", fmt.Errorf("demo: note %d not found", id)
	case len(args) == 1:
		if !s.hasBook(args[0]) {
			return "", fmt.Errorf("demo: book %q not found", args[0])
		}
		var b strings.Builder
		fmt.Fprintf(&b, "  • on book %s\n", args[0])
		for _, n := range s.notes {
			if n.book != args[0] {
				continue
			}
			fmt.Fprintf(&b, "(%d) %s\n", n.id, summarize(n.body))
		}
		return b.String(), nil
	}
	return "", fmt.Errorf("demo: unsupported view %q", strings.Join(args, " "))
}

func (s *Service) rename(old, name string) error {
	idx := s.bookIndex(old)
	if idx < 0 {
		return fmt.Errorf("demo: book %q not found", old)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("demo: book name cannot be empty")
	}
	if s.hasBook(name) {
		return fmt.Errorf("demo: book %q already exists", name)
	}
	s.books[idx] = name
	for i := range s.notes {
		if s.notes[i].book == old {
			s.notes[i].book = name
		}
	}
	return nil
}

func (s *Service) hasBook(name string) bool { return s.bookIndex(name) >= 0 }

func (s *Service) bookIndex(name string) int {
	for i, b := range s.books {
		if b == name {
			return i
		}
	}
	return -1
}

// summarize mimics the listing line: the first line of the body, with the
// more-marker when there is anything after it.
func summarize(body string) string {
	first, rest, more := strings.Cut(body, "\n")
	if more && strings.TrimSpace(rest) != "" {
		return first + " [---More---]"
	}
	return first
}
