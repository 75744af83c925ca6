package ui

import (
	"errors"
	"fmt"
)

var (
	errNoBook = errors.New("no book selected")
	errNoPage = errors.New("no page selected")
)

// IOError wraps a failure to paint the terminal.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *IOError) Unwrap() error { return e.Err }

func errAreaTooSmall(a Area) error {
	return fmt.Errorf("pane area %dx%d too small", a.Width, a.Height)
}
