package dnote

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCommandFailure matches any error where the dnote process could not
	// be spawned, exited non-zero, or wrote something other than text.
	ErrCommandFailure = errors.New("dnote command failed")

	// ErrParseFailure matches any error where stdout did not fit the
	// expected line grammar.
	ErrParseFailure = errors.New("dnote output could not be parsed")
)

// CommandError describes a failed dnote invocation.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("dnote %s failed", strings.Join(e.Args, " "))
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CommandError) Unwrap() error { return e.Err }

func (e *CommandError) Is(target error) bool { return target == ErrCommandFailure }

// ParseError describes the first line of output that broke the grammar.
// Line is 1-based and counts the header line of page listings.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %s", e.Line, e.Text, e.Reason)
}

func (e *ParseError) Is(target error) bool { return target == ErrParseFailure }
