package dnote

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultBinary is the dnote executable looked up on PATH.
const DefaultBinary = "dnote"

// CommandRunner executes dnote with the given arguments and returns stdout.
// The default implementation runs the binary via exec.Command.
// Tests and demo mode inject their own.
type CommandRunner func(ctx context.Context, args ...string) (string, error)

// Client translates domain queries into dnote invocations.
type Client struct {
	bin string
	run CommandRunner
}

// NewClient verifies the dnote binary can be found and returns a client for it.
func NewClient(bin string) (*Client, error) {
	if strings.TrimSpace(bin) == "" {
		bin = DefaultBinary
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("dnote CLI not found (%s): install from https://www.getdnote.com", bin)
	}
	return &Client{bin: path, run: execRunner(path)}, nil
}

// NewTestClient creates a Client with a custom CommandRunner.
func NewTestClient(bin string, runner CommandRunner) *Client {
	if bin == "" {
		bin = DefaultBinary
	}
	return &Client{bin: bin, run: runner}
}

// Program returns the path of the dnote binary, for terminal takeover.
func (c *Client) Program() string {
	return c.bin
}

// execRunner returns a CommandRunner that runs bin and captures its output.
func execRunner(bin string) CommandRunner {
	return func(ctx context.Context, args ...string) (string, error) {
		cmd := exec.CommandContext(ctx, bin, args...)
		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			return "", &CommandError{Args: args, Stderr: strings.TrimSpace(stderr.String()), Err: err}
		}
		return stdout.String(), nil
	}
}

// exec runs dnote and normalises every failure into a *CommandError.
func (c *Client) exec(ctx context.Context, args ...string) (string, error) {
	log.Printf("dnote: %s", strings.Join(args, " "))
	out, err := c.run(ctx, args...)
	if err != nil {
		if _, ok := err.(*CommandError); ok {
			return "", err
		}
		return "", &CommandError{Args: args, Err: err}
	}
	if !utf8.ValidString(out) {
		return "", &CommandError{Args: args, Err: fmt.Errorf("output is not valid UTF-8")}
	}
	return out, nil
}

// ListBooks returns every book, one per line of `dnote view --name-only`.
func (c *Client) ListBooks(ctx context.Context) ([]Book, error) {
	out, err := c.exec(ctx, "view", "--name-only")
	if err != nil {
		return nil, err
	}
	books, err := ParseBooks(out)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// ListPages returns the pages of one book.
func (c *Client) ListPages(ctx context.Context, book string) ([]Page, error) {
	out, err := c.exec(ctx, "view", book)
	if err != nil {
		return nil, err
	}
	pages, err := ParsePages(out)
	if err != nil {
		return nil, fmt.Errorf("list pages of %q: %w", book, err)
	}
	return pages, nil
}

// GetContent returns the body of one page.
func (c *Client) GetContent(ctx context.Context, id uint32) (PageContent, error) {
	out, err := c.exec(ctx, "view", strconv.FormatUint(uint64(id), 10), "--content-only")
	if err != nil {
		return PageContent{}, err
	}
	return ParseContent(out), nil
}

// Mutate runs a mutating command without the terminal and reports only
// success or failure.
func (c *Client) Mutate(ctx context.Context, cmd Command) error {
	_, err := c.exec(ctx, cmd.Args()...)
	return err
}
