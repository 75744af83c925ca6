package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"
)

func TestExternalCommand_Success(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := NewExternalCommand("sh", []string{"-c", "echo hello"})
	c.SetStdin(strings.NewReader(""))
	c.SetStdout(&stdout)
	c.SetStderr(&stderr)

	if err := c.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout.String() != "hello\n" {
		t.Errorf("stdout = %q, want program output only", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
}

func TestExternalCommand_FailureWaitsForLine(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := NewExternalCommand("sh", []string{"-c", "exit 3"})
	c.SetStdin(strings.NewReader("\n"))
	c.SetStdout(&stdout)
	c.SetStderr(&stderr)

	err := c.Run()
	var de *DelegateError
	if !errors.As(err, &de) {
		t.Fatalf("error = %v, want *DelegateError", err)
	}
	if de.Command != "sh -c exit 3" {
		t.Errorf("Command = %q", de.Command)
	}
	if !strings.Contains(stderr.String(), "sh -c exit 3 failed") {
		t.Errorf("stderr = %q, want failure notice", stderr.String())
	}
	if !strings.Contains(stdout.String(), "Press any key to continue...") {
		t.Errorf("stdout = %q, want acknowledgement prompt", stdout.String())
	}
}

func TestExternalCommand_SpawnFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	c := NewExternalCommand("/nonexistent/dnote", []string{"edit", "1"})
	c.SetStdin(strings.NewReader(""))
	c.SetStdout(&stdout)
	c.SetStderr(&stderr)

	if err := c.Run(); err == nil {
		t.Fatal("expected error for missing program")
	}
	if !strings.Contains(stderr.String(), "/nonexistent/dnote edit 1 failed") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestWaitForKey_Terminal(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	done := make(chan error, 1)
	go func() { done <- waitForKey(tty) }()

	// A single key without a newline must be enough once raw mode is on.
	deadline := time.After(3 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("waitForKey: %v", err)
			}
			return
		case <-ticker.C:
			if _, err := ptmx.Write([]byte("x")); err != nil {
				t.Fatalf("write to pty: %v", err)
			}
		case <-deadline:
			t.Fatal("waitForKey did not return after a single keypress")
		}
	}
}

func TestWaitForKey_NonTerminal(t *testing.T) {
	if err := waitForKey(strings.NewReader("")); err != nil {
		t.Errorf("EOF should not be an error, got %v", err)
	}
	if err := waitForKey(strings.NewReader("anything\n")); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := waitForKey(nil); err != nil {
		t.Errorf("nil reader: %v", err)
	}
}
