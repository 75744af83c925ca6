package ui

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ExternalCommand runs a program in the foreground while bubbletea has
// released the terminal. It satisfies tea.ExecCommand.
type ExternalCommand struct {
	Program string
	Args    []string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExternalCommand returns a command wired to the process stdio until
// bubbletea replaces it.
func NewExternalCommand(program string, args []string) *ExternalCommand {
	return &ExternalCommand{
		Program: program,
		Args:    args,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

func (c *ExternalCommand) SetStdin(r io.Reader)  { c.stdin = r }
func (c *ExternalCommand) SetStdout(w io.Writer) { c.stdout = w }
func (c *ExternalCommand) SetStderr(w io.Writer) { c.stderr = w }

// Run executes the program to completion. On failure it prints a notice and
// waits for a keypress so the program's own output stays readable.
func (c *ExternalCommand) Run() error {
	log.Printf("delegate: running %s %s", c.Program, strings.Join(c.Args, " "))
	cmd := exec.Command(c.Program, c.Args...)
	cmd.Stdin = c.stdin
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr

	err := cmd.Run()
	if err == nil {
		log.Printf("delegate: %s finished", c.Program)
		return nil
	}
	log.Printf("delegate: %s failed: %v", c.Program, err)

	fmt.Fprintf(c.stderr, "\n%s failed: %v\n", c.commandLine(), err)
	fmt.Fprint(c.stdout, "Press any key to continue...")
	if werr := waitForKey(c.stdin); werr != nil {
		log.Printf("delegate: waiting for key: %v", werr)
	}
	fmt.Fprintln(c.stdout)
	return &DelegateError{Command: c.commandLine(), Err: err}
}

func (c *ExternalCommand) commandLine() string {
	if len(c.Args) == 0 {
		return c.Program
	}
	return c.Program + " " + strings.Join(c.Args, " ")
}

// DelegateError reports a foreground program that could not start or exited
// non-zero.
type DelegateError struct {
	Command string
	Err     error
}

func (e *DelegateError) Error() string { return fmt.Sprintf("%s failed: %v", e.Command, e.Err) }

func (e *DelegateError) Unwrap() error { return e.Err }

// waitForKey blocks until one key is available on r. A terminal is switched
// to raw mode so any single key counts; other readers wait for a newline.
func waitForKey(r io.Reader) error {
	if r == nil {
		return nil
	}
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		old, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return fmt.Errorf("raw mode: %w", err)
		}
		defer term.Restore(int(f.Fd()), old)
		var buf [1]byte
		_, err = f.Read(buf[:])
		return err
	}
	_, err := bufio.NewReader(r).ReadString('\n')
	if err == io.EOF {
		return nil
	}
	return err
}

// runExternal hands the terminal to program and reports back with an
// externalDoneMsg once it has been restored.
func runExternal(program string, args []string) tea.Cmd {
	c := NewExternalCommand(program, args)
	return tea.Exec(c, func(err error) tea.Msg {
		return externalDoneMsg{Command: c.commandLine(), Err: err}
	})
}
