package dnote

import (
	"strconv"

	"github.com/shhac/dnotetea/internal/action"
)

// Command is one mutating dnote invocation.
type Command struct {
	args        []string
	interactive bool
}

// AddPage opens the editor to write a new note in book.
func AddPage(book string) Command {
	return Command{args: []string{"add", book}, interactive: true}
}

// EditPage opens the editor on an existing note.
func EditPage(id uint32) Command {
	return Command{args: []string{"edit", strconv.FormatUint(uint64(id), 10)}, interactive: true}
}

// RemovePage deletes a note after dnote's own confirmation prompt.
func RemovePage(id uint32) Command {
	return Command{args: []string{"remove", strconv.FormatUint(uint64(id), 10)}, interactive: true}
}

// EditBook opens dnote's interactive book editor.
func EditBook(name string) Command {
	return Command{args: []string{"edit", name}, interactive: true}
}

// RenameBook renames a book without prompting.
func RenameBook(name, newName string) Command {
	return Command{args: []string{"edit", name, "-n", newName}}
}

// RemoveBook deletes a book and its notes after dnote's confirmation prompt.
func RemoveBook(name string) Command {
	return Command{args: []string{"remove", name}, interactive: true}
}

// Args returns the dnote arguments, subcommand first.
func (c Command) Args() []string {
	return append([]string(nil), c.args...)
}

// Interactive reports whether the command needs the terminal.
func (c Command) Interactive() bool {
	return c.interactive
}

// Delegate wraps the command in a terminal takeover action for program.
func (c Command) Delegate(program string) action.Action {
	return action.RunExternalCommand{Program: program, Args: c.Args()}
}
