package ui

import "time"

// -- Clock --

// tickMsg drives the Tick action at the configured tick rate.
type tickMsg time.Time

// frameMsg drives the Render action at the configured frame rate.
type frameMsg time.Time

// -- Delegation --

// externalDoneMsg is sent once a foreground program has exited and the
// terminal is back under bubbletea's control.
type externalDoneMsg struct {
	Command string
	Err     error
}
