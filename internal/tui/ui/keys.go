package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains the key bindings for the interactive prompt. Most of the
// interaction happens through typed :commands; the bindings here are the
// shell-like control keys.
type KeyMap struct {
	// Quit exits like ^D in a shell.
	Quit key.Binding
	// Clear aborts the current input like ^C in a shell.
	Clear key.Binding
	// Submit sends the current input line.
	Submit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "quit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("ctrl+c", "clear input"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "log task / run command"),
		),
	}
}
