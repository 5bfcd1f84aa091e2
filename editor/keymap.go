package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Command-line and overlay input reuse Backspace, Enter, and Escape.
type KeyMap struct {
	Left, Right, Up, Down key.Binding

	Backspace key.Binding
	Enter     key.Binding
	Escape    key.Binding

	// Command opens the ':' command line from Insert mode.
	Command key.Binding

	Undo, Redo  key.Binding
	Copy, Paste key.Binding

	// Confirm answers for the exit confirmation overlay.
	Yes, No key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit / cancel")),

		Command: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy line")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		Yes: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "save and quit")),
		No:  key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "quit without saving")),
	}
}

func (k KeyMap) isZero() bool {
	return len(k.Enter.Keys()) == 0 && len(k.Escape.Keys()) == 0
}

// ShortHelp returns the bindings shown in the status hint.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Command, k.Copy, k.Paste, k.Undo, k.Redo, k.Escape}
}

// FullHelp groups every binding by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Backspace, k.Enter, k.Command, k.Escape},
		{k.Copy, k.Paste, k.Undo, k.Redo},
	}
}
