// Package sysclip connects the editor to the operating system clipboard.
package sysclip

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("sysclip: system clipboard unsupported")

// Clipboard reads and writes the system clipboard.
type Clipboard struct{}

// Available reports whether the host has a usable clipboard utility.
func Available() bool { return !clipboard.Unsupported }

func (Clipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return s, nil
}

func (Clipboard) WriteText(s string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
