package editor

import (
	"errors"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoFilename is returned by a save that has no name to write to.
var ErrNoFilename = errors.New("no file name")

// Command is a parsed ':' command line.
type Command int

const (
	CommandUnknown Command = iota
	CommandWrite
	CommandQuit
	CommandWriteQuit
)

func (c Command) String() string {
	switch c {
	case CommandWrite:
		return "w"
	case CommandQuit:
		return "q"
	case CommandWriteQuit:
		return "wq"
	default:
		return "unknown"
	}
}

// ParseCommand matches the trimmed line exactly; there are no prefixes or
// arguments.
func ParseCommand(line string) Command {
	switch strings.TrimSpace(line) {
	case "w":
		return CommandWrite
	case "q":
		return CommandQuit
	case "wq":
		return CommandWriteQuit
	default:
		return CommandUnknown
	}
}

// execCommand runs the pending command line. The line is cleared and the
// mode returns to Insert whatever the command does.
func (m Model) execCommand() (Model, tea.Cmd) {
	line := m.command
	m.command = ""
	m.mode = ModeInsert

	switch ParseCommand(line) {
	case CommandWrite:
		if name := m.buf.Filename(); name != "" {
			_ = m.save(name)
		} else {
			m.overlay = FilenamePrompt{}
		}
	case CommandQuit:
		if m.buf.Dirty() {
			m.overlay = ConfirmExit{PendingSave: true}
			return m, nil
		}
		return m.quit()
	case CommandWriteQuit:
		if name := m.buf.Filename(); name != "" {
			if err := m.save(name); err != nil {
				return m, nil
			}
			return m.quit()
		}
		m.overlay = FilenamePrompt{QuitAfterSave: true}
	case CommandUnknown:
		if s := strings.TrimSpace(line); s != "" {
			m.status = fmt.Sprintf("unknown command: %s", s)
		}
	}
	return m, nil
}

// save writes the buffer to name. Failures are logged and shown in the
// status line; the buffer stays dirty.
func (m *Model) save(name string) error {
	if name == "" {
		m.setError(ErrNoFilename)
		return ErrNoFilename
	}

	lines := m.buf.Lines()
	if err := m.cfg.Storage.Save(name, lines); err != nil {
		log.Printf("quill: save %s: %v", name, err)
		m.setError(err)
		return fmt.Errorf("save %s: %w", name, err)
	}

	m.buf.MarkSaved(name)
	m.baseline = lines
	m.status = fmt.Sprintf("%q %dL written", name, len(lines))
	m.statusErr = false
	return nil
}

func (m *Model) setError(err error) {
	m.status = "save failed: " + err.Error()
	m.statusErr = true
}

func (m Model) quit() (Model, tea.Cmd) {
	m.quitting = true
	m.overlay = nil
	return m, tea.Quit
}
