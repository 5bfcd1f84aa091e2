package editor

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

// updateKey routes one key event. Overlays take priority over the mode, and
// the filename prompt over the exit confirmation.
func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.quitting || m.buf == nil {
		return m, nil
	}
	m.status, m.statusErr = "", false

	switch ov := m.overlay.(type) {
	case FilenamePrompt:
		return m.updateFilenamePrompt(ov, msg)
	case ConfirmExit:
		return m.updateConfirmExit(ov, msg)
	}

	switch m.mode {
	case ModeCommand:
		return m.updateCommandLine(msg)
	default:
		return m.updateInsert(msg)
	}
}

func (m Model) updateInsert(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Command):
		m.mode = ModeCommand
		m.command = ""
	case key.Matches(msg, km.Escape):
		return m.quit()

	case key.Matches(msg, km.Copy):
		m.copyLine()
	case key.Matches(msg, km.Paste):
		m.buf.InsertText(m.clipboard)
	case key.Matches(msg, km.Undo):
		_ = m.buf.Undo()
	case key.Matches(msg, km.Redo):
		_ = m.buf.Redo()

	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Enter):
		m.buf.InsertNewline()

	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.DirLeft)
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.DirRight)
	case key.Matches(msg, km.Up):
		m.buf.Move(buffer.DirUp)
	case key.Matches(msg, km.Down):
		m.buf.Move(buffer.DirDown)

	default:
		if r, ok := typedRunes(msg); ok {
			for _, c := range r {
				m.buf.InsertRune(c)
			}
		}
	}
	return m, nil
}

func (m Model) updateCommandLine(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Escape):
		m.command = ""
		m.mode = ModeInsert
	case key.Matches(msg, km.Enter):
		return m.execCommand()
	case key.Matches(msg, km.Backspace):
		m.command = dropLastRune(m.command)
	default:
		if r, ok := typedRunes(msg); ok {
			m.command += string(r)
		}
	}
	return m, nil
}

func (m Model) updateFilenamePrompt(ov FilenamePrompt, msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Escape):
		m.overlay = nil
	case key.Matches(msg, km.Enter):
		m.overlay = nil
		if err := m.save(ov.Input); err == nil && ov.QuitAfterSave {
			return m.quit()
		}
	case key.Matches(msg, km.Backspace):
		ov.Input = dropLastRune(ov.Input)
		m.overlay = ov
	default:
		if r, ok := typedRunes(msg); ok {
			ov.Input += string(r)
			m.overlay = ov
		}
	}
	return m, nil
}

func (m Model) updateConfirmExit(ov ConfirmExit, msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Yes):
		if !ov.PendingSave {
			return m.quit()
		}
		name := m.buf.Filename()
		if name == "" {
			m.overlay = FilenamePrompt{QuitAfterSave: true}
			return m, nil
		}
		m.overlay = nil
		if err := m.save(name); err != nil {
			return m, nil
		}
		return m.quit()
	case key.Matches(msg, km.No):
		return m.quit()
	case key.Matches(msg, km.Escape):
		m.overlay = nil
	}
	return m, nil
}

// copyLine puts the whole cursor line in the clipboard register.
func (m *Model) copyLine() {
	m.clipboard = m.buf.CurrentLine()
	if m.cfg.Clipboard == nil {
		return
	}
	if err := m.cfg.Clipboard.WriteText(m.clipboard); err != nil {
		log.Printf("quill: clipboard: %v", err)
	}
}

// typedRunes returns the text of a plain character key. Alt chords and
// control keys yield nothing.
func typedRunes(msg tea.KeyMsg) ([]rune, bool) {
	if msg.Alt || len(msg.Runes) == 0 {
		return nil, false
	}
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		return msg.Runes, true
	default:
		return nil, false
	}
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

// Normalize newlines from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
