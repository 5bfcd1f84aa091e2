package editor

import "github.com/iw2rmb/quill/buffer"

// ViewState is a read-only copy of everything a renderer needs to paint the
// session and place the terminal cursor.
type ViewState struct {
	Lines    []string
	Cursor   buffer.Pos
	Dirty    bool
	Filename string

	Mode    Mode
	Command string
	Overlay Overlay
	// Prompt is the overlay's question and current answer, if any.
	Prompt string

	Status    string
	StatusErr bool
	Diff      DiffStat
}

// State captures the session after the latest update.
func (m Model) State() ViewState {
	s := m.buf.State()
	return ViewState{
		Lines:     s.Lines,
		Cursor:    s.Cursor,
		Dirty:     s.Dirty,
		Filename:  s.Filename,
		Mode:      m.mode,
		Command:   m.command,
		Overlay:   m.overlay,
		Prompt:    m.promptText(),
		Status:    m.status,
		StatusErr: m.statusErr,
		Diff:      m.diffStat(),
	}
}

func (m Model) promptText() string {
	switch ov := m.overlay.(type) {
	case FilenamePrompt:
		return "File name: " + ov.Input
	case ConfirmExit:
		return "Save changes? (y/n)"
	default:
		return ""
	}
}
