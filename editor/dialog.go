package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// withDialog draws the active overlay as a bordered box centred on the text
// area. When the box does not fit, the text area is returned unchanged and
// the question is only shown on the bottom line.
func (m Model) withDialog(base string) string {
	if m.overlay == nil {
		return base
	}
	w, h := m.viewport.Width, m.viewport.Height
	if w <= 0 || h <= 0 {
		return base
	}

	box := m.dialogBox()
	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	if bw > w || bh > h {
		return base
	}
	return overlay.Composite(box, base, overlay.Left, overlay.Top, (w-bw)/2, (h-bh)/2)
}

func (m Model) dialogBox() string {
	var title, body string
	switch ov := m.overlay.(type) {
	case FilenamePrompt:
		title = "Save as"
		body = ov.Input + m.cfg.Style.Cursor.Render(" ")
	case ConfirmExit:
		name := m.buf.Filename()
		if name == "" {
			name = noName
		}
		title = "Save changes to " + name + "?"
		body = "y save · n discard · esc cancel"
	default:
		return ""
	}

	lines := []string{m.cfg.Style.Prompt.Render(title), body}
	return m.cfg.Style.Dialog.
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
