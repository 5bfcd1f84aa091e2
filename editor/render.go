package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/internal/cells"
)

const noName = "[No Name]"

func (m Model) View() string {
	return strings.Join([]string{
		m.withDialog(m.viewport.View()),
		m.statusLine(),
		m.bottomLine(),
	}, "\n")
}

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	lines := m.buf.Lines()
	cursor := m.buf.Cursor()
	showCursor := m.cursorInText()
	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(len(lines))
	}

	left := m.xOffset
	width := m.contentWidth()
	if width <= 0 {
		left, width = 0, int(^uint(0)>>1)
	}

	out := make([]string, 0, len(lines))
	for row, line := range lines {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		if !showCursor || row != cursor.Row {
			text := cells.ExpandTabs(line, 0, m.cfg.TabWidth)
			sb.WriteString(m.cfg.Style.Text.Render(clipAt(text, 0, left, width)))
			out = append(out, sb.String())
			continue
		}

		pre, at, post, cx, cw := m.splitAtCursor(line, cursor.Col)
		sb.WriteString(m.cfg.Style.Text.Render(clipAt(pre, 0, left, width)))
		if cx >= left && cx+cw <= left+width {
			sb.WriteString(m.cfg.Style.Cursor.Render(at))
		}
		sb.WriteString(m.cfg.Style.Text.Render(clipAt(post, cx+cw, left, width)))
		out = append(out, sb.String())
	}

	return strings.Join(out, "\n")
}

// splitAtCursor expands tabs in line and splits it around the rune at col.
// At end of line the cursor cell is a blank. cx and cw are the cursor cell's
// column and width.
func (m *Model) splitAtCursor(line string, col int) (pre, at, post string, cx, cw int) {
	runes := []rune(line)
	if col > len(runes) {
		col = len(runes)
	}
	pre = cells.ExpandTabs(string(runes[:col]), 0, m.cfg.TabWidth)
	cx = cells.Width(pre)

	at = " "
	rest := ""
	if col < len(runes) {
		at = cells.ExpandTabs(string(runes[col]), cx, m.cfg.TabWidth)
		rest = string(runes[col+1:])
	}
	cw = cells.Width(at)
	if cw == 0 {
		// Zero-width runes still need a visible cursor cell.
		at += " "
		cw = 1
	}
	post = cells.ExpandTabs(rest, cx+cw, m.cfg.TabWidth)
	return pre, at, post, cx, cw
}

// cursorCells returns the display column and width of the cursor cell.
func (m *Model) cursorCells() (cx, cw int) {
	cur := m.buf.Cursor()
	_, _, _, cx, cw = m.splitAtCursor(m.buf.Line(cur.Row), cur.Col)
	return cx, cw
}

func (m Model) cursorInText() bool {
	return m.mode == ModeInsert && m.overlay == nil && !m.quitting
}

func (m Model) contentWidth() int {
	w := m.viewport.Width
	if m.cfg.ShowLineNums && m.buf != nil {
		w -= gutterDigits(m.buf.LineCount()) + 1
	}
	return w
}

func (m Model) statusLine() string {
	s := m.buf.State()

	name := s.Filename
	if name == "" {
		name = noName
	}
	flag := ""
	style := m.cfg.Style.Status
	if s.Dirty {
		flag = " [+]"
		style = m.cfg.Style.StatusDirty
	}

	parts := []string{
		name + flag,
		fmt.Sprintf("Ln %d/%d, Col %d", s.Cursor.Row+1, len(s.Lines), s.Cursor.Col+1),
		m.mode.String(),
	}
	if d := m.diffStat(); !d.IsZero() {
		parts = append(parts, d.String())
	}
	line := " " + strings.Join(parts, " | ") + " "

	if m.width > 0 {
		line = cells.Truncate(line, m.width, "…")
		return style.Width(m.width).Render(line)
	}
	return style.Render(line)
}

func (m Model) bottomLine() string {
	var line string
	switch {
	case m.overlay != nil:
		line = m.cfg.Style.Prompt.Render(m.promptText()) + m.cfg.Style.Cursor.Render(" ")
	case m.mode == ModeCommand:
		line = m.cfg.Style.CommandLine.Render(":"+m.command) + m.cfg.Style.Cursor.Render(" ")
	case m.status != "" && m.statusErr:
		line = m.cfg.Style.Error.Render(m.status)
	case m.status != "":
		line = m.cfg.Style.Message.Render(m.status)
	default:
		line = m.help.View(m.cfg.KeyMap)
	}

	if m.width > 0 && lipgloss.Width(line) > m.width {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}
	return line
}

// clipAt returns the part of s, which starts at display column start, that
// falls inside [left, left+width).
func clipAt(s string, start, left, width int) string {
	lo := maxInt(left-start, 0)
	hi := left + width - start
	if hi <= lo {
		return ""
	}
	return cells.Clip(s, lo, hi-lo)
}

func gutterDigits(lines int) int {
	if lines < 1 {
		lines = 1
	}
	return len(fmt.Sprint(lines))
}
