package buffer

import "strings"

// closers maps the auto-paired openers to the rune inserted after them.
var closers = map[rune]rune{
	'(':  ')',
	'{':  '}',
	'[':  ']',
	'"':  '"',
	'\'': '\'',
}

// Closer reports the rune auto-inserted after r, if r is an opener.
func Closer(r rune) (rune, bool) {
	c, ok := closers[r]
	return c, ok
}

// InsertRune inserts r at the cursor. Openers are followed by their closer
// with the cursor left between the pair; nothing ever consumes the closer.
func (b *Buffer) InsertRune(r rune) {
	b.recordUndo()

	row, col := b.cursor.Row, b.cursor.Col
	ins := []rune{r}
	if closer, ok := Closer(r); ok && !b.opt.DisableAutoPair {
		ins = append(ins, closer)
	}
	b.lines[row] = spliceRunes(b.lines[row], col, ins)
	b.cursor.Col = col + 1

	b.clamp()
	b.version++
}

// InsertText inserts s at the cursor as a single undoable step and leaves
// the cursor after the inserted text. '\n' in s starts a new line. Empty s is
// a no-op.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}
	b.recordUndo()

	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]
	prefix := append([]rune(nil), line[:col]...)
	suffix := append([]rune(nil), line[col:]...)

	parts := strings.Split(s, "\n")
	repl := make([][]rune, 0, len(parts))
	for i, p := range parts {
		var l []rune
		if i == 0 {
			l = append(l, prefix...)
		}
		l = append(l, []rune(p)...)
		repl = append(repl, l)
	}
	last := len(repl) - 1
	nextCol := len(repl[last])
	repl[last] = append(repl[last], suffix...)

	b.lines = spliceLines(b.lines, row, 1, repl)
	b.cursor = Pos{Row: row + last, Col: nextCol}

	b.clamp()
	b.version++
}

// InsertNewline splits the cursor's line at the cursor and moves to the
// start of the new line.
func (b *Buffer) InsertNewline() {
	b.recordUndo()

	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]
	left := append([]rune(nil), line[:col]...)
	right := append([]rune(nil), line[col:]...)

	b.lines = spliceLines(b.lines, row, 1, [][]rune{left, right})
	b.cursor = Pos{Row: row + 1, Col: 0}

	b.clamp()
	b.version++
}

// DeleteBackward applies backspace semantics. At (0,0) it does nothing and
// records no history.
func (b *Buffer) DeleteBackward() {
	row, col := b.cursor.Row, b.cursor.Col
	if row == 0 && col == 0 {
		return
	}
	b.recordUndo()

	if col > 0 {
		line := b.lines[row]
		next := make([]rune, 0, len(line)-1)
		next = append(next, line[:col-1]...)
		next = append(next, line[col:]...)
		b.lines[row] = next
		b.cursor.Col = col - 1
	} else {
		// Join with previous line.
		prevRow := row - 1
		prevLen := len(b.lines[prevRow])
		joined := make([]rune, 0, prevLen+len(b.lines[row]))
		joined = append(joined, b.lines[prevRow]...)
		joined = append(joined, b.lines[row]...)
		b.lines = spliceLines(b.lines, prevRow, 2, [][]rune{joined})
		b.cursor = Pos{Row: prevRow, Col: prevLen}
	}

	b.clamp()
	b.version++
}

func spliceRunes(line []rune, at int, ins []rune) []rune {
	out := make([]rune, 0, len(line)+len(ins))
	out = append(out, line[:at]...)
	out = append(out, ins...)
	out = append(out, line[at:]...)
	return out
}

// spliceLines replaces n lines starting at row with repl.
func spliceLines(lines [][]rune, row, n int, repl [][]rune) [][]rune {
	out := make([][]rune, 0, len(lines)-n+len(repl))
	out = append(out, lines[:row]...)
	out = append(out, repl...)
	out = append(out, lines[row+n:]...)
	return out
}
