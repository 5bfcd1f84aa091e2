package buffer

import "strings"

// DefaultHistoryLimit is the undo depth used when Options.HistoryLimit is 0.
const DefaultHistoryLimit = 50

type Options struct {
	HistoryLimit    int  // default: 50; negative disables history
	DisableAutoPair bool // when set, brackets and quotes insert a single rune
}

// Buffer is the editable document: lines, cursor, filename, and dirty flag.
type Buffer struct {
	lines   [][]rune
	version uint64

	cursor   Pos
	filename string
	dirty    bool

	opt  Options
	hist historyState
}

// New returns a buffer holding text split on '\n'.
func New(text string, opt Options) *Buffer {
	return newBuffer(splitLines(text), opt)
}

// NewFromLines returns a buffer holding a copy of lines. An empty slice
// yields a single empty line.
func NewFromLines(lines []string, opt Options) *Buffer {
	rs := make([][]rune, 0, len(lines))
	for _, s := range lines {
		rs = append(rs, []rune(s))
	}
	if len(rs) == 0 {
		rs = append(rs, nil)
	}
	return newBuffer(rs, opt)
}

func newBuffer(lines [][]rune, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = DefaultHistoryLimit
	}
	return &Buffer{
		lines:   lines,
		version: 0,
		cursor:  Pos{Row: 0, Col: 0},
		opt:     opt,
	}
}

func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Lines returns a copy of the document lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, line := range b.lines {
		out[i] = string(line)
	}
	return out
}

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// CurrentLine returns the text of the cursor's line.
func (b *Buffer) CurrentLine() string { return b.Line(b.cursor.Row) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) Filename() string { return b.filename }

func (b *Buffer) Dirty() bool { return b.dirty }

// State returns a deep copy of the document state.
func (b *Buffer) State() State {
	return State{
		Lines:    b.Lines(),
		Cursor:   b.cursor,
		Filename: b.filename,
		Dirty:    b.dirty,
	}
}

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// SetFilename names the document without touching the dirty flag.
func (b *Buffer) SetFilename(name string) {
	if name == b.filename {
		return
	}
	b.filename = name
	b.version++
}

// MarkSaved records a successful save to name and clears the dirty flag.
func (b *Buffer) MarkSaved(name string) {
	b.filename = name
	b.dirty = false
	b.version++
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

// clamp pulls the cursor back inside the document after a structural change.
func (b *Buffer) clamp() {
	b.cursor = b.clampPos(b.cursor)
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}

func cloneLines(lines [][]rune) [][]rune {
	out := make([][]rune, len(lines))
	for i, line := range lines {
		out[i] = append([]rune(nil), line...)
	}
	return out
}
