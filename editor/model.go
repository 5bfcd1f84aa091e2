package editor

import (
	"errors"
	"io/fs"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

// footerHeight is the number of rows below the text area: the status line
// and the command/prompt/message line.
const footerHeight = 2

// Model is a Bubble Tea component holding one editing session.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	mode      Mode
	command   string
	overlay   Overlay
	clipboard string

	status    string
	statusErr bool
	quitting  bool

	// baseline is the document as last loaded or saved.
	baseline []string

	width, height int
	viewport      viewport.Model
	help          help.Model
	xOffset       int

	lastBufVersion uint64
	lastCursor     buffer.Pos
}

// New creates a session, loading cfg.Filename if set.
func New(cfg Config) Model {
	cfg = cfg.withDefaults()

	var lines []string
	if cfg.Filename != "" {
		loaded, err := cfg.Storage.Load(cfg.Filename)
		switch {
		case err == nil:
			lines = loaded
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("quill: %s does not exist, starting empty", cfg.Filename)
		default:
			log.Printf("quill: load %s: %v", cfg.Filename, err)
		}
	}

	buf := buffer.NewFromLines(lines, buffer.Options{
		HistoryLimit:    cfg.HistoryLimit,
		DisableAutoPair: cfg.DisableAutoPair,
	})
	buf.SetFilename(cfg.Filename)

	m := Model{
		cfg:      cfg,
		buf:      buf,
		mode:     ModeInsert,
		baseline: buf.Lines(),
		viewport: viewport.New(0, 0),
		help:     help.New(),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Mode() Mode { return m.mode }

// Command returns the pending command line text (without the ':').
func (m Model) Command() string { return m.command }

// Overlay returns the active overlay, or nil.
func (m Model) Overlay() Overlay { return m.overlay }

// Clipboard returns the internal clipboard register.
func (m Model) Clipboard() string { return m.clipboard }

// Status returns the status message and whether it reports an error.
func (m Model) Status() (string, bool) { return m.status, m.statusErr }

// Quitting reports whether the session has ended.
func (m Model) Quitting() bool { return m.quitting }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width, m.height = width, height
	m.viewport.Width = width
	m.viewport.Height = maxInt(height-footerHeight, 0)
	m.help.Width = width

	m.followCursor()
	m.rebuildContent()
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	}

	// Hosts may also mutate the buffer directly between updates.
	m.syncFromBuffer()
	return m, cmd
}

func (m *Model) syncFromBuffer() {
	if m.buf == nil {
		return
	}
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	changed := ver != m.lastBufVersion || cur != m.lastCursor
	m.lastBufVersion = ver
	m.lastCursor = cur

	m.followCursor()
	m.rebuildContent()

	if changed && m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// followCursor scrolls the text area so the cursor cell is visible.
func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	cur := m.buf.Cursor()

	if h := m.viewport.Height; h > 0 {
		y := m.viewport.YOffset
		switch {
		case cur.Row < y:
			m.viewport.YOffset = cur.Row
		case cur.Row >= y+h:
			m.viewport.YOffset = cur.Row - h + 1
		}
	}

	w := m.contentWidth()
	if w <= 0 {
		m.xOffset = 0
		return
	}
	cx, cw := m.cursorCells()
	switch {
	case cx < m.xOffset:
		m.xOffset = cx
	case cx+cw > m.xOffset+w:
		m.xOffset = cx + cw - w
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
