package editor

import "github.com/iw2rmb/quill/internal/fileio"

// Config configures the editor Model.
type Config struct {
	// Filename is loaded at startup. A missing or unreadable file yields a
	// single empty line; the name is kept as the save target either way.
	Filename string

	// Storage loads and saves documents. Defaults to the local file system.
	Storage Storage

	// Clipboard, if set, mirrors every line copy to the host clipboard.
	Clipboard Clipboard

	KeyMap KeyMap
	// Style is plain text when left zero; see DefaultStyle.
	Style Style

	// Rendering options.
	ShowLineNums bool
	TabWidth     int

	// Forwarded to buffer.Options.
	HistoryLimit    int
	DisableAutoPair bool

	// OnChange is called after an update that changed the document or cursor.
	OnChange func(ChangeEvent)
}

func (c Config) withDefaults() Config {
	if c.Storage == nil {
		c.Storage = fileio.Files{}
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	return c
}
