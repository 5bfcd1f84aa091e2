package editor

import "github.com/iw2rmb/quill/buffer"

type ChangeEvent struct {
	Version uint64
	Cursor  buffer.Pos
	Dirty   bool

	// v0: simplest payload; host can diff if needed.
	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	return ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Dirty:   b.Dirty(),
		Text:    b.Text(),
	}
}
