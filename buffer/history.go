package buffer

type bufferSnapshot struct {
	lines    [][]rune
	cursor   Pos
	filename string
	dirty    bool
}

type historyState struct {
	undo []bufferSnapshot
	redo []bufferSnapshot
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{
		lines:    cloneLines(b.lines),
		cursor:   b.cursor,
		filename: b.filename,
		dirty:    b.dirty,
	}
}

func (b *Buffer) restore(s bufferSnapshot) {
	b.lines = cloneLines(s.lines)
	b.cursor = s.cursor
	b.filename = s.filename
	b.dirty = s.dirty
	b.clamp()
}

// recordUndo must run before a mutation is applied. It pushes the current
// state, drops the redo history, evicts the oldest entry past the limit, and
// marks the live state dirty.
func (b *Buffer) recordUndo() {
	if limit := b.opt.HistoryLimit; limit > 0 {
		b.hist.undo = append(b.hist.undo, b.snapshot())
		if len(b.hist.undo) > limit {
			b.hist.undo = append([]bufferSnapshot(nil), b.hist.undo[len(b.hist.undo)-limit:]...)
		}
	}
	b.hist.redo = nil
	b.dirty = true
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

func (b *Buffer) UndoDepth() int { return len(b.hist.undo) }

func (b *Buffer) RedoDepth() int { return len(b.hist.redo) }

func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 {
		return false
	}

	cur := b.snapshot()

	i := len(b.hist.undo) - 1
	prev := b.hist.undo[i]
	b.hist.undo = b.hist.undo[:i]
	b.hist.redo = append(b.hist.redo, cur)

	b.restore(prev)
	b.version++
	return true
}

func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 {
		return false
	}

	cur := b.snapshot()

	i := len(b.hist.redo) - 1
	next := b.hist.redo[i]
	b.hist.redo = b.hist.redo[:i]

	limit := b.opt.HistoryLimit
	if limit > 0 {
		b.hist.undo = append(b.hist.undo, cur)
		if len(b.hist.undo) > limit {
			b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
		}
	}

	b.restore(next)
	b.version++
	return true
}
