package buffer

import "testing"

func TestBuffer_Move_BoundsAndLineCrossing(t *testing.T) {
	b := New("ab\nçd", Options{})

	b.SetCursor(Pos{Row: 0, Col: 0})
	b.Move(DirLeft)
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 0}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}

	b.Move(DirRight)
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor=%v, want (0,1)", got)
	}

	b.SetCursor(Pos{Row: 0, Col: 2})
	b.Move(DirRight)
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 0}) {
		t.Fatalf("cursor=%v, want (1,0)", got)
	}

	b.Move(DirLeft)
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor=%v, want (0,2)", got)
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	v := b.Version()
	b.Move(DirRight)
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if got := b.Version(); got != v {
		t.Fatalf("no-op move bumped version: %d, want %d", got, v)
	}
}

func TestBuffer_Move_VerticalClamp(t *testing.T) {
	b := New("hello\nw\nworld", Options{})

	b.SetCursor(Pos{Row: 2, Col: 5})
	b.Move(DirUp)
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 1}) {
		t.Fatalf("cursor=%v, want (1,1)", got)
	}

	b.Move(DirUp)
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor=%v, want (0,1)", got)
	}

	b.Move(DirUp)
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor=%v, want (0,1)", got)
	}

	b.SetCursor(Pos{Row: 0, Col: 4})
	b.Move(DirDown)
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 1}) {
		t.Fatalf("cursor=%v, want (1,1)", got)
	}
	b.Move(DirDown)
	b.Move(DirDown)
	if got := b.Cursor(); got != (Pos{Row: 2, Col: 1}) {
		t.Fatalf("cursor=%v, want (2,1)", got)
	}
}

func TestBuffer_Move_NeverRecordsHistory(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.Move(DirRight)
	b.Move(DirDown)
	b.Move(DirLeft)
	b.Move(DirUp)

	if b.CanUndo() {
		t.Fatalf("expected motion to leave history empty")
	}
	if b.Dirty() {
		t.Fatalf("expected motion to leave the buffer clean")
	}
}
