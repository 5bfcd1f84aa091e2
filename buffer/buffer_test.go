package buffer

import (
	"reflect"
	"testing"
)

func TestBuffer_New_AlwaysHasALine(t *testing.T) {
	b := New("", Options{})
	if got, want := b.Lines(), []string{""}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor=%v, want (0,0)", got)
	}

	b = NewFromLines(nil, Options{})
	if got, want := b.LineCount(), 1; got != want {
		t.Fatalf("line count=%d, want %d", got, want)
	}
	if b.Dirty() {
		t.Fatalf("expected fresh buffer to be clean")
	}
}

func TestBuffer_NewFromLines_CopiesInput(t *testing.T) {
	in := []string{"ab", "cd"}
	b := NewFromLines(in, Options{})
	in[0] = "zz"

	if got, want := b.Text(), "ab\ncd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_SetCursor_ClampsAndVersions(t *testing.T) {
	b := New("a\nbc", Options{})
	if b.Version() != 0 {
		t.Fatalf("expected version 0, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 999, Col: 999})
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v, want (1,2)", got)
	}
	if b.Version() != 1 {
		t.Fatalf("expected version 1, got %d", b.Version())
	}

	b.SetCursor(Pos{Row: 1, Col: 2})
	if b.Version() != 1 {
		t.Fatalf("expected version unchanged, got %d", b.Version())
	}
	if b.Dirty() {
		t.Fatalf("cursor moves must not mark the buffer dirty")
	}
}

func TestBuffer_LineAccessors(t *testing.T) {
	b := New("one\ntwo", Options{})
	b.SetCursor(Pos{Row: 1, Col: 1})

	if got, want := b.CurrentLine(), "two"; got != want {
		t.Fatalf("current line=%q, want %q", got, want)
	}
	if got := b.Line(7); got != "" {
		t.Fatalf("out of range line=%q, want empty", got)
	}
	if got := b.Line(-1); got != "" {
		t.Fatalf("negative line=%q, want empty", got)
	}
}

func TestBuffer_State_IsDetached(t *testing.T) {
	b := New("abc", Options{})
	s := b.State()
	s.Lines[0] = "zzz"

	if got, want := b.Line(0), "abc"; got != want {
		t.Fatalf("line after mutating state copy=%q, want %q", got, want)
	}
}

func TestBuffer_MarkSaved_ClearsDirty(t *testing.T) {
	b := New("", Options{})
	b.InsertRune('x')
	if !b.Dirty() {
		t.Fatalf("expected dirty after insert")
	}

	v := b.Version()
	b.MarkSaved("notes.txt")
	if b.Dirty() {
		t.Fatalf("expected clean after save")
	}
	if got, want := b.Filename(), "notes.txt"; got != want {
		t.Fatalf("filename=%q, want %q", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
	if got, want := b.UndoDepth(), 1; got != want {
		t.Fatalf("saving must not touch history: undo depth=%d, want %d", got, want)
	}
}

func TestBuffer_SetFilename_KeepsDirty(t *testing.T) {
	b := New("", Options{})
	b.SetFilename("a.txt")
	if b.Dirty() {
		t.Fatalf("naming must not mark dirty")
	}
	if got, want := b.Filename(), "a.txt"; got != want {
		t.Fatalf("filename=%q, want %q", got, want)
	}
}
