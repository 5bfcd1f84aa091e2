package fileio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{text: "", want: nil},
		{text: "a", want: []string{"a"}},
		{text: "a\nb", want: []string{"a", "b"}},
		{text: "a\nb\n", want: []string{"a", "b"}},
		{text: "a\r\nb\r\n", want: []string{"a", "b"}},
		{text: "\n", want: []string{""}},
		{text: "a\n\nb", want: []string{"a", "", "b"}},
	}

	for _, tc := range cases {
		if got := SplitLines(tc.text); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitLines(%q): got %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestJoinLines_NoTrailingNewline(t *testing.T) {
	if got, want := JoinLines([]string{"hi", ""}), "hi\n"; got != want {
		t.Fatalf("join: got %q, want %q", got, want)
	}
	if got, want := JoinLines([]string{"a", "b"}), "a\nb"; got != want {
		t.Fatalf("join: got %q, want %q", got, want)
	}
	if got := JoinLines(nil); got != "" {
		t.Fatalf("join nil: got %q, want empty", got)
	}
}

func TestFiles_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	var f Files

	if err := f.Save(path, []string{"one", "two"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got, want := string(data), "one\ntwo"; got != want {
		t.Fatalf("file contents: got %q, want %q", got, want)
	}

	lines, err := f.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got, want := lines, []string{"one", "two"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines: got %q, want %q", got, want)
	}
}

func TestFiles_SaveReplacesAndKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("old contents that are longer"), 0o600); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := (Files{}).Save(path, []string{"new"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, _ := os.ReadFile(path)
	if got, want := string(data), "new"; got != want {
		t.Fatalf("file contents: got %q, want %q", got, want)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if got, want := fi.Mode().Perm(), fs.FileMode(0o600); got != want {
		t.Fatalf("mode: got %v, want %v", got, want)
	}
}

func TestFiles_LoadMissing(t *testing.T) {
	_, err := (Files{}).Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("load missing: got %v, want fs.ErrNotExist in chain", err)
	}
}

func TestFiles_EmptyPath(t *testing.T) {
	var f Files
	if _, err := f.Load(""); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("load: got %v, want ErrEmptyPath", err)
	}
	if err := f.Save("", nil); !errors.Is(err, ErrEmptyPath) {
		t.Fatalf("save: got %v, want ErrEmptyPath", err)
	}
}

func TestFiles_SaveIntoMissingDirFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "doc.txt")
	if err := (Files{}).Save(path, []string{"x"}); err == nil {
		t.Fatalf("expected an error saving into a missing directory")
	}
}
