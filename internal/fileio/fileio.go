// Package fileio reads and writes documents as newline-separated lines.
package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const defaultPerm fs.FileMode = 0o644

// ErrEmptyPath is returned when a load or save is attempted without a path.
var ErrEmptyPath = errors.New("fileio: empty path")

// SplitLines splits text into lines. A trailing newline does not start an
// extra line, "\r\n" endings are accepted, and empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// JoinLines joins lines with '\n' and adds no trailing newline.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// Files loads and saves documents on the local file system.
type Files struct{}

// Load reads path and splits it into lines.
func (Files) Load(path string) ([]string, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return SplitLines(string(data)), nil
}

// Save replaces the contents of path with the joined lines. A new file gets
// mode 0644; an existing file keeps its mode.
func (Files) Save(path string, lines []string) error {
	if path == "" {
		return ErrEmptyPath
	}
	perm := defaultPerm
	if fi, err := os.Stat(path); err == nil {
		if fi.IsDir() {
			return fmt.Errorf("save %s: is a directory", path)
		}
		perm = fi.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(JoinLines(lines)), perm); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
