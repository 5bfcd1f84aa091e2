// Package cells measures and slices text in terminal cells.
package cells

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// DefaultTabWidth is the tab stop distance used when none is configured.
const DefaultTabWidth = 4

// ClusterWidth returns the cell width of a single grapheme cluster.
func ClusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(cluster)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

// Width returns the cell width of text. Tabs must be expanded first.
func Width(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n += ClusterWidth(g.Str())
	}
	return n
}

// ExpandTabs replaces tabs with spaces up to the next tab stop, assuming text
// starts at cell column startCol.
func ExpandTabs(text string, startCol, tabWidth int) string {
	if !strings.ContainsRune(text, '\t') {
		return text
	}
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}

	var sb strings.Builder
	col := startCol
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		c := g.Str()
		if c == "\t" {
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteString(c)
		col += ClusterWidth(c)
	}
	return sb.String()
}

// Clip returns the part of text visible in cell columns [left, left+width).
// Clusters that straddle either edge are dropped.
func Clip(text string, left, width int) string {
	if text == "" || width <= 0 {
		return ""
	}
	if left < 0 {
		left = 0
	}
	right := left + width

	var sb strings.Builder
	col := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		c := g.Str()
		w := ClusterWidth(c)
		if col >= right {
			break
		}
		if col >= left && col+w <= right {
			sb.WriteString(c)
		}
		col += w
	}
	return sb.String()
}

// Truncate shortens text to at most width cells, ending with tail when cut.
func Truncate(text string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, tail)
}
