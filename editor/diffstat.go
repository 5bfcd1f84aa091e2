package editor

import (
	"fmt"
	"strings"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffStat counts lines added and removed relative to the last loaded or
// saved document.
type DiffStat struct {
	Added   int
	Removed int
}

func (d DiffStat) IsZero() bool { return d.Added == 0 && d.Removed == 0 }

func (d DiffStat) String() string {
	return fmt.Sprintf("+%d -%d", d.Added, d.Removed)
}

// lineDiff compares two documents line by line.
func lineDiff(before, after []string) DiffStat {
	a := strings.Join(before, "\n") + "\n"
	b := strings.Join(after, "\n") + "\n"
	if a == b {
		return DiffStat{}
	}

	d := dmp.New()
	ca, cb, lines := d.DiffLinesToChars(a, b)
	diffs := d.DiffCharsToLines(d.DiffMain(ca, cb, false), lines)

	var st DiffStat
	for _, df := range diffs {
		n := strings.Count(df.Text, "\n")
		switch df.Type {
		case dmp.DiffInsert:
			st.Added += n
		case dmp.DiffDelete:
			st.Removed += n
		}
	}
	return st
}

func (m Model) diffStat() DiffStat {
	return lineDiff(m.baseline, m.buf.Lines())
}
