package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/quill/buffer"
)

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	st := newMemStorage()
	st.files["f"] = []string{"ab"}
	m := New(Config{
		Filename: "f",
		Storage:  st,
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})
	events = nil

	m, _ = press(m, tea.KeyRight)
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want %d", len(events), 1)
	}
	if got := events[0].Text; got != "ab" {
		t.Fatalf("event text after move: got %q, want %q", got, "ab")
	}
	if got := events[0].Cursor; got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("event cursor after move: got %v, want %v", got, buffer.Pos{Row: 0, Col: 1})
	}
	if events[0].Dirty {
		t.Fatalf("moving must not report a dirty buffer")
	}

	m, _ = press(m, tea.KeyRight) // to EOL
	if len(events) != 2 {
		t.Fatalf("events after move to EOL: got %d, want %d", len(events), 2)
	}

	m, _ = press(m, tea.KeyRight) // no-op at EOL
	if len(events) != 2 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 2)
	}

	m = typeText(m, "X")
	if len(events) != 3 {
		t.Fatalf("events after insert: got %d, want %d", len(events), 3)
	}
	if got := events[2].Text; got != "abX" {
		t.Fatalf("event text after insert: got %q, want %q", got, "abX")
	}
	if !events[2].Dirty {
		t.Fatalf("insert should report a dirty buffer")
	}

	// Typing on the command line touches neither text nor cursor.
	m = typeText(m, ":zz")
	if len(events) != 3 {
		t.Fatalf("events after command input: got %d, want %d", len(events), 3)
	}

	m, _ = press(m, tea.KeyEsc)
	_, _ = runCommand(m, "w")
	if len(events) != 4 {
		t.Fatalf("events after save: got %d, want %d", len(events), 4)
	}
	if events[3].Dirty {
		t.Fatalf("save should report a clean buffer")
	}
}

func TestOnChange_SeesHostMutations(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Storage:  newMemStorage(),
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})

	m.Buffer().InsertText("host")
	m, _ = m.Update(nil)
	if len(events) != 1 || events[0].Text != "host" {
		t.Fatalf("events: got %+v, want one event with text %q", events, "host")
	}
	if events[0].Version != m.Buffer().Version() {
		t.Fatalf("version: got %d, want %d", events[0].Version, m.Buffer().Version())
	}
}
