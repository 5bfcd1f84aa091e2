package sysclip

import (
	"errors"
	"testing"
)

func TestClipboard_UnsupportedHost(t *testing.T) {
	if Available() {
		t.Skip("host has a clipboard utility")
	}

	var c Clipboard
	if err := c.WriteText("x"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("write: got %v, want ErrUnsupported", err)
	}
	if _, err := c.ReadText(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("read: got %v, want ErrUnsupported", err)
	}
}
