package editor

// Mode selects which input stream keystrokes feed when no overlay is active.
type Mode int

const (
	ModeInsert Mode = iota
	ModeCommand
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// Overlay is a modal dialog that captures all key input until it is
// resolved or cancelled. A nil Overlay means none is active.
type Overlay interface {
	isOverlay()
}

// FilenamePrompt asks for the name to save under.
type FilenamePrompt struct {
	Input string
	// QuitAfterSave ends the session once the prompted save succeeds.
	QuitAfterSave bool
}

// ConfirmExit asks whether unsaved changes should be saved before quitting.
type ConfirmExit struct {
	// PendingSave makes a "yes" answer save before quitting.
	PendingSave bool
}

func (FilenamePrompt) isOverlay() {}
func (ConfirmExit) isOverlay()    {}
