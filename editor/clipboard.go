package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; failures are logged and ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// Storage is the persistence boundary: whole documents in, whole documents
// out, one line per element.
type Storage interface {
	Load(path string) ([]string, error)
	Save(path string, lines []string) error
}
