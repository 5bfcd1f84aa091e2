package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text   lipgloss.Style
	Cursor lipgloss.Style

	Status      lipgloss.Style
	StatusDirty lipgloss.Style
	CommandLine lipgloss.Style
	Prompt      lipgloss.Style
	Message     lipgloss.Style
	Error       lipgloss.Style

	// Dialog frames the save and exit questions drawn over the text.
	Dialog lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		StatusDirty:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Background(lipgloss.Color("236")).Bold(true),
		CommandLine:   lipgloss.NewStyle(),
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Bold(true),
		Message:       lipgloss.NewStyle().Faint(true),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}),
		Dialog:        lipgloss.NewStyle().BorderForeground(lipgloss.Color("63")),
	}
}
