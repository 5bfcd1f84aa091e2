// Package editor provides quill's Bubble Tea editor component backed by the
// buffer package.
//
// The package owns the interaction state: the Insert and Command modes, the
// filename prompt and exit confirmation overlays, the ':' command line, the
// single-line clipboard register, and rendering of the text area and status
// lines.
package editor
