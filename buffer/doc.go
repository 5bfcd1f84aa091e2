// Package buffer implements quill's document model, its bounded snapshot
// history, and the editing operations that mutate it.
//
// Coordinates are 0-based (Row, Col) in runes. Every mutating operation
// records a snapshot of the prior state before it changes anything, and the
// cursor is clamped into the document after every structural change.
package buffer
