// Package editor defines the document surface the uploader mutates and an
// in-memory implementation of it used by the CLI host and tests.
package editor

// Pos addresses a character in a buffer. Line and Ch are zero-based.
type Pos struct {
	Line int
	Ch   int
}

// Editor is the host document collaborator. Implementations are not required
// to be safe for concurrent use; callers serialize mutations.
type Editor interface {
	// Value returns the full document text.
	Value() string

	// ReplaceSelection inserts text at the current cursor position and
	// moves the cursor past the inserted text.
	ReplaceSelection(text string)

	// SetCursor moves the cursor.
	SetCursor(pos Pos)

	// ReplaceRange replaces the [from, to) region with text.
	ReplaceRange(text string, from, to Pos)
}
