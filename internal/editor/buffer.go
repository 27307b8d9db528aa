package editor

import "strings"

// Buffer is a line-oriented in-memory Editor. The CLI host loads a note into
// a Buffer, runs an upload batch against it and writes the result back.
type Buffer struct {
	lines  []string
	cursor Pos
}

// NewBuffer creates a Buffer holding text, with the cursor at the start.
func NewBuffer(text string) *Buffer {
	return &Buffer{lines: strings.Split(text, "\n")}
}

func (b *Buffer) Value() string {
	return strings.Join(b.lines, "\n")
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Pos {
	return b.cursor
}

func (b *Buffer) SetCursor(pos Pos) {
	b.cursor = b.clamp(pos)
}

// SetCursorEnd moves the cursor past the last character of the document.
func (b *Buffer) SetCursorEnd() {
	last := len(b.lines) - 1
	b.cursor = Pos{Line: last, Ch: len(b.lines[last])}
}

func (b *Buffer) ReplaceSelection(text string) {
	b.ReplaceRange(text, b.cursor, b.cursor)
}

func (b *Buffer) ReplaceRange(text string, from, to Pos) {
	from = b.clamp(from)
	to = b.clamp(to)

	prefix := b.lines[from.Line][:from.Ch]
	suffix := b.lines[to.Line][to.Ch:]

	inserted := strings.Split(prefix+text+suffix, "\n")

	replaced := make([]string, 0, len(b.lines)-(to.Line-from.Line+1)+len(inserted))
	replaced = append(replaced, b.lines[:from.Line]...)
	replaced = append(replaced, inserted...)
	replaced = append(replaced, b.lines[to.Line+1:]...)
	b.lines = replaced

	// Cursor lands just past the inserted text.
	endLine := from.Line + len(inserted) - 1
	endCh := len(inserted[len(inserted)-1]) - len(suffix)
	b.cursor = Pos{Line: endLine, Ch: endCh}
}

func (b *Buffer) clamp(p Pos) Pos {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	if p.Ch < 0 {
		p.Ch = 0
	}
	if l := len(b.lines[p.Line]); p.Ch > l {
		p.Ch = l
	}
	return p
}
