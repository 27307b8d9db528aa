package editor

import "strings"

// ReplaceFirst scans the document top to bottom and replaces the first
// occurrence of target (trimmed) with replacement, via a single range
// operation at that position. Only the first match in the whole document is
// touched. Returns false without modifying the document when no line
// contains the target; the caller treats a miss as a no-op because the user
// may have deleted the text while an upload was in flight.
func ReplaceFirst(ed Editor, target, replacement string) bool {
	needle := strings.TrimSpace(target)
	if needle == "" {
		return false
	}

	lines := strings.Split(ed.Value(), "\n")
	for i, line := range lines {
		ch := strings.Index(line, needle)
		if ch < 0 {
			continue
		}
		from := Pos{Line: i, Ch: ch}
		to := Pos{Line: i, Ch: ch + len(needle)}
		ed.SetCursor(from)
		ed.ReplaceRange(replacement, from, to)
		return true
	}
	return false
}
