// Package frontmatter extracts and decodes the leading YAML block of a
// markdown document.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Extract returns the YAML frontmatter block of doc without its delimiters.
// The block must start on the first line and be closed by a bare "---" line.
func Extract(doc string) (string, bool) {
	lines := strings.Split(doc, "\n")
	if len(lines) < 2 || strings.TrimRight(lines[0], "\r") != delimiter {
		return "", false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == delimiter {
			return strings.Join(lines[1:i], "\n"), true
		}
	}
	return "", false
}

// Decode unmarshals the frontmatter block of doc into out. Returns false when
// the document has no frontmatter.
func Decode(doc string, out any) (bool, error) {
	block, ok := Extract(doc)
	if !ok {
		return false, nil
	}
	if err := yaml.Unmarshal([]byte(block), out); err != nil {
		return false, fmt.Errorf("frontmatter: %w", err)
	}
	return true, nil
}
