package uploader

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"
)

// ContentHash returns the lowercase hex SHA-256 digest of data. Distinct
// contents produce distinct names with overwhelming probability, which is
// what makes placeholders uniquely addressable in the document.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// DeriveName computes the content-addressed file name for data: the content
// hash plus the extension of originalName. Names without an extension yield
// a bare hash.
func DeriveName(data []byte, originalName string) string {
	return ContentHash(data) + path.Ext(originalName)
}

// ResolveFolder trims template and substitutes the ${year}, ${month} and
// ${day} tokens with zero-padded components of date. Each token is replaced
// at most once; a template repeating a token keeps the later literal
// occurrences.
func ResolveFolder(template string, date time.Time) string {
	t := strings.TrimSpace(template)
	t = strings.Replace(t, "${year}", fmt.Sprintf("%04d", date.Year()), 1)
	t = strings.Replace(t, "${month}", fmt.Sprintf("%02d", int(date.Month())), 1)
	t = strings.Replace(t, "${day}", fmt.Sprintf("%02d", date.Day()), 1)
	return t
}

// BuildKey joins a resolved folder and file name into a storage key.
func BuildKey(folder, name string) string {
	if folder == "" {
		return name
	}
	return folder + "/" + name
}
