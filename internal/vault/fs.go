// Package vault abstracts the host filesystem used for local uploads.
// Paths are vault-relative and slash-separated.
package vault

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FS is the local filesystem collaborator for local-upload mode.
type FS interface {
	Exists(path string) (bool, error)
	CreateFolder(path string) error
	WriteBinary(path string, data []byte) error
}

// DirFS implements FS beneath a root directory on the OS filesystem.
type DirFS struct {
	root string
}

func NewDirFS(root string) *DirFS {
	return &DirFS{root: root}
}

// Base returns the absolute root of the vault, used by callers that build
// file:// links to local uploads.
func (d *DirFS) Base() string {
	abs, err := filepath.Abs(d.root)
	if err != nil {
		return d.root
	}
	return abs
}

func (d *DirFS) Exists(path string) (bool, error) {
	_, err := os.Stat(d.join(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (d *DirFS) CreateFolder(path string) error {
	if err := os.MkdirAll(d.join(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	return nil
}

func (d *DirFS) WriteBinary(path string, data []byte) error {
	if err := os.WriteFile(d.join(path), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (d *DirFS) join(path string) string {
	return filepath.Join(d.root, filepath.FromSlash(path))
}
