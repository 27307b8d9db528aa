package cli

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// detectMIME resolves a file's media type from its extension, falling back
// to content sniffing. The host application supplies declared types on
// paste; a CLI host has to derive them.
func detectMIME(path string, data []byte) string {
	if mt := mime.TypeByExtension(filepath.Ext(path)); mt != "" {
		if base, _, ok := strings.Cut(mt, ";"); ok {
			return strings.TrimSpace(base)
		}
		return mt
	}
	return http.DetectContentType(data)
}

// ensureCredentials prompts for the secret key when the settings carry none.
func (a *App) ensureCredentials() error {
	if a.settings.SecretKey != "" {
		return nil
	}
	fmt.Println("-Enter secret key")
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("reading secret key: %w", err)
	}
	a.settings.SecretKey = string(b)
	return nil
}
