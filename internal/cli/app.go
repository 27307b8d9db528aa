// Package cli is the command-line host for the uploader: it plays the role
// of the note-taking application, feeding a document buffer and a local
// vault to the upload pipeline.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iammatthias/s3-image-uploader/internal/config"
	"github.com/iammatthias/s3-image-uploader/internal/editor"
	"github.com/iammatthias/s3-image-uploader/internal/logging"
	"github.com/iammatthias/s3-image-uploader/internal/storage"
	"github.com/iammatthias/s3-image-uploader/internal/uploader"
	"github.com/iammatthias/s3-image-uploader/internal/vault"
)

type App struct {
	settings *config.Settings
	logger   logging.Logger
	notify   uploader.Notifier
}

func NewApp(settings *config.Settings) *App {
	l := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	return &App{
		settings: settings,
		logger:   logging.NewSlogLogger(l),
		notify:   func(msg string) { fmt.Println(msg) },
	}
}

// Run uploads the given files into the note at notePath and writes the
// patched note back. The note's frontmatter may override the global
// settings for this batch.
func (a *App) Run(ctx context.Context, notePath string, filePaths []string, source uploader.EventSource) error {
	raw, err := os.ReadFile(notePath)
	if err != nil {
		return fmt.Errorf("reading note: %w", err)
	}
	doc := string(raw)

	policy, err := uploader.ResolvePolicy(doc, a.settings.Policy())
	if err != nil {
		a.logger.Warn(ctx, "ignoring malformed frontmatter", "note", notePath, "error", err)
	}

	files, err := readFiles(filePaths)
	if err != nil {
		return err
	}

	fs := vault.NewDirFS(filepath.Dir(notePath))

	var store uploader.ObjectStore
	if !policy.LocalUpload {
		if err := a.ensureCredentials(); err != nil {
			return err
		}
		transport := storage.NewTransport(nil, a.settings.UploadTimeout)
		store, err = storage.NewS3Store(ctx, a.settings.StorageConfig(), transport)
		if err != nil {
			return err
		}
	}

	buf := editor.NewBuffer(doc)
	buf.SetCursorEnd()

	orch := uploader.NewOrchestrator(store, fs, fs.Base(), a.logger, a.notify)
	orch.Run(ctx, buf, uploader.Batch{Files: files, Policy: policy, Source: source})

	if err := os.WriteFile(notePath, []byte(buf.Value()), 0o644); err != nil {
		return fmt.Errorf("writing note: %w", err)
	}
	return nil
}

func readFiles(paths []string) ([]uploader.File, error) {
	files := make([]uploader.File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		files = append(files, uploader.File{
			Name: filepath.Base(p),
			MIME: detectMIME(p, data),
			Data: data,
		})
	}
	return files, nil
}
