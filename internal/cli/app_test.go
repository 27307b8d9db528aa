package cli

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iammatthias/s3-image-uploader/internal/config"
	"github.com/iammatthias/s3-image-uploader/internal/uploader"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func newTestApp(s *config.Settings) *App {
	app := NewApp(s)
	app.notify = func(string) {}
	return app
}

func TestApp_Run_LocalUploadViaFrontmatter(t *testing.T) {
	dir := t.TempDir()
	note := writeFile(t, dir, "note.md",
		[]byte("---\nlocalUpload: true\nlocalUploadFolder: attachments\n---\nbody"))
	img := writeFile(t, dir, "shot.png", []byte("png-bytes"))

	s := &config.Settings{}
	s.LoadDefaults()

	app := newTestApp(s)
	require.NoError(t, app.Run(context.Background(), note, []string{img}, uploader.SourcePaste))

	hash := uploader.ContentHash([]byte("png-bytes"))
	stored, err := os.ReadFile(filepath.Join(dir, "attachments", hash+".png"))
	require.NoError(t, err)
	require.Equal(t, "png-bytes", string(stored))

	patched, err := os.ReadFile(note)
	require.NoError(t, err)
	require.Contains(t, string(patched),
		fmt.Sprintf("![image](attachments/%s.png)", hash))
	require.NotContains(t, string(patched), "uploading...")
}

func TestApp_Run_RemoteUploadAgainstTestServer(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	dir := t.TempDir()
	note := writeFile(t, dir, "note.md", []byte("body"))
	img := writeFile(t, dir, "shot.png", []byte("png-bytes"))

	s := &config.Settings{}
	s.LoadDefaults()
	s.AccessKey = "ak"
	s.SecretKey = "sk"
	s.Bucket = "notes"
	s.UseCustomEndpoint = true
	s.CustomEndpoint = srv.URL
	s.ForcePathStyle = true
	s.UploadTimeout = 5 * time.Second

	app := newTestApp(s)
	require.NoError(t, app.Run(context.Background(), note, []string{img}, uploader.SourcePaste))

	hash := uploader.ContentHash([]byte("png-bytes"))
	require.Equal(t, "/notes/"+hash+".png", gotPath)

	patched, err := os.ReadFile(note)
	require.NoError(t, err)
	require.Contains(t, string(patched),
		fmt.Sprintf("![image](%s/notes/%s.png)", srv.URL, hash))
}

func TestApp_Run_MissingFileFails(t *testing.T) {
	dir := t.TempDir()
	note := writeFile(t, dir, "note.md", []byte("body"))

	s := &config.Settings{}
	s.LoadDefaults()
	s.LocalUpload = true

	app := newTestApp(s)
	err := app.Run(context.Background(), note, []string{filepath.Join(dir, "absent.png")}, uploader.SourcePaste)
	require.Error(t, err)
}

func TestDetectMIME(t *testing.T) {
	require.Equal(t, "image/png", detectMIME("a.png", nil))
	require.Equal(t, "application/pdf", detectMIME("doc.pdf", nil))

	// No extension falls back to sniffing.
	pngMagic := []byte("\x89PNG\r\n\x1a\n0000000000")
	require.Equal(t, "image/png", detectMIME("blob", pngMagic))
}
