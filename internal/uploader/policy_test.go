package uploader

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestOverlay_NilFieldsKeepDefaults(t *testing.T) {
	defaults := Policy{
		UploadVideo:    true,
		FolderTemplate: "media/${year}",
	}

	got := Overlay(defaults, Overrides{})

	require.Equal(t, defaults, got)
}

func TestOverlay_PresentBoolWinsEvenWhenFalse(t *testing.T) {
	defaults := Policy{UploadVideo: true, UploadPdf: false}

	got := Overlay(defaults, Overrides{
		UploadVideo: boolPtr(false),
		UploadPdf:   boolPtr(true),
		LocalUpload: boolPtr(true),
	})

	require.False(t, got.UploadVideo)
	require.True(t, got.UploadPdf)
	require.True(t, got.LocalUpload)
}

func TestOverlay_EmptyFolderOverrideIgnored(t *testing.T) {
	defaults := Policy{FolderTemplate: "global", LocalFolderTemplate: "local-global"}

	got := Overlay(defaults, Overrides{
		Folder:      strPtr(""),
		LocalFolder: strPtr("per-doc"),
	})

	require.Equal(t, "global", got.FolderTemplate)
	require.Equal(t, "per-doc", got.LocalFolderTemplate)
}

func TestResolvePolicy_FromFrontmatter(t *testing.T) {
	doc := "---\nuploadPdf: true\nfolder: assets/${year}\n---\nbody"

	got, err := ResolvePolicy(doc, Policy{FolderTemplate: "global"})
	require.NoError(t, err)

	require.True(t, got.UploadPdf)
	require.Equal(t, "assets/${year}", got.FolderTemplate)
}

func TestResolvePolicy_NoFrontmatterYieldsDefaults(t *testing.T) {
	defaults := Policy{UploadVideo: true, FolderTemplate: "g"}

	got, err := ResolvePolicy("plain body", defaults)
	require.NoError(t, err)
	require.Equal(t, defaults, got)
}
