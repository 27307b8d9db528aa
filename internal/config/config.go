// Package config loads and persists the uploader settings. Values are
// resolved in layers: built-in defaults, then the JSON settings file (if
// any), then command-line flags. Later sources take precedence.
package config

import (
	"time"

	"github.com/iammatthias/s3-image-uploader/internal/storage"
	"github.com/iammatthias/s3-image-uploader/internal/uploader"
)

// Settings is the persisted settings record, merged over defaults on load.
type Settings struct {
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string

	// Folder is the remote key folder template (${year}/${month}/${day}
	// tokens allowed).
	Folder string

	UseCustomEndpoint bool
	CustomEndpoint    string
	ForcePathStyle    bool

	UseCustomImageURL bool
	CustomImageURL    string

	UploadOnDrag bool
	UploadVideo  bool
	UploadAudio  bool
	UploadPdf    bool

	LocalUpload       bool
	LocalUploadFolder string

	// UploadTimeout bounds each storage request.
	UploadTimeout time.Duration
}

// LoadDefaults populates s with sensible defaults.
func (s *Settings) LoadDefaults() {
	s.Region = "us-east-1"
	s.UploadTimeout = 30 * time.Second
}

// LoadSettings constructs Settings by applying defaults, then the JSON file,
// then flags.
func LoadSettings() *Settings {
	s := &Settings{}
	s.LoadDefaults()
	parseJson(s)
	parseFlags(s)
	return s
}

// StorageConfig maps the settings to the storage configuration for one
// batch. The result is an immutable value; rebuild it after settings change.
func (s *Settings) StorageConfig() storage.Config {
	cfg := storage.Config{
		AccessKey:      s.AccessKey,
		SecretKey:      s.SecretKey,
		Region:         s.Region,
		Bucket:         s.Bucket,
		ForcePathStyle: s.ForcePathStyle,
	}
	if s.UseCustomEndpoint {
		cfg.Endpoint = s.CustomEndpoint
	}
	if s.UseCustomImageURL {
		cfg.PublicURL = s.CustomImageURL
	}
	return cfg
}

// Policy returns the global upload policy these settings describe, before
// any per-document frontmatter overlay.
func (s *Settings) Policy() uploader.Policy {
	return uploader.Policy{
		LocalUpload:         s.LocalUpload,
		UploadVideo:         s.UploadVideo,
		UploadAudio:         s.UploadAudio,
		UploadPdf:           s.UploadPdf,
		UploadOnDrag:        s.UploadOnDrag,
		FolderTemplate:      s.Folder,
		LocalFolderTemplate: s.LocalUploadFolder,
	}
}
