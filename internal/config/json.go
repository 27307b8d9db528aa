package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/iammatthias/s3-image-uploader/internal/flagx"
)

// jsonSettings is a DTO used exclusively for JSON (un)marshalling. Pointer
// fields distinguish "absent" from zero values so the file can be partial
// and still merge cleanly over defaults.
type jsonSettings struct {
	AccessKey         *string `json:"accessKey"`
	SecretKey         *string `json:"secretKey"`
	Region            *string `json:"region"`
	Bucket            *string `json:"bucket"`
	Folder            *string `json:"folder"`
	UseCustomEndpoint *bool   `json:"useCustomEndpoint"`
	CustomEndpoint    *string `json:"customEndpoint"`
	ForcePathStyle    *bool   `json:"forcePathStyle"`
	UseCustomImageURL *bool   `json:"useCustomImageUrl"`
	CustomImageURL    *string `json:"customImageUrl"`
	UploadOnDrag      *bool   `json:"uploadOnDrag"`
	UploadVideo       *bool   `json:"uploadVideo"`
	UploadAudio       *bool   `json:"uploadAudio"`
	UploadPdf         *bool   `json:"uploadPdf"`
	LocalUpload       *bool   `json:"localUpload"`
	LocalUploadFolder *string `json:"localUploadFolder"`
	TimeoutSeconds    *int    `json:"timeoutSeconds"`
}

// parseJson overlays s with values loaded from the JSON settings file. The
// file path comes from the -c/-config flags; without them nothing is loaded.
// Panics on read or unmarshal errors, like the rest of the load chain.
func parseJson(s *Settings) {
	path := flagx.SettingsFileFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var js jsonSettings
	if err := json.Unmarshal(data, &js); err != nil {
		panic(err)
	}

	overlayString(&s.AccessKey, js.AccessKey)
	overlayString(&s.SecretKey, js.SecretKey)
	overlayString(&s.Region, js.Region)
	overlayString(&s.Bucket, js.Bucket)
	overlayString(&s.Folder, js.Folder)
	overlayBool(&s.UseCustomEndpoint, js.UseCustomEndpoint)
	overlayString(&s.CustomEndpoint, js.CustomEndpoint)
	overlayBool(&s.ForcePathStyle, js.ForcePathStyle)
	overlayBool(&s.UseCustomImageURL, js.UseCustomImageURL)
	overlayString(&s.CustomImageURL, js.CustomImageURL)
	overlayBool(&s.UploadOnDrag, js.UploadOnDrag)
	overlayBool(&s.UploadVideo, js.UploadVideo)
	overlayBool(&s.UploadAudio, js.UploadAudio)
	overlayBool(&s.UploadPdf, js.UploadPdf)
	overlayBool(&s.LocalUpload, js.LocalUpload)
	overlayString(&s.LocalUploadFolder, js.LocalUploadFolder)
	if js.TimeoutSeconds != nil {
		s.UploadTimeout = time.Duration(*js.TimeoutSeconds) * time.Second
	}
}

func overlayString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func overlayBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// Save writes the settings back to path as JSON, the host side of the
// persisted-settings round trip.
func (s *Settings) Save(path string) error {
	secs := int(s.UploadTimeout / time.Second)
	js := jsonSettings{
		AccessKey:         &s.AccessKey,
		SecretKey:         &s.SecretKey,
		Region:            &s.Region,
		Bucket:            &s.Bucket,
		Folder:            &s.Folder,
		UseCustomEndpoint: &s.UseCustomEndpoint,
		CustomEndpoint:    &s.CustomEndpoint,
		ForcePathStyle:    &s.ForcePathStyle,
		UseCustomImageURL: &s.UseCustomImageURL,
		CustomImageURL:    &s.CustomImageURL,
		UploadOnDrag:      &s.UploadOnDrag,
		UploadVideo:       &s.UploadVideo,
		UploadAudio:       &s.UploadAudio,
		UploadPdf:         &s.UploadPdf,
		LocalUpload:       &s.LocalUpload,
		LocalUploadFolder: &s.LocalUploadFolder,
		TimeoutSeconds:    &secs,
	}

	data, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
