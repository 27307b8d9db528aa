// Package uploader implements the upload pipeline: classification, key
// derivation, policy resolution, embed rendering and the per-file
// orchestration that reconciles uploads back into the document.
package uploader

import "strings"

// Kind is the closed set of media kinds the pipeline handles.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
	KindPdf   Kind = "pdf"
)

// Classify maps a media type and the event policy to a Kind. Rules are
// checked in order and the first match wins. ok is false for unsupported
// types; callers skip those files silently because a clipboard batch may
// legitimately mix supported and unsupported entries.
func Classify(mimeType string, policy Policy) (kind Kind, ok bool) {
	switch {
	case strings.HasPrefix(mimeType, "video/") && policy.UploadVideo:
		return KindVideo, true
	case strings.HasPrefix(mimeType, "audio/") && policy.UploadAudio:
		return KindAudio, true
	case mimeType == "application/pdf" && policy.UploadPdf:
		return KindPdf, true
	case strings.HasPrefix(mimeType, "image/"):
		return KindImage, true
	}
	return "", false
}
