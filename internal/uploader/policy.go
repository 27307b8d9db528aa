package uploader

import (
	"github.com/iammatthias/s3-image-uploader/internal/frontmatter"
)

// Policy gathers the per-event upload switches and folder templates. It is
// computed once per paste/drop event by overlaying document frontmatter onto
// the global settings and never mutated mid-pipeline.
type Policy struct {
	LocalUpload  bool
	UploadVideo  bool
	UploadAudio  bool
	UploadPdf    bool
	UploadOnDrag bool

	// FolderTemplate is the remote key folder template; LocalFolderTemplate
	// its local-upload counterpart. Both may contain ${year}/${month}/${day}
	// tokens, resolved by ResolveFolder.
	FolderTemplate      string
	LocalFolderTemplate string
}

// Overrides is the partial policy a document declares in its frontmatter.
// Nil fields leave the global setting untouched.
type Overrides struct {
	LocalUpload  *bool   `yaml:"localUpload"`
	UploadVideo  *bool   `yaml:"uploadVideo"`
	UploadAudio  *bool   `yaml:"uploadAudio"`
	UploadPdf    *bool   `yaml:"uploadPdf"`
	UploadOnDrag *bool   `yaml:"uploadOnDrag"`
	Folder       *string `yaml:"folder"`
	LocalFolder  *string `yaml:"localUploadFolder"`
}

// Overlay merges o over defaults field by field. Boolean overrides apply
// whenever the key is present; folder overrides additionally require a
// non-empty value, otherwise the global template stays in effect.
func Overlay(defaults Policy, o Overrides) Policy {
	p := defaults
	if o.LocalUpload != nil {
		p.LocalUpload = *o.LocalUpload
	}
	if o.UploadVideo != nil {
		p.UploadVideo = *o.UploadVideo
	}
	if o.UploadAudio != nil {
		p.UploadAudio = *o.UploadAudio
	}
	if o.UploadPdf != nil {
		p.UploadPdf = *o.UploadPdf
	}
	if o.UploadOnDrag != nil {
		p.UploadOnDrag = *o.UploadOnDrag
	}
	if o.Folder != nil && *o.Folder != "" {
		p.FolderTemplate = *o.Folder
	}
	if o.LocalFolder != nil && *o.LocalFolder != "" {
		p.LocalFolderTemplate = *o.LocalFolder
	}
	return p
}

// ResolvePolicy reads the frontmatter of doc and overlays any overrides it
// declares onto the global defaults. A document without frontmatter yields
// the defaults unchanged.
func ResolvePolicy(doc string, defaults Policy) (Policy, error) {
	var o Overrides
	ok, err := frontmatter.Decode(doc, &o)
	if err != nil {
		return defaults, err
	}
	if !ok {
		return defaults, nil
	}
	return Overlay(defaults, o), nil
}
