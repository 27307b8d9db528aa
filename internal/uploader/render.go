package uploader

import (
	"errors"
	"fmt"
)

// ErrUnknownKind signals an internal invariant violation: a file reached
// rendering with a kind the classifier never produces.
var ErrUnknownKind = errors.New("unknown media kind")

// RenderEmbed produces the final markup for an uploaded file. localBase is
// the absolute vault base used to build file:// links in local-upload mode;
// it is empty for remote uploads, whose location is already a full URL.
func RenderEmbed(location string, kind Kind, localBase string) (string, error) {
	switch kind {
	case KindImage:
		return fmt.Sprintf("![image](%s)", location), nil
	case KindVideo, KindAudio:
		src := location
		if localBase != "" {
			src = fmt.Sprintf("file://%s/%s", localBase, location)
		}
		tag := "video"
		if kind == KindAudio {
			tag = "audio"
		}
		return fmt.Sprintf("<%s src=%q controls></%s>", tag, src, tag), nil
	case KindPdf:
		return fmt.Sprintf("<iframe frameborder=0 border=0 width=100%% height=800 src=%q></iframe>", location), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
