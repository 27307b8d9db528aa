package uploader

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iammatthias/s3-image-uploader/internal/editor"
	"github.com/iammatthias/s3-image-uploader/internal/logging"
	"github.com/iammatthias/s3-image-uploader/internal/vault"
)

// test seam
var timeNow = time.Now

// File is one pasted or dropped attachment entering the pipeline.
type File struct {
	Name string
	MIME string
	Data []byte
}

// Status is the settlement state of a PendingUpload. It transitions exactly
// once, from pending to one of the terminal states.
type Status int

const (
	StatusPending Status = iota
	StatusSucceeded
	StatusFailed
)

// EventSource distinguishes paste events from drag-and-drop events; drop
// handling can be disabled by policy.
type EventSource int

const (
	SourcePaste EventSource = iota
	SourceDrop
)

// ObjectStore is the remote storage collaborator. Put returns the public
// location of the stored object.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// Notifier delivers the one-shot batch-completion message to the user.
type Notifier func(msg string)

// PendingUpload tracks one file from classification to reconciliation.
// Nothing is persisted; the record is garbage once its text patch applied.
type PendingUpload struct {
	File        File
	Kind        Kind
	ContentHash string
	StorageKey  string
	Placeholder string
	Status      Status
	Location    string
	Err         error
}

// Batch describes one paste/drop event after policy resolution.
type Batch struct {
	Files  []File
	Policy Policy
	Source EventSource
}

// Orchestrator runs upload batches. One goroutine per accepted file; all
// document mutations are serialized under mu, which stands in for the
// host's single-threaded event loop: between I/O waits, buffer edits never
// interleave.
type Orchestrator struct {
	store     ObjectStore
	fs        vault.FS
	localBase string
	logger    logging.Logger
	notify    Notifier

	mu sync.Mutex
}

// NewOrchestrator wires the collaborators. localBase is the absolute vault
// root used for file:// embeds of local uploads.
func NewOrchestrator(store ObjectStore, fs vault.FS, localBase string, logger logging.Logger, notify Notifier) *Orchestrator {
	return &Orchestrator{
		store:     store,
		fs:        fs,
		localBase: localBase,
		logger:    logger,
		notify:    notify,
	}
}

// Run processes one batch against ed and blocks until every accepted file
// has settled. Unsupported files are skipped without feedback. Each accepted
// file gets a placeholder inserted synchronously before its upload starts;
// on settlement the placeholder is replaced with the final embed or an
// inline error line. Failures never abort sibling uploads. Returns the
// settled per-file records.
func (o *Orchestrator) Run(ctx context.Context, ed editor.Editor, b Batch) []*PendingUpload {
	if b.Source == SourceDrop && !b.Policy.UploadOnDrag {
		return nil
	}

	log := o.logger.With("batch", uuid.NewString())

	template := b.Policy.FolderTemplate
	if b.Policy.LocalUpload {
		template = b.Policy.LocalFolderTemplate
	}
	folder := ResolveFolder(template, timeNow())

	var pending []*PendingUpload
	for _, f := range b.Files {
		kind, ok := Classify(f.MIME, b.Policy)
		if !ok {
			log.Debug(ctx, "skipping unsupported file", "name", f.Name, "mime", f.MIME)
			continue
		}

		name := DeriveName(f.Data, f.Name)
		p := &PendingUpload{
			File:        f,
			Kind:        kind,
			ContentHash: ContentHash(f.Data),
			StorageKey:  BuildKey(folder, name),
			Placeholder: fmt.Sprintf("![uploading...](%s)", name),
			Status:      StatusPending,
		}

		// Insert before the upload starts so the user sees instant
		// feedback; the content hash keeps the placeholder findable after
		// concurrent edits shift the buffer.
		o.mu.Lock()
		ed.ReplaceSelection(p.Placeholder + "\n")
		o.mu.Unlock()

		pending = append(pending, p)
	}

	var wg sync.WaitGroup
	for _, p := range pending {
		wg.Add(1)
		go func(p *PendingUpload) {
			defer wg.Done()
			o.process(ctx, ed, b.Policy, p, log)
		}(p)
	}
	wg.Wait()

	if len(b.Files) > 0 && o.notify != nil {
		o.notify("All files processed")
	}

	return pending
}

// process settles one upload and reconciles its placeholder. All failures
// are absorbed here; nothing propagates to the batch.
func (o *Orchestrator) process(ctx context.Context, ed editor.Editor, policy Policy, p *PendingUpload, log logging.Logger) {
	location, err := o.dispatch(ctx, policy, p)

	o.mu.Lock()
	defer o.mu.Unlock()

	if err == nil {
		localBase := ""
		if policy.LocalUpload {
			localBase = o.localBase
		}
		var markup string
		markup, err = RenderEmbed(location, p.Kind, localBase)
		if err == nil {
			p.Status = StatusSucceeded
			p.Location = location
			editor.ReplaceFirst(ed, p.Placeholder, markup)
			log.Info(ctx, "upload complete", "key", p.StorageKey, "location", location)
			return
		}
	}

	p.Status = StatusFailed
	p.Err = err
	editor.ReplaceFirst(ed, p.Placeholder, fmt.Sprintf("Error uploading file: %v", err))
	log.Error(ctx, "upload failed", "key", p.StorageKey, "error", err)
}

// dispatch performs the storage write and returns the resolved location:
// the vault-relative path for local uploads, the public URL otherwise.
func (o *Orchestrator) dispatch(ctx context.Context, policy Policy, p *PendingUpload) (string, error) {
	if !policy.LocalUpload {
		return o.store.Put(ctx, p.StorageKey, p.File.Data, p.File.MIME)
	}

	if dir := path.Dir(p.StorageKey); dir != "." {
		ok, err := o.fs.Exists(dir)
		if err != nil {
			return "", err
		}
		if !ok {
			if err := o.fs.CreateFolder(dir); err != nil {
				return "", err
			}
		}
	}
	if err := o.fs.WriteBinary(p.StorageKey, p.File.Data); err != nil {
		return "", err
	}
	return strings.TrimPrefix(p.StorageKey, "/"), nil
}
