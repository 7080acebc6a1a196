package upload

import (
	"context"

	"go.uber.org/zap"
)

// Orchestrator runs the single-attempt upload of a transient file and
// guarantees the local copy is deleted on every exit path. Leaving temp
// files behind is a resource leak across requests, so cleanup is an
// invariant here, not an optimization.
type Orchestrator struct {
	uploader Uploader
	folder   string
	logger   *zap.SugaredLogger
}

// NewOrchestrator creates a new upload orchestrator instance.
func NewOrchestrator(uploader Uploader, folder string, logger *zap.SugaredLogger) *Orchestrator {
	return &Orchestrator{
		uploader: uploader,
		folder:   folder,
		logger:   logger,
	}
}

// Store uploads the transient file and returns the remote URL.
// A nil file means no attachment: no remote call happens and the URL is
// empty. On upload failure the error propagates so the caller aborts the
// submission; the local file is removed either way.
func (o *Orchestrator) Store(ctx context.Context, file *TempFile) (string, error) {
	if file == nil {
		return "", nil
	}

	defer func() {
		if err := file.Remove(); err != nil {
			o.logger.Warnw("temp file deletion failed", "path", file.Path, "error", err)
		}
	}()

	url, err := o.uploader.Upload(ctx, file.Path, o.folder)
	if err != nil {
		return "", err
	}

	o.logger.Infow("screenshot uploaded", "url", url, "original_name", file.OriginalName)
	return url, nil
}
