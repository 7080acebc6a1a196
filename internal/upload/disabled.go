package upload

import (
	"context"
	"errors"
)

// Disabled is the uploader used when no media store is configured.
// Submissions without an attachment still work; anything carrying a
// file fails as an upload error.
type Disabled struct{}

// Upload always fails.
func (Disabled) Upload(ctx context.Context, localPath, folder string) (string, error) {
	return "", errors.New("upload: media store not configured")
}
