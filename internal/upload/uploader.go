package upload

import "context"

// Uploader transmits a local file to the remote media store and returns
// its canonical retrieval URL. Implementations make a single attempt.
type Uploader interface {
	Upload(ctx context.Context, localPath, folder string) (string, error)
}
