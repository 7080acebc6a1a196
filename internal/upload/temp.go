// Package upload moves client-supplied files to durable remote storage.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// TempFile is a transient local handle to an in-flight file attachment.
// It exists from multipart decode until the upload attempt finishes.
type TempFile struct {
	// Path is the local storage path.
	Path string
	// OriginalName is the client-supplied filename.
	OriginalName string
	// Size is the file size in bytes.
	Size int64
}

// SaveTemp writes a multipart file part into dir under a fresh name.
// The uuid name keeps concurrent requests from colliding; each request
// cleans up only the file it created.
func SaveTemp(dir string, fh *multipart.FileHeader) (*TempFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload: failed to create temp dir: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("upload: failed to open multipart file: %w", err)
	}
	defer src.Close()

	path := filepath.Join(dir, uuid.NewString()+filepath.Ext(fh.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("upload: failed to create temp file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("upload: failed to write temp file: %w", err)
	}

	return &TempFile{
		Path:         path,
		OriginalName: fh.Filename,
		Size:         size,
	}, nil
}

// Remove deletes the transient file from local storage.
func (t *TempFile) Remove() error {
	return os.Remove(t.Path)
}
