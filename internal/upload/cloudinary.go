package upload

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryUploader uploads files to Cloudinary.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryUploader creates an uploader from a cloudinary:// URL.
func NewCloudinaryUploader(cloudinaryURL string) (*CloudinaryUploader, error) {
	if cloudinaryURL == "" {
		return nil, errors.New("upload: cloudinary URL is empty")
	}

	client, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("upload: failed to init cloudinary client: %w", err)
	}

	return &CloudinaryUploader{client: client}, nil
}

// Upload transmits the file and returns its secure URL.
func (c *CloudinaryUploader) Upload(ctx context.Context, localPath, folder string) (string, error) {
	resp, err := c.client.Upload.Upload(ctx, localPath, uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return "", fmt.Errorf("upload: cloudinary upload failed: %w", err)
	}
	if resp.SecureURL == "" {
		return "", errors.New("upload: cloudinary returned no URL")
	}

	return resp.SecureURL, nil
}
