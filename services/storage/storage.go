// Package storage wraps the object store used for service and profile
// images.
package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"fieldserve/config"
)

// ObjectStore uploads and deletes media assets. Callers persist only the
// returned URL and public ID.
type ObjectStore interface {
	Upload(ctx context.Context, file multipart.File, folder string) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

// UploadResult identifies a stored asset.
type UploadResult struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// CloudinaryStore implements ObjectStore on Cloudinary.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore builds the store from the CLOUDINARY_URL credential.
func NewCloudinaryStore() (*CloudinaryStore, error) {
	url := config.AppConfig.CloudinaryURL
	if url == "" {
		return nil, fmt.Errorf("cloudinary url not configured")
	}
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, file multipart.File, folder string) (*UploadResult, error) {
	res, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}
	if res.PublicID == "" {
		return nil, fmt.Errorf("upload returned no public id")
	}
	return &UploadResult{PublicID: res.PublicID, URL: res.SecureURL}, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", publicID, err)
	}
	return nil
}
