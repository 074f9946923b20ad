package service

import (
	"context"
	"fmt"
	"io"

	"printshop/internal/config"
	"printshop/internal/storage"
)

// imageExts maps accepted image content types to the stored extension.
var imageExts = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// ImageKind selects the object key prefix for an uploaded site image.
type ImageKind string

const (
	ImageKindBlog    ImageKind = "blog"
	ImageKindGallery ImageKind = "gallery"
)

// ImageUpload is an incoming admin image upload.
type ImageUpload struct {
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadedImage describes a stored site image.
type UploadedImage struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// MediaService stores admin-uploaded site images in the object store.
type MediaService interface {
	// UploadImage validates the content type and size and stores the image
	// under a generated key below the kind's prefix.
	UploadImage(ctx context.Context, kind ImageKind, up ImageUpload) (*UploadedImage, error)
}

type mediaService struct {
	store storage.Storage
	minio config.MinIOConfig
	limit int64
}

// NewMediaService constructs a MediaService over the object store.
func NewMediaService(store storage.Storage, minio config.MinIOConfig, upload config.UploadConfig) MediaService {
	return &mediaService{store: store, minio: minio, limit: upload.MaxImageBytes}
}

func (s *mediaService) UploadImage(ctx context.Context, kind ImageKind, up ImageUpload) (*UploadedImage, error) {
	if kind != ImageKindBlog && kind != ImageKindGallery {
		return nil, Validationf("invalid image kind: %s", kind)
	}
	ext, ok := imageExts[up.ContentType]
	if !ok {
		return nil, Validationf("content type not allowed: %s", up.ContentType)
	}
	if up.Size > s.limit {
		return nil, Validationf("image too large: %.2f MB", float64(up.Size)/(1024*1024))
	}

	key := string(kind) + "/" + storage.GenerateImageName(ext)
	_, err := s.store.Put(ctx, key, up.Body, storage.PutObjectOptions{
		Size:        up.Size,
		ContentType: up.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	return &UploadedImage{Key: key, URL: s.publicURL(key)}, nil
}

// publicURL builds the browser-reachable URL for a stored object assuming
// the bucket allows anonymous reads.
func (s *mediaService) publicURL(key string) string {
	scheme := "http"
	if s.minio.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.minio.Endpoint, s.minio.Bucket, key)
}
