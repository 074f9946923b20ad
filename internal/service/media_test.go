package service

import (
	"context"
	"strings"
	"testing"

	"printshop/internal/config"
	"printshop/internal/storage"
	storeMocks "printshop/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testMinIOCfg = config.MinIOConfig{
	Endpoint: "minio.local:9000",
	Bucket:   "site",
	UseSSL:   false,
}

func TestMediaService_UploadImage(t *testing.T) {
	ctx := context.Background()
	uploadCfg := config.UploadConfig{MaxImageBytes: 10 * 1024 * 1024}

	t.Run("happy path", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "blog/") && strings.HasSuffix(key, ".png")
		}), mock.Anything, storage.PutObjectOptions{
			Size:        9,
			ContentType: "image/png",
		}).Return(storage.ObjectInfo{}, nil)
		svc := NewMediaService(mStore, testMinIOCfg, uploadCfg)

		img, err := svc.UploadImage(ctx, ImageKindBlog, ImageUpload{
			ContentType: "image/png",
			Size:        9,
			Body:        strings.NewReader("png bytes"),
		})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(img.Key, "blog/"))
		assert.Equal(t, "http://minio.local:9000/site/"+img.Key, img.URL)
		mStore.AssertExpectations(t)
	})

	t.Run("https url when ssl enabled", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, nil)
		cfg := testMinIOCfg
		cfg.UseSSL = true
		svc := NewMediaService(mStore, cfg, uploadCfg)

		img, err := svc.UploadImage(ctx, ImageKindGallery, ImageUpload{
			ContentType: "image/webp",
			Size:        3,
			Body:        strings.NewReader("abc"),
		})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(img.URL, "https://"))
		assert.True(t, strings.HasPrefix(img.Key, "gallery/"))
	})

	t.Run("bad content type", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		svc := NewMediaService(mStore, testMinIOCfg, uploadCfg)

		_, err := svc.UploadImage(ctx, ImageKindBlog, ImageUpload{
			ContentType: "application/pdf",
			Size:        9,
			Body:        strings.NewReader("pdf bytes"),
		})

		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Equal(t, "content type not allowed: application/pdf", err.Error())
		mStore.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("too large", func(t *testing.T) {
		svc := NewMediaService(new(storeMocks.MockStorage), testMinIOCfg, uploadCfg)

		_, err := svc.UploadImage(ctx, ImageKindBlog, ImageUpload{
			ContentType: "image/jpeg",
			Size:        11 * 1024 * 1024,
			Body:        strings.NewReader("big"),
		})

		assert.True(t, IsValidation(err))
	})

	t.Run("unknown kind", func(t *testing.T) {
		svc := NewMediaService(new(storeMocks.MockStorage), testMinIOCfg, uploadCfg)

		_, err := svc.UploadImage(ctx, ImageKind("avatars"), ImageUpload{
			ContentType: "image/png",
			Size:        1,
			Body:        strings.NewReader("x"),
		})

		assert.True(t, IsValidation(err))
	})
}
