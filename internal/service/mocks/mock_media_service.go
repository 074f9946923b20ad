package mocks

import (
	"context"

	"printshop/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) UploadImage(ctx context.Context, kind service.ImageKind, up service.ImageUpload) (*service.UploadedImage, error) {
	args := m.Called(ctx, kind, up)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadedImage), args.Error(1)
}
