package mocks

import (
	"context"

	"printshop/internal/model"
	"printshop/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) Create(ctx context.Context, in service.GalleryInput) (*model.GalleryImage, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryImage), args.Error(1)
}

func (m *MockGalleryService) Get(ctx context.Context, id string) (*model.GalleryImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryImage), args.Error(1)
}

func (m *MockGalleryService) List(ctx context.Context, visibleOnly bool) ([]model.GalleryImage, error) {
	args := m.Called(ctx, visibleOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GalleryImage), args.Error(1)
}

func (m *MockGalleryService) Update(ctx context.Context, id string, in service.GalleryInput) (*model.GalleryImage, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryImage), args.Error(1)
}

func (m *MockGalleryService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
