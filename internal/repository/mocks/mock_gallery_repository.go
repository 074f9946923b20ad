package mocks

import (
	"context"

	"printshop/internal/model"
	"printshop/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockGalleryRepository struct {
	mock.Mock
}

func (m *MockGalleryRepository) Create(ctx context.Context, g *model.GalleryImage) (*model.GalleryImage, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryImage), args.Error(1)
}

func (m *MockGalleryRepository) FindByID(ctx context.Context, id string) (*model.GalleryImage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryImage), args.Error(1)
}

func (m *MockGalleryRepository) List(ctx context.Context, f repository.GalleryListFilter) ([]model.GalleryImage, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GalleryImage), args.Error(1)
}

func (m *MockGalleryRepository) Update(ctx context.Context, g *model.GalleryImage) (*model.GalleryImage, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GalleryImage), args.Error(1)
}

func (m *MockGalleryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
