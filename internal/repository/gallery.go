package repository

import (
	"context"

	"printshop/internal/model"
)

// GalleryListFilter narrows the gallery listing. VisibleOnly hides images
// pulled from the public page.
type GalleryListFilter struct {
	VisibleOnly bool
}

// GalleryRepository defines data access for gallery images.
type GalleryRepository interface {
	Create(ctx context.Context, g *model.GalleryImage) (*model.GalleryImage, error)
	FindByID(ctx context.Context, id string) (*model.GalleryImage, error)
	List(ctx context.Context, f GalleryListFilter) ([]model.GalleryImage, error)
	Update(ctx context.Context, g *model.GalleryImage) (*model.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}
