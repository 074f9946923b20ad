package repository

import (
	"context"

	"printshop/internal/model"
)

// CategoryRepository defines data access for product categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) (*model.Category, error)
	FindByID(ctx context.Context, id string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, c *model.Category) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}
