package repository

import (
	"context"

	"printshop/internal/model"
)

// ProductListFilter narrows the product listing. Active is a tri-state:
// nil lists everything.
type ProductListFilter struct {
	Active     *bool
	CategoryID string
}

// ProductRepository defines data access for shop products.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) (*model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, f ProductListFilter, pq PageQuery) (*PageResult[model.Product], error)
	Update(ctx context.Context, p *model.Product) (*model.Product, error)
	// Delete removes a product by ID. It returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error
}
