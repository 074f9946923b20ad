package repository

import (
	"context"

	"printshop/internal/model"
)

// OrderListFilter narrows the order listing; zero value lists everything.
type OrderListFilter struct {
	Status string
}

// OrderRepository defines data access for shop orders.
type OrderRepository interface {
	FindByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, f OrderListFilter, pq PageQuery) (*PageResult[model.Order], error)
	// Update writes status and notes for an existing order.
	Update(ctx context.Context, o *model.Order) (*model.Order, error)
}
