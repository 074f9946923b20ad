package service

import (
	"context"
	"database/sql"
	"errors"

	"printshop/internal/model"
	"printshop/internal/repository"
)

// OrderUpdate carries the admin patch for an order; nil fields are left
// unchanged.
type OrderUpdate struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// OrderListResult is the service-level DTO for paginated orders.
type OrderListResult struct {
	Items []model.Order `json:"data"`
	Total int           `json:"total"`
}

// OrderService covers the admin order views and status edits. Orders are
// created by the storefront checkout, not through this API.
type OrderService interface {
	Get(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, status string, limit, offset int) (*OrderListResult, error)
	Update(ctx context.Context, id string, upd OrderUpdate) (*model.Order, error)
}

type orderService struct {
	repo repository.OrderRepository
}

// NewOrderService constructs an OrderService.
func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) Get(ctx context.Context, id string) (*model.Order, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (s *orderService) List(ctx context.Context, status string, limit, offset int) (*OrderListResult, error) {
	if status != "" && !model.ValidOrderStatus(status) {
		return nil, Validationf("invalid status")
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	res, err := s.repo.List(ctx, repository.OrderListFilter{Status: status}, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &OrderListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *orderService) Update(ctx context.Context, id string, upd OrderUpdate) (*model.Order, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if upd.Status != nil && !model.ValidOrderStatus(*upd.Status) {
		return nil, Validationf("invalid status")
	}

	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if upd.Status != nil {
		o.Status = *upd.Status
	}
	if upd.Notes != nil {
		o.Notes = *upd.Notes
	}
	return s.repo.Update(ctx, o)
}
