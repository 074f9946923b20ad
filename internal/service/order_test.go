package service

import (
	"context"
	"database/sql"
	"testing"

	"printshop/internal/model"
	repoMocks "printshop/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("applies status and notes", func(t *testing.T) {
		status := model.OrderStatusShipped
		notes := "tracking: XYZ"
		mRepo := new(repoMocks.MockOrderRepository)
		mRepo.On("FindByID", ctx, "order-1").Return(&model.Order{
			ID: "order-1", Status: model.OrderStatusPaid,
		}, nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(o *model.Order) bool {
			return o.Status == status && o.Notes == notes
		})).Return(&model.Order{ID: "order-1", Status: status}, nil)
		svc := NewOrderService(mRepo)

		o, err := svc.Update(ctx, "order-1", OrderUpdate{Status: &status, Notes: &notes})

		require.NoError(t, err)
		assert.Equal(t, status, o.Status)
		mRepo.AssertExpectations(t)
	})

	t.Run("nil fields leave order unchanged", func(t *testing.T) {
		mRepo := new(repoMocks.MockOrderRepository)
		mRepo.On("FindByID", ctx, "order-1").Return(&model.Order{
			ID: "order-1", Status: model.OrderStatusPaid, Notes: "keep",
		}, nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(o *model.Order) bool {
			return o.Status == model.OrderStatusPaid && o.Notes == "keep"
		})).Return(&model.Order{ID: "order-1", Status: model.OrderStatusPaid}, nil)
		svc := NewOrderService(mRepo)

		_, err := svc.Update(ctx, "order-1", OrderUpdate{})

		require.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("invalid status", func(t *testing.T) {
		bad := "teleported"
		svc := NewOrderService(new(repoMocks.MockOrderRepository))

		_, err := svc.Update(ctx, "order-1", OrderUpdate{Status: &bad})

		assert.True(t, IsValidation(err))
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockOrderRepository)
		mRepo.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
		svc := NewOrderService(mRepo)

		_, err := svc.Update(ctx, "missing", OrderUpdate{})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid status filter", func(t *testing.T) {
		svc := NewOrderService(new(repoMocks.MockOrderRepository))
		_, err := svc.List(ctx, "bogus", 20, 0)
		assert.True(t, IsValidation(err))
	})
}
