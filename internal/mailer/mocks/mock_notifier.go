package mocks

import (
	"context"

	"printshop/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) QuoteReceived(ctx context.Context, q *model.Quote) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}
