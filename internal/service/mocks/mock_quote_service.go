package mocks

import (
	"context"

	"printshop/internal/model"
	"printshop/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockQuoteService struct {
	mock.Mock
}

func (m *MockQuoteService) Submit(ctx context.Context, sub service.QuoteSubmission) (*model.Quote, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quote), args.Error(1)
}

func (m *MockQuoteService) List(ctx context.Context, status string, limit, offset int) (*service.QuoteListResult, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.QuoteListResult), args.Error(1)
}

func (m *MockQuoteService) Get(ctx context.Context, id string) (*model.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quote), args.Error(1)
}

func (m *MockQuoteService) Review(ctx context.Context, id string, rev service.QuoteReview) (*model.Quote, error) {
	args := m.Called(ctx, id, rev)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quote), args.Error(1)
}
