package mocks

import (
	"context"

	"printshop/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID, current, next, confirm string) error {
	args := m.Called(ctx, userID, current, next, confirm)
	return args.Error(0)
}
