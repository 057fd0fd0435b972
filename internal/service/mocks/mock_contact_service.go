package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"landing/internal/service"
)

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Acknowledge(ctx context.Context, req *service.ContactRequest) (*service.Acknowledgement, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Acknowledgement), args.Error(1)
}
