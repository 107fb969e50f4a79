package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/recipe-mgmt/recipe-storage/internal/auth"
)

// MockVerifier is a mock implementation of the identity verifier.
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, idToken string) (*auth.Principal, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Principal), args.Error(1)
}
