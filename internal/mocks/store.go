package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/recipe-mgmt/recipe-storage/internal/models"
)

// MockStore is a mock implementation of the document store.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Put(ctx context.Context, id string, recipe *models.Recipe) (time.Time, error) {
	args := m.Called(ctx, id, recipe)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockStore) Get(ctx context.Context, id string) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) QueryByField(ctx context.Context, field string, value interface{}) ([]*models.Recipe, error) {
	args := m.Called(ctx, field, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Recipe), args.Error(1)
}

func (m *MockStore) Patch(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}
