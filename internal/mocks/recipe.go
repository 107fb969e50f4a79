package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/recipe-mgmt/recipe-storage/internal/types"
)

// MockRecipeService is a mock implementation of the recipe service.
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) SaveRecipe(ctx context.Context, req *types.CreateRecipeRequest, uid string) (*types.RecipeResponse, error) {
	args := m.Called(ctx, req, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeResponse), args.Error(1)
}

func (m *MockRecipeService) GetRecipe(ctx context.Context, recipeID, uid string) (*types.RecipeResponse, error) {
	args := m.Called(ctx, recipeID, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeResponse), args.Error(1)
}

func (m *MockRecipeService) ListUserRecipes(ctx context.Context, uid string) ([]*types.RecipeResponse, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.RecipeResponse), args.Error(1)
}

func (m *MockRecipeService) ListPublicRecipes(ctx context.Context) ([]*types.RecipeResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*types.RecipeResponse), args.Error(1)
}

func (m *MockRecipeService) UpdateRecipe(ctx context.Context, recipeID string, req *types.CreateRecipeRequest, uid string) (*types.RecipeResponse, error) {
	args := m.Called(ctx, recipeID, req, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeResponse), args.Error(1)
}

func (m *MockRecipeService) UpdateSharing(ctx context.Context, recipeID string, isPublic bool, uid string) (*types.RecipeResponse, error) {
	args := m.Called(ctx, recipeID, isPublic, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeResponse), args.Error(1)
}

func (m *MockRecipeService) DeleteRecipe(ctx context.Context, recipeID, uid string) error {
	args := m.Called(ctx, recipeID, uid)
	return args.Error(0)
}
