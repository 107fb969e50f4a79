package service

import (
	"context"

	"github.com/recipe-mgmt/recipe-storage/internal/types"
)

// IRecipeService defines the interface for recipe operations. Every operation
// takes the calling uid explicitly; nothing reads ambient state.
type IRecipeService interface {
	SaveRecipe(ctx context.Context, req *types.CreateRecipeRequest, uid string) (*types.RecipeResponse, error)
	GetRecipe(ctx context.Context, recipeID, uid string) (*types.RecipeResponse, error)
	ListUserRecipes(ctx context.Context, uid string) ([]*types.RecipeResponse, error)
	ListPublicRecipes(ctx context.Context) ([]*types.RecipeResponse, error)
	UpdateRecipe(ctx context.Context, recipeID string, req *types.CreateRecipeRequest, uid string) (*types.RecipeResponse, error)
	UpdateSharing(ctx context.Context, recipeID string, isPublic bool, uid string) (*types.RecipeResponse, error)
	DeleteRecipe(ctx context.Context, recipeID, uid string) error
}
