package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/recipe-mgmt/recipe-storage/internal/cache"
	"github.com/recipe-mgmt/recipe-storage/internal/logger"
	"github.com/recipe-mgmt/recipe-storage/internal/models"
	"github.com/recipe-mgmt/recipe-storage/internal/store"
	"github.com/recipe-mgmt/recipe-storage/internal/types"
)

// RecipeService holds all recipe business rules: id and timestamp assignment,
// ownership checks, visibility rules, response mapping and listing order.
// It keeps no per-request state and is safe for concurrent use.
type RecipeService struct {
	store store.Store
	cache cache.PublicRecipes
	log   *logger.Logger

	// Injectable for tests; defaults to UTC wall clock and random UUIDs.
	now   func() time.Time
	newID func() string
}

// NewRecipeService creates a RecipeService. publicCache may be nil, in which
// case every public listing goes to the store.
func NewRecipeService(st store.Store, publicCache cache.PublicRecipes, log *logger.Logger) *RecipeService {
	return &RecipeService{
		store: st,
		cache: publicCache,
		log:   log.With("component", "recipe-service"),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// SaveRecipe validates the input, assigns a fresh id and timestamps, and
// persists the recipe for uid.
func (s *RecipeService) SaveRecipe(ctx context.Context, req *types.CreateRecipeRequest, uid string) (*types.RecipeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	recipeID := s.newID()

	// Random UUID collisions are astronomically unlikely, but never
	// overwrite an existing document on create.
	if _, err := s.store.Get(ctx, recipeID); err == nil {
		return nil, fmt.Errorf("%w: generated id %s already exists", ErrConflict, recipeID)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, mapStoreErr(err)
	}

	now := s.now()
	recipe := buildRecipe(req, recipeID, uid)
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	if _, err := s.store.Put(ctx, recipeID, recipe); err != nil {
		return nil, mapStoreErr(err)
	}
	if recipe.IsPublic {
		s.invalidatePublic(ctx)
	}

	s.log.Info("recipe saved", "op", "save", "recipeId", recipeID, "uid", uid)
	return types.NewRecipeResponse(recipe), nil
}

// GetRecipe returns the recipe when the caller owns it or it is public.
func (s *RecipeService) GetRecipe(ctx context.Context, recipeID, uid string) (*types.RecipeResponse, error) {
	recipe, err := s.store.Get(ctx, recipeID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if recipe.OwnerUID != uid && !recipe.IsPublic {
		s.log.Warn("private recipe access denied",
			"callerUid", uid, "recipeId", recipeID, "ownerUid", recipe.OwnerUID)
		return nil, ErrForbidden
	}
	return types.NewRecipeResponse(recipe), nil
}

// ListUserRecipes returns all recipes owned by uid, newest first.
func (s *RecipeService) ListUserRecipes(ctx context.Context, uid string) ([]*types.RecipeResponse, error) {
	recipes, err := s.store.QueryByField(ctx, "ownerUid", uid)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return sortAndProject(recipes), nil
}

// ListPublicRecipes returns all public recipes, newest first. Served from the
// cache when one is configured and warm.
func (s *RecipeService) ListPublicRecipes(ctx context.Context) ([]*types.RecipeResponse, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	recipes, err := s.store.QueryByField(ctx, "isPublic", true)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	out := sortAndProject(recipes)
	if s.cache != nil {
		s.cache.Set(ctx, out)
	}
	return out, nil
}

// UpdateRecipe replaces the user-supplied fields of an owned recipe. Identity
// fields (id, owner, createdAt) and the sharing flag are preserved.
func (s *RecipeService) UpdateRecipe(ctx context.Context, recipeID string, req *types.CreateRecipeRequest, uid string) (*types.RecipeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.Get(ctx, recipeID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	// A public recipe is still only writable by its owner.
	if existing.OwnerUID != uid {
		s.log.Warn("recipe update denied",
			"callerUid", uid, "recipeId", recipeID, "ownerUid", existing.OwnerUID)
		return nil, ErrForbidden
	}

	updated := buildRecipe(req, recipeID, existing.OwnerUID)
	updated.IsPublic = existing.IsPublic
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = s.now()

	if _, err := s.store.Put(ctx, recipeID, updated); err != nil {
		return nil, mapStoreErr(err)
	}
	if updated.IsPublic {
		s.invalidatePublic(ctx)
	}

	s.log.Info("recipe updated", "op", "update", "recipeId", recipeID, "uid", uid)
	return types.NewRecipeResponse(updated), nil
}

// UpdateSharing toggles the public flag of an owned recipe via a partial
// update, bumping updatedAt.
func (s *RecipeService) UpdateSharing(ctx context.Context, recipeID string, isPublic bool, uid string) (*types.RecipeResponse, error) {
	recipe, err := s.store.Get(ctx, recipeID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if recipe.OwnerUID != uid {
		s.log.Warn("sharing update denied",
			"callerUid", uid, "recipeId", recipeID, "ownerUid", recipe.OwnerUID)
		return nil, ErrForbidden
	}

	now := s.now()
	err = s.store.Patch(ctx, recipeID, map[string]interface{}{
		"isPublic":  isPublic,
		"updatedAt": now,
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	s.invalidatePublic(ctx)

	recipe.IsPublic = isPublic
	recipe.UpdatedAt = now
	s.log.Info("recipe sharing updated", "op", "share", "recipeId", recipeID, "uid", uid, "isPublic", isPublic)
	return types.NewRecipeResponse(recipe), nil
}

// DeleteRecipe removes an owned recipe. A repeat call reports NotFound.
func (s *RecipeService) DeleteRecipe(ctx context.Context, recipeID, uid string) error {
	recipe, err := s.store.Get(ctx, recipeID)
	if err != nil {
		return mapStoreErr(err)
	}
	if recipe.OwnerUID != uid {
		s.log.Warn("recipe delete denied",
			"callerUid", uid, "recipeId", recipeID, "ownerUid", recipe.OwnerUID)
		return ErrForbidden
	}

	if err := s.store.Delete(ctx, recipeID); err != nil {
		return mapStoreErr(err)
	}
	if recipe.IsPublic {
		s.invalidatePublic(ctx)
	}

	s.log.Info("recipe deleted", "op", "delete", "recipeId", recipeID, "uid", uid)
	return nil
}

func (s *RecipeService) invalidatePublic(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func buildRecipe(req *types.CreateRecipeRequest, recipeID, ownerUID string) *models.Recipe {
	recipe := &models.Recipe{
		ID:                  recipeID,
		OwnerUID:            ownerUID,
		Title:               req.Title,
		Description:         req.Description,
		Ingredients:         req.Ingredients,
		Instructions:        req.Instructions,
		Servings:            req.Servings,
		Nutrition:           req.Nutrition,
		Tips:                req.Tips,
		ImageURL:            req.ImageURL,
		Source:              req.Source,
		Tags:                req.Tags,
		DietaryRestrictions: req.DietaryRestrictions,
		IsPublic:            req.IsPublic,
	}
	if req.PrepTime != nil {
		recipe.PrepMinutes = *req.PrepTime
	}
	if req.CookTime != nil {
		recipe.CookMinutes = *req.CookTime
	}
	return recipe
}

// sortAndProject orders recipes newest first, ties broken by id ascending,
// and maps them to responses. Sorting in memory keeps the store free of
// composite indexes while per-user result sets stay small.
func sortAndProject(recipes []*models.Recipe) []*types.RecipeResponse {
	sort.Slice(recipes, func(i, j int) bool {
		if !recipes[i].CreatedAt.Equal(recipes[j].CreatedAt) {
			return recipes[i].CreatedAt.After(recipes[j].CreatedAt)
		}
		return recipes[i].ID < recipes[j].ID
	})
	out := make([]*types.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, types.NewRecipeResponse(r))
	}
	return out
}
