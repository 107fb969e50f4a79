package types

import (
	"time"

	"github.com/recipe-mgmt/recipe-storage/internal/models"
)

// RecipeResponse is the outward projection of a stored recipe. Identical in
// content plus the derived totalTime.
type RecipeResponse struct {
	ID                  string              `json:"id"`
	OwnerUID            string              `json:"ownerUid"`
	Title               string              `json:"title"`
	Description         string              `json:"description,omitempty"`
	Ingredients         []string            `json:"ingredients"`
	Instructions        []string            `json:"instructions"`
	PrepTime            int                 `json:"prepTime,omitempty"`
	CookTime            int                 `json:"cookTime,omitempty"`
	TotalTime           int                 `json:"totalTime,omitempty"`
	Servings            int                 `json:"servings"`
	Nutrition           map[string]float64  `json:"nutrition,omitempty"`
	Tips                map[string][]string `json:"tips,omitempty"`
	ImageURL            string              `json:"imageUrl,omitempty"`
	Source              string              `json:"source"`
	Tags                []string            `json:"tags,omitempty"`
	DietaryRestrictions []string            `json:"dietaryRestrictions,omitempty"`
	IsPublic            bool                `json:"isPublic"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

// NewRecipeResponse maps a stored recipe to its response projection.
func NewRecipeResponse(r *models.Recipe) *RecipeResponse {
	return &RecipeResponse{
		ID:                  r.ID,
		OwnerUID:            r.OwnerUID,
		Title:               r.Title,
		Description:         r.Description,
		Ingredients:         r.Ingredients,
		Instructions:        r.Instructions,
		PrepTime:            r.PrepMinutes,
		CookTime:            r.CookMinutes,
		TotalTime:           r.TotalMinutes(),
		Servings:            r.Servings,
		Nutrition:           r.Nutrition,
		Tips:                r.Tips,
		ImageURL:            r.ImageURL,
		Source:              r.Source,
		Tags:                r.Tags,
		DietaryRestrictions: r.DietaryRestrictions,
		IsPublic:            r.IsPublic,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}
