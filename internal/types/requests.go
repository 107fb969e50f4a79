package types

import (
	"fmt"
	"strings"

	"github.com/recipe-mgmt/recipe-storage/internal/models"
)

// ValidationError describes a rejected request body. Handlers map it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// CreateRecipeRequest is the request body for creating or updating a recipe.
// Optional minute fields are pointers so "absent" and "zero" stay distinct.
type CreateRecipeRequest struct {
	Title               string              `json:"title"`
	Description         string              `json:"description"`
	Ingredients         []string            `json:"ingredients"`
	Instructions        []string            `json:"instructions"`
	PrepTime            *int                `json:"prepTime"`
	CookTime            *int                `json:"cookTime"`
	Servings            int                 `json:"servings"`
	Nutrition           map[string]float64  `json:"nutrition"`
	Tips                map[string][]string `json:"tips"`
	ImageURL            string              `json:"imageUrl"`
	Source              string              `json:"source"`
	Tags                []string            `json:"tags"`
	DietaryRestrictions []string            `json:"dietaryRestrictions"`
	IsPublic            bool                `json:"isPublic"`
}

// Validate checks the request against the recipe invariants. Returns a
// *ValidationError describing the first failure found.
func (r *CreateRecipeRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return invalid("title is required")
	}
	if len(r.Ingredients) == 0 {
		return invalid("at least one ingredient is required")
	}
	for i, ing := range r.Ingredients {
		if strings.TrimSpace(ing) == "" {
			return invalid("ingredient %d must not be blank", i+1)
		}
	}
	if len(r.Instructions) == 0 {
		return invalid("at least one instruction is required")
	}
	for i, step := range r.Instructions {
		if strings.TrimSpace(step) == "" {
			return invalid("instruction %d must not be blank", i+1)
		}
	}
	if r.Servings < 1 {
		return invalid("servings must be a positive integer")
	}
	if r.Source != models.SourceAIGenerated && r.Source != models.SourceManual {
		return invalid("source must be %q or %q", models.SourceAIGenerated, models.SourceManual)
	}
	if r.PrepTime != nil && *r.PrepTime <= 0 {
		return invalid("prepTime must be positive")
	}
	if r.CookTime != nil && *r.CookTime <= 0 {
		return invalid("cookTime must be positive")
	}
	return nil
}

// UpdateSharingRequest toggles a recipe's public visibility. The pointer
// keeps a missing field distinguishable from an explicit false.
type UpdateSharingRequest struct {
	IsPublic *bool `json:"isPublic"`
}

// Validate rejects a body without the isPublic field.
func (r *UpdateSharingRequest) Validate() error {
	if r.IsPublic == nil {
		return invalid("isPublic is required")
	}
	return nil
}
