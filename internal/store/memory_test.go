package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipe-mgmt/recipe-storage/internal/models"
)

func sampleRecipe(id, owner string) *models.Recipe {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &models.Recipe{
		ID:           id,
		OwnerUID:     owner,
		Title:        "Test Recipe",
		Ingredients:  []string{"a", "b"},
		Instructions: []string{"step"},
		Servings:     2,
		Source:       models.SourceManual,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestMemoryStorePutGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Put(ctx, "r1", sampleRecipe("r1", "u1"))
	require.NoError(t, err)

	got, err := s.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.OwnerUID)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreGetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Put(ctx, "r1", sampleRecipe("r1", "u1"))
	require.NoError(t, err)

	first, err := s.Get(ctx, "r1")
	require.NoError(t, err)
	first.Title = "mutated"
	first.Ingredients[0] = "mutated"

	second, err := s.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "Test Recipe", second.Title)
	assert.Equal(t, "a", second.Ingredients[0])
}

func TestMemoryStoreDeleteIdempotent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Put(ctx, "r1", sampleRecipe("r1", "u1"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "r1"))
	// Deleting an absent document is not an error at this layer.
	require.NoError(t, s.Delete(ctx, "r1"))

	_, err = s.Get(ctx, "r1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreQueryByField(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Put(ctx, "r1", sampleRecipe("r1", "u1"))
	require.NoError(t, err)
	_, err = s.Put(ctx, "r2", sampleRecipe("r2", "u2"))
	require.NoError(t, err)
	public := sampleRecipe("r3", "u2")
	public.IsPublic = true
	_, err = s.Put(ctx, "r3", public)
	require.NoError(t, err)

	mine, err := s.QueryByField(ctx, "ownerUid", "u2")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	shared, err := s.QueryByField(ctx, "isPublic", true)
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, "r3", shared[0].ID)

	_, err = s.QueryByField(ctx, "servings", 2)
	assert.Error(t, err)
}

func TestMemoryStorePatch(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Put(ctx, "r1", sampleRecipe("r1", "u1"))
	require.NoError(t, err)

	later := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	err = s.Patch(ctx, "r1", map[string]interface{}{
		"isPublic":  true,
		"updatedAt": later,
	})
	require.NoError(t, err)

	got, err := s.Get(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, got.IsPublic)
	assert.Equal(t, later, got.UpdatedAt)

	err = s.Patch(ctx, "missing", map[string]interface{}{"isPublic": true})
	assert.ErrorIs(t, err, ErrNotFound)
}
