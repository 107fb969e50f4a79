package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/recipe-mgmt/recipe-storage/internal/models"
)

// MemoryStore is an in-memory Store used in tests and local development.
// Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	recipes map[string]*models.Recipe
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{recipes: make(map[string]*models.Recipe)}
}

func (s *MemoryStore) Put(ctx context.Context, id string, recipe *models.Recipe) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes[id] = recipe.Clone()
	return time.Now().UTC(), nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recipe, ok := s.recipes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return recipe.Clone(), nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.recipes, id)
	return nil
}

func (s *MemoryStore) QueryByField(ctx context.Context, field string, value interface{}) ([]*models.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Recipe
	for _, r := range s.recipes {
		match, err := fieldEquals(r, field, value)
		if err != nil {
			return nil, err
		}
		if match {
			out = append(out, r.Clone())
		}
	}
	return out, nil
}

func (s *MemoryStore) Patch(ctx context.Context, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recipe, ok := s.recipes[id]
	if !ok {
		return ErrNotFound
	}
	patched := recipe.Clone()
	for path, value := range fields {
		if err := applyField(patched, path, value); err != nil {
			return err
		}
	}
	s.recipes[id] = patched
	return nil
}

// Len reports the number of stored documents.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes)
}

func fieldEquals(r *models.Recipe, field string, value interface{}) (bool, error) {
	switch field {
	case "ownerUid":
		v, ok := value.(string)
		return ok && r.OwnerUID == v, nil
	case "isPublic":
		v, ok := value.(bool)
		return ok && r.IsPublic == v, nil
	default:
		return false, fmt.Errorf("memory store: unsupported query field %q", field)
	}
}

func applyField(r *models.Recipe, path string, value interface{}) error {
	switch path {
	case "isPublic":
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("memory store: isPublic wants bool, got %T", value)
		}
		r.IsPublic = v
	case "updatedAt":
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("memory store: updatedAt wants time.Time, got %T", value)
		}
		r.UpdatedAt = v
	default:
		return fmt.Errorf("memory store: unsupported patch field %q", path)
	}
	return nil
}
