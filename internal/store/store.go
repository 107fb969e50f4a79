package store

import (
	"context"
	"errors"
	"time"

	"github.com/recipe-mgmt/recipe-storage/internal/models"
)

var (
	// ErrNotFound is returned when no document exists for the given id.
	ErrNotFound = errors.New("document not found")
	// ErrConflict is returned when a write collides with an existing document.
	ErrConflict = errors.New("document conflict")
	// ErrUnavailable is returned when the backing store is unreachable or
	// not configured.
	ErrUnavailable = errors.New("document store unavailable")
)

// Store is the document-store capability the recipe service runs against.
// Implementations never interpret recipe field semantics beyond (de)serializing
// them; all business rules live above this layer.
type Store interface {
	// Put inserts or overwrites the document with the given id and returns
	// the write instant reported by the store.
	Put(ctx context.Context, id string, recipe *models.Recipe) (time.Time, error)

	// Get returns the document with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*models.Recipe, error)

	// Delete removes the document. Deleting an absent document is not an
	// error at this layer.
	Delete(ctx context.Context, id string) error

	// QueryByField returns all documents whose named field equals value.
	// No ordering is guaranteed.
	QueryByField(ctx context.Context, field string, value interface{}) ([]*models.Recipe, error)

	// Patch applies a partial update of named fields to an existing
	// document. Returns ErrNotFound when the document is absent.
	Patch(ctx context.Context, id string, fields map[string]interface{}) error
}
