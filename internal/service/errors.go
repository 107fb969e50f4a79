package service

import (
	"errors"
	"fmt"

	"github.com/recipe-mgmt/recipe-storage/internal/store"
)

var (
	// ErrNotFound means no recipe exists for the requested id.
	ErrNotFound = errors.New("recipe not found")
	// ErrForbidden means the caller is not the owner of the recipe.
	ErrForbidden = errors.New("access denied")
	// ErrConflict means a freshly generated id collided with an existing document.
	ErrConflict = errors.New("recipe id conflict")
	// ErrUnavailable means the document store could not serve the operation.
	ErrUnavailable = errors.New("recipe store unavailable")
)

// mapStoreErr lifts store-layer errors into the service taxonomy.
func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrUnavailable):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	case errors.Is(err, store.ErrConflict):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return err
	}
}
