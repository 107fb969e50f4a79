package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/recipe-mgmt/recipe-storage/internal/logger"
	"github.com/recipe-mgmt/recipe-storage/internal/models"
)

// FirestoreStore is the production Store backed by a single flat Firestore
// collection, one document per recipe keyed by recipe id.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
	log        *logger.Logger
}

// NewFirestoreStore connects to Firestore for the given project.
func NewFirestoreStore(ctx context.Context, projectID, collection string, log *logger.Logger, opts ...option.ClientOption) (*FirestoreStore, error) {
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return &FirestoreStore{
		client:     client,
		collection: collection,
		log:        log.With("component", "firestore"),
	}, nil
}

// Close releases the underlying client.
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

func (s *FirestoreStore) Put(ctx context.Context, id string, recipe *models.Recipe) (time.Time, error) {
	wr, err := s.client.Collection(s.collection).Doc(id).Set(ctx, recipe)
	if err != nil {
		return time.Time{}, s.mapErr("put", err)
	}
	return wr.UpdateTime, nil
}

func (s *FirestoreStore) Get(ctx context.Context, id string) (*models.Recipe, error) {
	snap, err := s.client.Collection(s.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, s.mapErr("get", err)
	}
	var recipe models.Recipe
	if err := snap.DataTo(&recipe); err != nil {
		return nil, fmt.Errorf("failed to decode recipe %s: %w", id, err)
	}
	return &recipe, nil
}

func (s *FirestoreStore) Delete(ctx context.Context, id string) error {
	// Firestore deletes are idempotent; an absent document is a no-op.
	if _, err := s.client.Collection(s.collection).Doc(id).Delete(ctx); err != nil {
		return s.mapErr("delete", err)
	}
	return nil
}

func (s *FirestoreStore) QueryByField(ctx context.Context, field string, value interface{}) ([]*models.Recipe, error) {
	iter := s.client.Collection(s.collection).Where(field, "==", value).Documents(ctx)
	defer iter.Stop()

	var recipes []*models.Recipe
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, s.mapErr("query", err)
		}
		var recipe models.Recipe
		if err := snap.DataTo(&recipe); err != nil {
			return nil, fmt.Errorf("failed to decode recipe %s: %w", snap.Ref.ID, err)
		}
		recipes = append(recipes, &recipe)
	}
	return recipes, nil
}

func (s *FirestoreStore) Patch(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	if _, err := s.client.Collection(s.collection).Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return s.mapErr("patch", err)
	}
	return nil
}

// mapErr translates transport faults into the store error taxonomy. Anything
// not recognized is wrapped and surfaces as an internal error upstream.
func (s *FirestoreStore) mapErr(op string, err error) error {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		s.log.Warn("firestore unavailable", "op", op, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	case codes.AlreadyExists, codes.Aborted:
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case codes.Canceled:
		return context.Canceled
	default:
		s.log.Error("firestore operation failed", "op", op, "error", err)
		return fmt.Errorf("firestore %s failed: %w", op, err)
	}
}
