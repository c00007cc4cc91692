package storage

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mcptest/todo-backend/internal/errors"
	"github.com/mcptest/todo-backend/internal/models"
)

// FirestoreStore implements Store on top of a Cloud Firestore collection.
// Each todo is one document whose id equals the todo id.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreStore opens a handle to the named collection in the given
// project.
func NewFirestoreStore(ctx context.Context, projectID, collection string) (*FirestoreStore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	return &FirestoreStore{
		client:     client,
		collection: collection,
	}, nil
}

// Close releases the underlying client connection.
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

// Put stores the full record, overwriting any existing one with the same id.
func (s *FirestoreStore) Put(ctx context.Context, todo *models.Todo) error {
	_, err := s.client.Collection(s.collection).Doc(todo.ID).Set(ctx, todo)
	if err != nil {
		return errors.Wrap(err, "failed to put todo %s", todo.ID)
	}

	return nil
}

// Get returns the record for id, or errors.ErrNotFound when absent.
func (s *FirestoreStore) Get(ctx context.Context, id string) (*models.Todo, error) {
	doc, err := s.client.Collection(s.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to get todo %s", id)
	}

	var todo models.Todo
	if err := doc.DataTo(&todo); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal todo %s", id)
	}

	return &todo, nil
}

// Scan returns all records via a full collection scan. Order is whatever the
// store yields; callers must not depend on it.
func (s *FirestoreStore) Scan(ctx context.Context) ([]*models.Todo, error) {
	iter := s.client.Collection(s.collection).Documents(ctx)
	defer iter.Stop()

	todos := make([]*models.Todo, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate todos")
		}

		var todo models.Todo
		if err := doc.DataTo(&todo); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal todo %s", doc.Ref.ID)
		}

		todos = append(todos, &todo)
	}

	return todos, nil
}

// Update applies the given fields to the record keyed by id and returns the
// post-update record. Firestore's Update fails on a missing document, which
// maps to errors.ErrNotFound.
func (s *FirestoreStore) Update(ctx context.Context, id string, fields []Field) (*models.Todo, error) {
	updates := make([]firestore.Update, 0, len(fields))
	for _, f := range fields {
		updates = append(updates, firestore.Update{Path: f.Path, Value: f.Value})
	}

	_, err := s.client.Collection(s.collection).Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.ErrNotFound
		}
		return nil, errors.Wrap(err, "failed to update todo %s", id)
	}

	return s.Get(ctx, id)
}

// Delete removes the record keyed by id. Firestore deletes are unconditional,
// so a missing id succeeds silently.
func (s *FirestoreStore) Delete(ctx context.Context, id string) error {
	_, err := s.client.Collection(s.collection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to delete todo %s", id)
	}

	return nil
}

// DeleteAll removes every record in the collection and returns the number of
// records deleted. Used by the init command to reset the table.
func (s *FirestoreStore) DeleteAll(ctx context.Context) (int, error) {
	iter := s.client.Collection(s.collection).Documents(ctx)
	defer iter.Stop()

	var deleted int
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, errors.Wrap(err, "failed to iterate todos for deletion")
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return deleted, errors.Wrap(err, "failed to delete todo %s", doc.Ref.ID)
		}
		deleted++
	}

	return deleted, nil
}
