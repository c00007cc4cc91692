// Package todo implements the shared todo service used by both front-ends.
package todo

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mcptest/todo-backend/internal/errors"
	"github.com/mcptest/todo-backend/internal/models"
	"github.com/mcptest/todo-backend/internal/storage"
)

// Service exposes create/list/get/update/delete over todo records. It owns
// the canonical record shape and the partial-update rules; all state lives
// in the store, with no in-memory copies held between calls.
type Service struct {
	store storage.Store
}

// NewService creates a service backed by the given store.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Create assigns a fresh id and creation timestamp, persists the full
// record, and returns it. The description defaults to the empty string.
func (s *Service) Create(ctx context.Context, title, description string) (*models.Todo, error) {
	todo := &models.Todo{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339Nano),
	}

	if err := s.store.Put(ctx, todo); err != nil {
		return nil, err
	}

	return todo, nil
}

// List returns all stored records. Order is unspecified; an empty store
// yields an empty slice, never nil.
func (s *Service) List(ctx context.Context) ([]*models.Todo, error) {
	return s.store.Scan(ctx)
}

// Get returns the record for id, or errors.ErrNotFound when absent.
func (s *Service) Get(ctx context.Context, id string) (*models.Todo, error) {
	return s.store.Get(ctx, id)
}

// Update applies the non-nil patch fields to the record keyed by id and
// returns the post-update record. A present-but-empty title is skipped. A
// patch with no applicable fields returns errors.ErrNotFound, the same
// signal as a missing id.
func (s *Service) Update(ctx context.Context, id string, patch models.TodoPatch) (*models.Todo, error) {
	var fields []storage.Field

	if patch.Completed != nil {
		fields = append(fields, storage.Field{Path: "completed", Value: *patch.Completed})
	}
	if patch.Title != nil && *patch.Title != "" {
		fields = append(fields, storage.Field{Path: "title", Value: *patch.Title})
	}
	if patch.Description != nil {
		fields = append(fields, storage.Field{Path: "description", Value: *patch.Description})
	}

	if len(fields) == 0 {
		return nil, errors.ErrNotFound
	}

	return s.store.Update(ctx, id, fields)
}

// Delete removes the record keyed by id. Deleting a missing id succeeds
// silently.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
