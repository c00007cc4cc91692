// Package storage provides the durable todo table abstraction.
package storage

import (
	"context"

	"github.com/mcptest/todo-backend/internal/models"
)

// Field is a single (path, value) pair applied by a partial update.
type Field struct {
	Path  string
	Value any
}

// Store defines the interface to the durable key-value table holding todo
// records. The table is keyed by todo id; per-key operations are atomic but
// there are no cross-record transactions.
type Store interface {
	// Put stores the full record, overwriting any existing one with the same id.
	Put(ctx context.Context, todo *models.Todo) error

	// Get returns the record for id, or errors.ErrNotFound when absent.
	Get(ctx context.Context, id string) (*models.Todo, error)

	// Scan returns all records in unspecified order. An empty table yields
	// an empty, non-nil slice.
	Scan(ctx context.Context) ([]*models.Todo, error)

	// Update applies the given fields to the record keyed by id and returns
	// the post-update record. A missing id yields errors.ErrNotFound.
	Update(ctx context.Context, id string, fields []Field) (*models.Todo, error)

	// Delete removes the record keyed by id. Deleting a missing id is not
	// an error.
	Delete(ctx context.Context, id string) error
}
