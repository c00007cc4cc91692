package storage

import (
	"context"
	"sync"

	"github.com/mcptest/todo-backend/internal/errors"
	"github.com/mcptest/todo-backend/internal/models"
)

// MemoryStore is an in-memory Store implementation with the same per-key
// semantics as the durable table. It backs tests and local development runs
// that have no Firestore available.
type MemoryStore struct {
	mu    sync.RWMutex
	todos map[string]models.Todo
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		todos: make(map[string]models.Todo),
	}
}

// Put stores the full record, overwriting any existing one with the same id.
func (s *MemoryStore) Put(ctx context.Context, todo *models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos[todo.ID] = *todo
	return nil
}

// Get returns a copy of the record for id, or errors.ErrNotFound when absent.
func (s *MemoryStore) Get(ctx context.Context, id string) (*models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todo, ok := s.todos[id]
	if !ok {
		return nil, errors.ErrNotFound
	}

	return &todo, nil
}

// Scan returns copies of all records in map iteration order.
func (s *MemoryStore) Scan(ctx context.Context) ([]*models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todos := make([]*models.Todo, 0, len(s.todos))
	for _, todo := range s.todos {
		t := todo
		todos = append(todos, &t)
	}

	return todos, nil
}

// Update applies the given fields to the record keyed by id and returns the
// post-update record.
func (s *MemoryStore) Update(ctx context.Context, id string, fields []Field) (*models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo, ok := s.todos[id]
	if !ok {
		return nil, errors.ErrNotFound
	}

	for _, f := range fields {
		switch f.Path {
		case "title":
			todo.Title = f.Value.(string)
		case "description":
			todo.Description = f.Value.(string)
		case "completed":
			todo.Completed = f.Value.(bool)
		default:
			return nil, errors.New("unknown field path %q", f.Path)
		}
	}

	s.todos[id] = todo
	return &todo, nil
}

// Delete removes the record keyed by id. A missing id is not an error.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.todos, id)
	return nil
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.todos)
}
