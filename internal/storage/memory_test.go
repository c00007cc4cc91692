package storage

import (
	"context"
	"testing"

	"github.com/mcptest/todo-backend/internal/errors"
	"github.com/mcptest/todo-backend/internal/models"
)

func TestMemoryStorePutGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	todo := &models.Todo{ID: "id-1", Title: "t", CreatedAt: "2024-01-01T00:00:00Z"}
	if err := store.Put(ctx, todo); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := store.Get(ctx, "id-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if *got != *todo {
		t.Errorf("Get() = %+v, want %+v", got, todo)
	}

	// Mutating the returned record must not leak back into the store.
	got.Title = "mutated"
	again, err := store.Get(ctx, "id-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if again.Title != "t" {
		t.Errorf("store record mutated through returned copy: %+v", again)
	}
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreScanEmpty(t *testing.T) {
	store := NewMemoryStore()

	todos, err := store.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if todos == nil || len(todos) != 0 {
		t.Errorf("Scan() = %v, want empty non-nil slice", todos)
	}
}

func TestMemoryStoreUpdate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Put(ctx, &models.Todo{ID: "id-1", Title: "t", Description: "d"}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	updated, err := store.Update(ctx, "id-1", []Field{
		{Path: "completed", Value: true},
		{Path: "title", Value: "new"},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Title != "new" || !updated.Completed || updated.Description != "d" {
		t.Errorf("Update() = %+v", updated)
	}
}

func TestMemoryStoreUpdateNotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Update(context.Background(), "missing", []Field{
		{Path: "completed", Value: true},
	})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreUpdateUnknownField(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Put(ctx, &models.Todo{ID: "id-1"}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	if _, err := store.Update(ctx, "id-1", []Field{{Path: "bogus", Value: 1}}); err == nil {
		t.Error("Update() with unknown field succeeded, want error")
	}
}

func TestMemoryStoreDeleteIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Put(ctx, &models.Todo{ID: "id-1"}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	if err := store.Delete(ctx, "id-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Delete(ctx, "id-1"); err != nil {
		t.Fatalf("second Delete() error = %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}
