// Package models defines the todo record and its update inputs.
package models

// Todo represents a todo item. Once created, all five fields are always
// present: ID and CreatedAt are assigned exactly once and never change.
type Todo struct {
	ID          string `firestore:"id" json:"id"`
	Title       string `firestore:"title" json:"title"`
	Description string `firestore:"description" json:"description"`
	Completed   bool   `firestore:"completed" json:"completed"`
	CreatedAt   string `firestore:"created_at" json:"created_at"`
}

// TodoPatch carries a partial update. Each field is tri-state: nil means
// leave unchanged, a non-nil pointer means set to the pointed-to value.
type TodoPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// IsZero reports whether the patch carries no fields at all.
func (p TodoPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}
