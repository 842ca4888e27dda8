package ports

import (
	"context"

	"github.com/quicklist/todo-api/internal/core/domain"
)

// TodoPatch carries the optional fields of a partial update. Nil fields are
// left untouched by the store.
type TodoPatch struct {
	Title       *string
	Description *string
	Status      *domain.TodoStatus
}

// TodoRepository defines persistence operations for todo items. Every query
// is filtered by the owner's identifier; an item owned by another user is
// indistinguishable from a missing one.
type TodoRepository interface {
	// ListByOwner returns all items owned by ownerID, newest-created first.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Todo, error)
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	// FindOneOwned returns domain.ErrTodoNotFound when no item matches
	// {id, ownerID}.
	FindOneOwned(ctx context.Context, id, ownerID string) (*domain.Todo, error)
	// UpdateOneOwned atomically applies patch to the matching item, refreshes
	// its update timestamp, and returns the updated document.
	UpdateOneOwned(ctx context.Context, id, ownerID string, patch TodoPatch) (*domain.Todo, error)
	// DeleteOneOwned atomically removes the matching item and returns the
	// deleted document for confirmation.
	DeleteOneOwned(ctx context.Context, id, ownerID string) (*domain.Todo, error)
}
