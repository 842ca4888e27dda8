package ports

import (
	"context"

	"github.com/quicklist/todo-api/internal/core/domain"
)

// CreateTodoInput carries the data needed to create a new item for a user.
type CreateTodoInput struct {
	OwnerID     string
	Title       string
	Description string
}

// UpdateTodoInput carries the partial fields of an update. Absent fields are
// not modified.
type UpdateTodoInput struct {
	Title       *string
	Description *string
	Status      *domain.TodoStatus
}

// TodoService defines use-case operations on a user's todo list. Every
// operation is scoped to the acting user's identifier.
type TodoService interface {
	List(ctx context.Context, ownerID string) ([]*domain.Todo, error)
	Create(ctx context.Context, input CreateTodoInput) (*domain.Todo, error)
	Get(ctx context.Context, id, ownerID string) (*domain.Todo, error)
	Update(ctx context.Context, id, ownerID string, input UpdateTodoInput) (*domain.Todo, error)
	Delete(ctx context.Context, id, ownerID string) (*domain.Todo, error)
}
