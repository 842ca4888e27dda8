package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/quicklist/todo-api/internal/core/domain"
	"github.com/quicklist/todo-api/internal/core/ports"
)

// TodoService implements the owner-scoped todo use cases. Authorization is
// implicit: the owner identifier is threaded into every repository call and
// never taken from request payloads.
type TodoService struct {
	repo   ports.TodoRepository
	logger zerolog.Logger
}

func NewTodoService(repo ports.TodoRepository, logger zerolog.Logger) *TodoService {
	return &TodoService{repo: repo, logger: logger}
}

// List returns all of the user's items, newest-created first.
func (s *TodoService) List(ctx context.Context, ownerID string) ([]*domain.Todo, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Create inserts a new item for the owner. Status always starts as pending.
func (s *TodoService) Create(ctx context.Context, input ports.CreateTodoInput) (*domain.Todo, error) {
	now := time.Now().UTC()
	todo := &domain.Todo{
		UserID:      input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, todo)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("todo_id", created.ID).Str("user_id", input.OwnerID).Msg("todo created")
	return created, nil
}

// Get fetches a single owned item.
func (s *TodoService) Get(ctx context.Context, id, ownerID string) (*domain.Todo, error) {
	return s.repo.FindOneOwned(ctx, id, ownerID)
}

// Update applies the present fields of input to an owned item and returns the
// updated document.
func (s *TodoService) Update(ctx context.Context, id, ownerID string, input ports.UpdateTodoInput) (*domain.Todo, error) {
	patch := ports.TodoPatch{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
	}
	return s.repo.UpdateOneOwned(ctx, id, ownerID, patch)
}

// Delete removes an owned item and returns the deleted document.
func (s *TodoService) Delete(ctx context.Context, id, ownerID string) (*domain.Todo, error) {
	return s.repo.DeleteOneOwned(ctx, id, ownerID)
}
