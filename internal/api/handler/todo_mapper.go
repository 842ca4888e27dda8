package handler

import (
	"github.com/quicklist/todo-api/internal/core/domain"
	"github.com/quicklist/todo-api/internal/core/ports"
)

// --- Request → Service input ---

func toUpdateInput(req updateTodoRequest) ports.UpdateTodoInput {
	input := ports.UpdateTodoInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.TodoStatus(*req.Status)
		input.Status = &status
	}
	return input
}

// --- Domain → HTTP response ---

func toTodoResponse(t *domain.Todo) todoResponse {
	return todoResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
}

func toListResponse(todos []*domain.Todo) listTodosResponse {
	items := make([]todoResponse, len(todos))
	for i, t := range todos {
		items[i] = toTodoResponse(t)
	}
	return listTodosResponse{Data: items}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}
