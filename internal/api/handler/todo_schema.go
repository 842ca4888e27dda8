package handler

import "time"

// --- Request types ---

type createTodoRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"omitempty"`
}

// updateTodoRequest carries a partial update. Pointer fields distinguish
// "absent" from "set to empty"; an absent field is left untouched.
type updateTodoRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending completed"`
}

// --- Response types ---

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// service changes.

type todoResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type todoDataResponse struct {
	Data todoResponse `json:"data"`
}

type listTodosResponse struct {
	Data []todoResponse `json:"data"`
}

type messageResponse struct {
	Message string `json:"message"`
}
