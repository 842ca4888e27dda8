package domain

import "time"

// TodoStatus is the lifecycle state of a todo item.
type TodoStatus string

const (
	StatusPending   TodoStatus = "pending"
	StatusCompleted TodoStatus = "completed"
)

// IsValid reports whether s is one of the known statuses.
func (s TodoStatus) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Todo is the core aggregate. UserID is set once at creation and is part of
// every repository filter; ownership is never checked after the fact.
type Todo struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TodoStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
