package ports

import (
	"context"

	"github.com/quicklist/todo-api/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrUserExists when the email
	// is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns the user registered under email, or
	// domain.ErrUserNotFound when no such account exists.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
