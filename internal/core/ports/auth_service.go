package ports

import (
	"context"

	"github.com/quicklist/todo-api/internal/core/domain"
)

// AuthService defines the signup and login use cases. Both return a freshly
// issued bearer token alongside the account.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
