package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTodoNotFound       = errors.New("todo not found")
	ErrInvalidID          = errors.New("invalid ID")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoToken and ErrInvalidToken cover the two 401 branches of the
	// authentication step: header absent vs. token present but unverifiable.
	ErrNoToken      = errors.New("access denied, no token provided")
	ErrInvalidToken = errors.New("invalid token")
)

// FieldIssue is a single field-level validation failure.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates all field issues for a rejected request body.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return "validation error: " + strings.Join(msgs, "; ")
}
