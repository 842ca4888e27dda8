package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/quicklist/todo-api/internal/core/domain"
	"github.com/quicklist/todo-api/internal/core/token"
)

// UserIDKey is the echo context key under which the authenticated user's
// identifier is stored.
const UserIDKey = "user_id"

// Auth extracts and verifies the bearer token, then injects the subject
// identifier into the request context. It runs before any body handling, so
// an unauthenticated request is rejected with 401 regardless of its payload.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			raw, ok := token.ExtractFromHeader(header)
			if !ok {
				return domain.ErrNoToken
			}

			subjectID, err := codec.Verify(raw)
			if err != nil {
				return fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
			}

			c.Set(UserIDKey, subjectID)
			return next(c)
		}
	}
}
