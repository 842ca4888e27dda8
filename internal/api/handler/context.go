package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apimw "github.com/quicklist/todo-api/internal/api/middleware"
)

// ctxUserID extracts the user identifier injected by the Auth middleware and
// performs a fast-fail check before any service call: an empty value means
// the middleware did not run, so the request must not touch the store.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(apimw.UserIDKey).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
