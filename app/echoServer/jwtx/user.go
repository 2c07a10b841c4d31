package jwtx

import (
	"errors"

	"github.com/labstack/echo/v4"
)

// UserIDFromContext reads the identity the auth middleware left in the
// request context.
func UserIDFromContext(c echo.Context) (string, error) {
	id, ok := c.Get("user_id").(string)
	if !ok || id == "" {
		return "", errors.New("no authenticated user in context")
	}
	return id, nil
}
