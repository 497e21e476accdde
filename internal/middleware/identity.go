package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// IdentityKey is the echo context key holding the caller identity
const IdentityKey = "identity"

// Identity returns the authenticated caller, or "" for anonymous requests
func Identity(c echo.Context) string {
	id, _ := c.Get(IdentityKey).(string)
	return id
}

// bearerToken extracts the token from the Authorization header. ok is false
// when no header was sent; a malformed header is an error.
func bearerToken(c echo.Context) (token string, ok bool, err error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false, nil
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", true, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header must be in Bearer format")
	}
	return parts[1], true, nil
}
