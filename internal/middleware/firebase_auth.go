package middleware

import (
	"context"
	"net/http"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
)

// TokenVerifier is the part of the Firebase auth client used to verify ID tokens
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// FirebaseAuthMiddleware verifies Firebase ID tokens and stores the Firebase
// UID as the caller identity. Requests without an Authorization header pass
// through anonymously.
func FirebaseAuthMiddleware(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			idToken, ok, err := bearerToken(c)
			if err != nil {
				return err
			}
			if !ok {
				return next(c)
			}

			token, err := verifier.VerifyIDToken(c.Request().Context(), idToken)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired ID token")
			}

			c.Set(IdentityKey, token.UID)
			return next(c)
		}
	}
}
