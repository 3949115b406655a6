package middlewares

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tradelayer/sessiongate/internal/server/credentials"
)

// RequireAuth returns a middleware rejecting requests without credentials.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := credentials.FromContext(c); !ok {
				return NotAuthenticated()
			}
			return next(c)
		}
	}
}

// RequireClaim returns a middleware rejecting requests whose credentials do
// not carry an unexpired claim with the given name. Claims are scanned by
// name, their order is not significant.
func RequireClaim(name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			creds, ok := credentials.FromContext(c)
			if !ok {
				return NotAuthenticated()
			}

			now := time.Now()
			for _, claim := range creds.Claims() {
				if claim.Name == name && claim.Expires.After(now) {
					return next(c)
				}
			}
			return NotAuthorized(name)
		}
	}
}
