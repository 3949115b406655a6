package middlewares

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/tradelayer/sessiongate/internal/model"
	"github.com/tradelayer/sessiongate/internal/server/credentials"
	"github.com/tradelayer/sessiongate/internal/sessionstore"
)

// Auth returns the session resolution middleware. It is a filter, not a
// gate: it attaches credentials to the request when the bearer token
// resolves to a session, and lets every request through otherwise. Whether
// a route actually requires authentication is decided downstream by
// RequireAuth or RequireClaim.
func Auth(store sessionstore.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := sessionToken(c)
			if !ok {
				return next(c)
			}

			session, err := store.Get(c.Request().Context(), model.PartitionKey, token)
			if err != nil {
				// A miss is a normal outcome on an eventually consistent
				// replica: unknown, expired or not yet replicated token.
				// Anything else is reported but still degrades to an
				// unauthenticated request rather than failing the pipeline.
				if !store.IsNotFound(err) {
					logrus.WithError(err).Warn("session lookup failed")
				}
				return next(c)
			}

			c.Set(credentials.ContextKey, credentials.FromSession(session))
			return next(c)
		}
	}
}
