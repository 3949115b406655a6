// Package credentials exposes the identity resolved for a request as a
// capability consumed by the claim-based authorization middlewares, without
// leaking the session storage model to the handlers.
package credentials

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tradelayer/sessiongate/internal/apistatus"
	"github.com/tradelayer/sessiongate/internal/model"
)

// ContextKey is the key to retrieve the request credentials from echo.Context.
const ContextKey = "credentials"

type (
	// Credentials is the identity and claim view attached to an
	// authenticated request.
	Credentials interface {
		// ID returns the authenticated subject identifier.
		ID() string
		// Claims returns the permission claims granted to the subject,
		// nil when it has none.
		Claims() []Claim
	}

	// A Claim is a named permission grant with its own expiration.
	Claim struct {
		Name    string
		Expires time.Time
		// AllowedIPs is always nil at this projection. The session rows
		// carry a per-claim IP for audit purposes only; it is not an
		// enforced restriction.
		AllowedIPs []string
	}

	session struct {
		entity *model.SessionEntity
	}
)

// FromSession adapts a resolved session entity into request credentials.
func FromSession(entity *model.SessionEntity) Credentials {
	return session{entity: entity}
}

func (s session) ID() string {
	return s.entity.TraderID
}

func (s session) Claims() []Claim {
	if s.entity.Claims == nil {
		return nil
	}

	claims := make([]Claim, 0, len(s.entity.Claims))
	for _, claim := range s.entity.Claims {
		claims = append(claims, Claim{
			Name:       claim.Name,
			Expires:    claim.ExpiresAt(),
			AllowedIPs: nil,
		})
	}
	return claims
}

// FromContext returns the credentials attached to the request, if any.
func FromContext(c echo.Context) (Credentials, bool) {
	creds, ok := c.Get(ContextKey).(Credentials)
	return creds, ok
}

// TraderID returns the authenticated subject of the request. It returns the
// not-authenticated failure when the credential slot is empty.
func TraderID(c echo.Context) (string, error) {
	creds, ok := FromContext(c)
	if !ok {
		return "", apistatus.NewErrorWithDescription(apistatus.AccessTokenExpired, "Authentication required")
	}
	return creds.ID(), nil
}
