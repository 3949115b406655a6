package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tradelayer/sessiongate/internal/apistatus"
	"github.com/tradelayer/sessiongate/internal/server/credentials"
	"github.com/tradelayer/sessiongate/internal/server/middlewares"
)

type sess struct{}

// Me returns the identity and the claims resolved for the request.
func (h *sess) Me(c echo.Context) error {
	creds, ok := credentials.FromContext(c)
	if !ok {
		// Unreachable behind RequireAuth.
		return middlewares.NotAuthenticated()
	}

	claims := []echo.Map{}
	for _, claim := range creds.Claims() {
		claims = append(claims, echo.Map{
			"name":    claim.Name,
			"expires": claim.Expires,
		})
	}

	return c.JSON(http.StatusOK, apistatus.OKWithData(echo.Map{
		"trader_id": creds.ID(),
		"claims":    claims,
	}))
}
