package middlewares

import (
	"net/http"

	"github.com/tradelayer/sessiongate/internal/apistatus"
	"github.com/tradelayer/sessiongate/internal/server/apidoc"
)

// NotAuthenticatedDescription is the description rendered when a route
// requires authentication and the credential slot is empty.
const NotAuthenticatedDescription = "Authentication required"

// NotAuthenticated returns the failure rendered when a route requires
// authentication and no credentials are attached to the request.
func NotAuthenticated() *apistatus.Error {
	return apistatus.NewErrorWithDescription(apistatus.AccessTokenExpired, NotAuthenticatedDescription)
}

// NotAuthorized returns the failure rendered when the request is
// authenticated but misses the required claim. The envelope echoes the
// missing claim name.
func NotAuthorized(claim string) *apistatus.Error {
	return apistatus.NewErrorWithData(apistatus.AccessClaimRequired, claim)
}

// FailureContracts returns the response shapes every protected route can
// produce, for registration with the documentation generator.
func FailureContracts() []apidoc.Response {
	return []apidoc.Response{
		{
			HTTPCode:    http.StatusUnauthorized,
			Description: NotAuthenticatedDescription,
			Schema:      NotAuthenticated().Envelope(),
		},
		{
			HTTPCode:    http.StatusForbidden,
			Description: "Authorization required",
			Schema:      NotAuthorized("claim-name").Envelope(),
		},
	}
}
