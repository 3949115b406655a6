package credentials_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/tradelayer/sessiongate/internal/apistatus"
	"github.com/tradelayer/sessiongate/internal/model"
	"github.com/tradelayer/sessiongate/internal/server/credentials"
)

func TestFromSession(t *testing.T) {
	session := model.NewSessionEntity("abc123", "u1")
	session.SetClaim(model.SessionClaim{Name: "trade", Expires: 1717245000000000, IP: "203.0.113.7"})
	session.SetClaim(model.SessionClaim{Name: "withdraw", Expires: 1717245600000000})

	creds := credentials.FromSession(session)
	assert.Equal(t, "u1", creds.ID())

	claims := creds.Claims()
	assert.Len(t, claims, 2)
	assert.Equal(t, "trade", claims[0].Name)
	assert.True(t, claims[0].Expires.Equal(time.UnixMicro(1717245000000000)))
	// The stored claim IP is audit data, never surfaced as a restriction.
	assert.Nil(t, claims[0].AllowedIPs)
	assert.Nil(t, claims[1].AllowedIPs)
}

func TestFromSessionWithoutClaims(t *testing.T) {
	creds := credentials.FromSession(model.NewSessionEntity("abc123", "u1"))

	assert.Equal(t, "u1", creds.ID())
	assert.Nil(t, creds.Claims())
}

func TestTraderID(t *testing.T) {
	c := newContext()
	_, err := credentials.TraderID(c)
	assert.Equal(t, http.StatusUnauthorized, apistatus.StatusCode(err))

	c.Set(credentials.ContextKey, credentials.FromSession(model.NewSessionEntity("abc123", "u1")))
	id, err := credentials.TraderID(c)
	assert.NoError(t, err)
	assert.Equal(t, "u1", id)
}

func newContext() echo.Context {
	engine := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return engine.NewContext(req, httptest.NewRecorder())
}
