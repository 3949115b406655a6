package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tradelayer/sessiongate/internal/model"
)

func TestSessionEntitySetClaim(t *testing.T) {
	session := model.NewSessionEntity("abc123", "u1")

	session.SetClaim(model.SessionClaim{Name: "trade", Expires: 1000})
	session.SetClaim(model.SessionClaim{Name: "withdraw", Expires: 2000})
	assert.Len(t, session.Claims, 2)

	// Renewing an existing claim replaces it, names stay unique.
	session.SetClaim(model.SessionClaim{Name: "trade", Expires: 3000})
	assert.Len(t, session.Claims, 2)

	claim, ok := session.Claim("trade")
	assert.True(t, ok)
	assert.Equal(t, int64(3000), claim.Expires)

	claim, ok = session.Claim("withdraw")
	assert.True(t, ok)
	assert.Equal(t, int64(2000), claim.Expires)

	_, ok = session.Claim("exchange")
	assert.False(t, ok)
}

func TestSessionEntityExtendExpiration(t *testing.T) {
	session := model.NewSessionEntity("abc123", "u1")

	expires := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	session.ExtendExpiration(expires)

	parsed, err := session.ExpiresAt()
	assert.NoError(t, err)
	assert.True(t, expires.Equal(parsed))
}

func TestSessionEntitySerialization(t *testing.T) {
	session := model.NewSessionEntity("abc123", "u1")
	session.ExtendExpiration(time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC))
	session.SetClaim(model.SessionClaim{Name: "trade", Expires: 1717245000000000})
	session.Country = "LT"

	payload, err := json.Marshal(session)
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"PartitionKey": "t",
		"RowKey": "abc123",
		"TraderId": "u1",
		"Expires": "2024-06-01T12:30:00Z",
		"Claims": [{"Name": "trade", "Expires": 1717245000000000}],
		"Country": "LT"
	}`, string(payload))

	var decoded model.SessionEntity
	assert.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "u1", decoded.TraderID)
	assert.Equal(t, "abc123", decoded.Token())
	assert.ElementsMatch(t, session.Claims, decoded.Claims)
}

func TestSessionClaimExpiresAt(t *testing.T) {
	claim := model.SessionClaim{Name: "trade", Expires: 1717245000000000}

	assert.True(t, claim.ExpiresAt().Equal(time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)))
}
