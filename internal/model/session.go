package model

import (
	"time"

	"github.com/araddon/dateparse"
)

// PartitionKey is the partition shared by every session row. Sessions live in
// a single logical partition of the replicated store; the row key is the
// session token itself.
const PartitionKey = "t"

type (
	// A SessionEntity represents a session row of the replicated store.
	// It is created by the login flow and replicated here for read access;
	// this service never writes it on the request path.
	SessionEntity struct {
		PartitionKey string `json:"PartitionKey"        msgpack:"partition_key" storm:"index"`
		RowKey       string `json:"RowKey"              msgpack:"row_key"       storm:"id"`

		TraderID  string         `json:"TraderId"            msgpack:"trader_id"  storm:"index"`
		Expires   string         `json:"Expires"             msgpack:"expires"`
		Claims    []SessionClaim `json:"Claims,omitempty"    msgpack:"claims,omitempty"`
		Country   string         `json:"Country,omitempty"   msgpack:"country,omitempty"`
		IP        string         `json:"Ip,omitempty"        msgpack:"ip,omitempty"`
		UserAgent string         `json:"UserAgent,omitempty" msgpack:"user_agent,omitempty"`
	}

	// A SessionClaim is a named permission granted within a session. It
	// expires independently from the session itself.
	SessionClaim struct {
		Name    string `json:"Name"         msgpack:"name"`
		Expires int64  `json:"Expires"      msgpack:"expires"`
		IP      string `json:"Ip,omitempty" msgpack:"ip,omitempty"`
	}
)

// NewSessionEntity returns a session entity for the given token.
func NewSessionEntity(token, traderID string) *SessionEntity {
	return &SessionEntity{
		PartitionKey: PartitionKey,
		RowKey:       token,
		TraderID:     traderID,
	}
}

// Token returns the session token the entity is stored under.
func (s *SessionEntity) Token() string {
	return s.RowKey
}

// ExpiresAt parses the store-native expiration timestamp of the session.
func (s *SessionEntity) ExpiresAt() (time.Time, error) {
	return dateparse.ParseAny(s.Expires)
}

// ExtendExpiration postpones the session expiration to the given time.
func (s *SessionEntity) ExtendExpiration(t time.Time) {
	s.Expires = t.UTC().Format(time.RFC3339)
}

// SetClaim grants or renews a claim. Claim names are unique within a session
// so any existing claim with the same name is replaced.
func (s *SessionEntity) SetClaim(claim SessionClaim) {
	claims := s.Claims[:0]
	for _, c := range s.Claims {
		if c.Name != claim.Name {
			claims = append(claims, c)
		}
	}
	s.Claims = append(claims, claim)
}

// Claim returns the claim with the given name.
func (s *SessionEntity) Claim(name string) (SessionClaim, bool) {
	for _, c := range s.Claims {
		if c.Name == name {
			return c, true
		}
	}
	return SessionClaim{}, false
}

// ExpiresAt returns the claim expiration, stored as microseconds since epoch.
func (c SessionClaim) ExpiresAt() time.Time {
	return time.UnixMicro(c.Expires).UTC()
}
