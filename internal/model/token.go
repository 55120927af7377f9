package model

import (
	"github.com/google/uuid"
)

// SessionClaims are the values carried by a signed session cookie.
type SessionClaims struct {
	SessionID uuid.UUID
	UserID    int64
	Username  string
}

// TokenManager signs and verifies session cookies.
type TokenManager interface {
	GenerateSessionToken(session Session) (string, error)
	ParseSessionToken(token string) (SessionClaims, error)
}
