package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionStore persists login sessions.
type SessionStore interface {
	Create(ctx context.Context, session Session) error
	GetByID(ctx context.Context, id uuid.UUID) (Session, error)
	Revoke(ctx context.Context, id uuid.UUID) error
}

// Session binds a signed cookie to a user until it expires or is revoked.
type Session struct {
	ID        uuid.UUID
	UserID    int64
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// Active reports whether the session can still authenticate requests at now.
func (s Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
