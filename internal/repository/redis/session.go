// Package redis keeps login sessions in Redis so they expire on their own.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

const keyPrefix = "session:"

var _ model.SessionStore = (*SessionRepository)(nil)

type SessionRepository struct {
	rdb *goredis.Client
}

func NewSessionRepository(rdb *goredis.Client) *SessionRepository {
	return &SessionRepository{rdb: rdb}
}

func sessionKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (r *SessionRepository) Create(ctx context.Context, session model.Session) error {
	key := sessionKey(session.ID)

	_, err := r.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, key, encodeSession(session))
		pipe.ExpireAt(ctx, key, session.ExpiresAt)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Session, error) {
	fields, err := r.rdb.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to get session by id: %w", err)
	}
	if len(fields) == 0 {
		return model.Session{}, model.ErrNotFound
	}

	session, err := decodeSession(id, fields)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to decode session: %w", err)
	}

	return session, nil
}

// Revoke deletes the key; a missing session is reported as ErrNotFound.
func (r *SessionRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	deleted, err := r.rdb.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	if deleted == 0 {
		return model.ErrNotFound
	}

	return nil
}

func encodeSession(session model.Session) map[string]any {
	return map[string]any{
		"user_id":    strconv.FormatInt(session.UserID, 10),
		"username":   session.Username,
		"created_at": strconv.FormatInt(session.CreatedAt.Unix(), 10),
		"expires_at": strconv.FormatInt(session.ExpiresAt.Unix(), 10),
	}
}

func decodeSession(id uuid.UUID, fields map[string]string) (model.Session, error) {
	userID, err := strconv.ParseInt(fields["user_id"], 10, 64)
	if err != nil {
		return model.Session{}, fmt.Errorf("user_id: %w", err)
	}
	createdAt, err := strconv.ParseInt(fields["created_at"], 10, 64)
	if err != nil {
		return model.Session{}, fmt.Errorf("created_at: %w", err)
	}
	expiresAt, err := strconv.ParseInt(fields["expires_at"], 10, 64)
	if err != nil {
		return model.Session{}, fmt.Errorf("expires_at: %w", err)
	}

	return model.Session{
		ID:        id,
		UserID:    userID,
		Username:  fields["username"],
		CreatedAt: time.Unix(createdAt, 0).UTC(),
		ExpiresAt: time.Unix(expiresAt, 0).UTC(),
	}, nil
}
