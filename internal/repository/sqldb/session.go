package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

type SessionRepository struct {
	db  *Connection
	now func() time.Time
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{db: db, now: time.Now}
}

func (r *SessionRepository) Create(ctx context.Context, session model.Session) error {
	query := r.db.Rebind(`
		INSERT INTO sessions (id, user_id, username, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		session.ID.String(), session.UserID, session.Username,
		session.CreatedAt.Unix(), session.ExpiresAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Session, error) {
	query := r.db.Rebind(`
		SELECT id, user_id, username, created_at, expires_at, revoked_at
		FROM sessions WHERE id = ?`)

	var (
		session              model.Session
		createdAt, expiresAt int64
		revokedAt            sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, query, id.String()).Scan(
		&session.ID, &session.UserID, &session.Username, &createdAt, &expiresAt, &revokedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("failed to get session by id: %w", err)
	}

	session.CreatedAt = time.Unix(createdAt, 0).UTC()
	session.ExpiresAt = time.Unix(expiresAt, 0).UTC()
	if revokedAt.Valid {
		t := time.Unix(revokedAt.Int64, 0).UTC()
		session.RevokedAt = &t
	}

	return session, nil
}

func (r *SessionRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	query := r.db.Rebind(`UPDATE sessions SET revoked_at = ? WHERE id = ? AND revoked_at IS NULL`)

	res, err := r.db.ExecContext(ctx, query, r.now().Unix(), id.String())
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}
