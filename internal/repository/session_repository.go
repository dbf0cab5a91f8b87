package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"multipoles-backend/config"
	"multipoles-backend/internal/model"
	"multipoles-backend/internal/util"
)

type SessionRepository struct {
	*config.Database
}

func NewSessionRepository(database *config.Database) *SessionRepository {
	return &SessionRepository{database}
}

// Save persists a freshly issued refresh session. token_id carries a
// unique constraint; a collision surfaces as an insert error.
func (r *SessionRepository) Save(ctx context.Context, session *model.RefreshSession) error {
	query := `INSERT INTO refresh_sessions (id, token_id, token_hash, user_id, expires_at, revoked, user_agent, ip_address)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.DB.ExecContext(ctx, query,
		session.ID,
		session.TokenID,
		session.TokenHash,
		session.UserID,
		session.ExpiresAt,
		session.Revoked,
		session.UserAgent,
		session.IPAddress,
	)

	if err != nil {
		return util.LogError("[SessionRepo] saving refresh session failed", err)
	}

	return nil
}

func (r *SessionRepository) FindByTokenID(ctx context.Context, tokenID string) (*model.RefreshSession, error) {
	query := `SELECT id, token_id, token_hash, user_id, expires_at, revoked, revoked_at, user_agent, ip_address, created_at, updated_at
				FROM refresh_sessions WHERE token_id = $1`

	var session model.RefreshSession
	err := sqlx.GetContext(ctx, r.DB, &session, query, tokenID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, util.LogError("[SessionRepo] refresh session lookup failed", err)
	}

	return &session, nil
}

// Revoke flips the session to its terminal revoked state. Revoking an
// already-revoked or unknown session is not an error.
func (r *SessionRepository) Revoke(ctx context.Context, tokenID string, at time.Time) error {
	query := `UPDATE refresh_sessions
				SET revoked = TRUE, revoked_at = $2, updated_at = $2
				WHERE token_id = $1 AND revoked = FALSE`

	_, err := r.DB.ExecContext(ctx, query, tokenID, at)
	if err != nil {
		return util.LogError("[SessionRepo] revoking refresh session failed", err)
	}

	return nil
}

// DeleteExpired sweeps every session past its expiry, revoked or not.
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM refresh_sessions WHERE expires_at < $1`

	result, err := r.DB.ExecContext(ctx, query, now)
	if err != nil {
		return 0, util.LogError("[SessionRepo] deleting expired sessions failed", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, util.LogError("[SessionRepo] reading affected rows failed", err)
	}

	return deleted, nil
}
