package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/statementbox/internal/model"
)

var _ model.EmailTokenStore = (*EmailTokenRepository)(nil)

type EmailTokenRepository struct {
	db *Connection
}

func NewEmailTokenRepository(db *Connection) *EmailTokenRepository {
	return &EmailTokenRepository{
		db: db,
	}
}

func (r *EmailTokenRepository) Create(ctx context.Context, token model.EmailToken) error {
	query := `
		INSERT INTO email_tokens (token_hash, email, session_id, purpose, expires_at, used_at, created_at, ip, user_agent)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''))`

	_, err := r.db.Exec(ctx, query,
		token.TokenHash, token.Email, token.SessionID, string(token.Purpose),
		token.ExpiresAt, token.UsedAt, token.CreatedAt, token.IP, token.UserAgent,
	)
	return mapError(err)
}

// Consume is a single conditional update, so concurrent callers with the same
// hash cannot both succeed. The returned token reflects the row before the update.
func (r *EmailTokenRepository) Consume(ctx context.Context, tokenHash string, now time.Time) (model.EmailToken, error) {
	query := `
		UPDATE email_tokens SET used_at = $2
		WHERE token_hash = $1 AND used_at IS NULL AND expires_at > $2
		RETURNING token_hash, email, COALESCE(session_id, ''), purpose, expires_at, created_at,
		          COALESCE(ip, ''), COALESCE(user_agent, '')`

	var t model.EmailToken
	err := r.db.QueryRow(ctx, query, tokenHash, now).Scan(
		&t.TokenHash, &t.Email, &t.SessionID, &t.Purpose, &t.ExpiresAt, &t.CreatedAt,
		&t.IP, &t.UserAgent,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.EmailToken{}, model.ErrNotFound
		}
		return model.EmailToken{}, err
	}

	return t, nil
}

// DeleteExpired removes tokens that expired before the given moment.
func (r *EmailTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM email_tokens WHERE expires_at < $1`, before)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
