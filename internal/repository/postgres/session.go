package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/statementbox/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

const sessionColumns = `id, email, status, expires_at, created_at, deleted_at, auto_categorize_on_upload`

type SessionRepository struct {
	db *Connection
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{
		db: db,
	}
}

func scanSession(row pgx.Row) (model.Session, error) {
	var s model.Session
	err := row.Scan(&s.ID, &s.Email, &s.Status, &s.ExpiresAt, &s.CreatedAt, &s.DeletedAt, &s.AutoCategorizeOnUpload)
	return s, err
}

func (r *SessionRepository) Create(ctx context.Context, session model.Session) error {
	query := `
		INSERT INTO sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		session.ID, session.Email, string(session.Status), session.ExpiresAt,
		session.CreatedAt, session.DeletedAt, session.AutoCategorizeOnUpload,
	)
	return mapError(err)
}

func (r *SessionRepository) Exists(ctx context.Context, sessionID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sessions WHERE id = $1)`, sessionID).Scan(&exists)
	return exists, err
}

func (r *SessionRepository) GetActiveByID(ctx context.Context, sessionID string, now time.Time) (model.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE id = $1 AND status = 'active' AND deleted_at IS NULL AND expires_at > $2`

	s, err := scanSession(r.db.QueryRow(ctx, query, sessionID, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, err
	}

	return s, nil
}

func (r *SessionRepository) ListActiveByEmail(ctx context.Context, email string, now time.Time) ([]model.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE email = $1 AND status = 'active' AND deleted_at IS NULL AND expires_at > $2
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, email, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []model.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *SessionRepository) SoftDelete(ctx context.Context, sessionID string, deletedAt time.Time) error {
	const query = `UPDATE sessions SET status = 'deleted', deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL`
	cmd, err := r.db.Exec(ctx, query, sessionID, deletedAt)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *SessionRepository) UpdateSettings(ctx context.Context, sessionID string, autoCategorizeOnUpload bool) (model.Session, error) {
	query := `
		UPDATE sessions SET auto_categorize_on_upload = $2
		WHERE id = $1 AND status = 'active' AND deleted_at IS NULL
		RETURNING ` + sessionColumns

	s, err := scanSession(r.db.QueryRow(ctx, query, sessionID, autoCategorizeOnUpload))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, err
	}

	return s, nil
}
