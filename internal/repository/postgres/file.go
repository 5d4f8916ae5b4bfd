package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/statementbox/internal/model"
)

var _ model.FileStore = (*FileRepository)(nil)

const fileColumns = `id, session_id, original_name, mime_type, size, statement_type, category,
	auto_detected_type, detection_confidence, is_likely_statement, confirmed_by_user, status,
	storage_bucket, storage_key, uploaded_at, deleted_at, created_at`

type FileRepository struct {
	db *Connection
}

func NewFileRepository(db *Connection) *FileRepository {
	return &FileRepository{
		db: db,
	}
}

func scanFile(row pgx.Row) (model.FileRecord, error) {
	var f model.FileRecord
	err := row.Scan(
		&f.ID, &f.SessionID, &f.OriginalName, &f.MimeType, &f.Size, &f.StatementType, &f.Category,
		&f.AutoDetectedType, &f.DetectionConfidence, &f.IsLikelyStatement, &f.ConfirmedByUser, &f.Status,
		&f.StorageBucket, &f.StorageKey, &f.UploadedAt, &f.DeletedAt, &f.CreatedAt,
	)
	return f, err
}

func (r *FileRepository) Create(ctx context.Context, file model.FileRecord) error {
	query := `
		INSERT INTO files (` + fileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.db.Exec(ctx, query,
		file.ID, file.SessionID, file.OriginalName, file.MimeType, file.Size,
		string(file.StatementType), string(file.Category), string(file.AutoDetectedType),
		file.DetectionConfidence, file.IsLikelyStatement, file.ConfirmedByUser, string(file.Status),
		file.StorageBucket, file.StorageKey, file.UploadedAt, file.DeletedAt, file.CreatedAt,
	)
	return mapError(err)
}

func (r *FileRepository) GetByID(ctx context.Context, id uuid.UUID) (model.FileRecord, error) {
	query := `
		SELECT ` + fileColumns + `
		FROM files
		WHERE id = $1 AND status <> 'deleted'`

	f, err := scanFile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.FileRecord{}, model.ErrNotFound
		}
		return model.FileRecord{}, err
	}

	return f, nil
}

func (r *FileRepository) ListUploadedBySession(ctx context.Context, sessionID string) ([]model.FileRecord, error) {
	query := `
		SELECT ` + fileColumns + `
		FROM files
		WHERE session_id = $1 AND status = 'uploaded'
		ORDER BY uploaded_at ASC`

	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []model.FileRecord
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return files, nil
}

// NameExists reports whether a pending or uploaded file in the session has
// the given name, compared case-insensitively.
func (r *FileRepository) NameExists(ctx context.Context, sessionID string, originalName string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM files
			WHERE session_id = $1 AND LOWER(original_name) = LOWER($2)
			  AND status IN ('pending', 'uploaded')
		)`

	var exists bool
	err := r.db.QueryRow(ctx, query, sessionID, originalName).Scan(&exists)
	return exists, err
}

func (r *FileRepository) MarkUploaded(ctx context.Context, id uuid.UUID, uploadedAt time.Time) error {
	return r.setStatus(ctx,
		`UPDATE files SET status = 'uploaded', uploaded_at = $2 WHERE id = $1 AND status = 'pending'`,
		id, uploadedAt)
}

func (r *FileRepository) MarkRejected(ctx context.Context, id uuid.UUID) error {
	return r.setStatus(ctx,
		`UPDATE files SET status = 'rejected' WHERE id = $1 AND status = 'pending'`,
		id)
}

func (r *FileRepository) MarkDeleted(ctx context.Context, id uuid.UUID, deletedAt time.Time) error {
	return r.setStatus(ctx,
		`UPDATE files SET status = 'deleted', deleted_at = $2 WHERE id = $1 AND status <> 'deleted'`,
		id, deletedAt)
}

func (r *FileRepository) setStatus(ctx context.Context, query string, args ...any) error {
	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *FileRepository) UpdateStatementType(ctx context.Context, id uuid.UUID, statementType model.StatementType, category model.Category) (model.FileRecord, error) {
	query := `
		UPDATE files SET statement_type = $2, category = $3, confirmed_by_user = TRUE
		WHERE id = $1 AND status <> 'deleted'
		RETURNING ` + fileColumns

	f, err := scanFile(r.db.QueryRow(ctx, query, id, string(statementType), string(category)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.FileRecord{}, model.ErrNotFound
		}
		return model.FileRecord{}, err
	}

	return f, nil
}

// MoveToCategory refiles the given non-deleted files of a session. A nil
// statementType leaves each file's type as is.
func (r *FileRepository) MoveToCategory(ctx context.Context, sessionID string, ids []uuid.UUID, category model.Category, statementType *model.StatementType) (int64, error) {
	query := `
		UPDATE files
		SET category = $3,
		    statement_type = COALESCE($4, statement_type),
		    confirmed_by_user = TRUE
		WHERE session_id = $1 AND id = ANY($2) AND status <> 'deleted'`

	var typeArg *string
	if statementType != nil {
		s := string(*statementType)
		typeArg = &s
	}

	cmd, err := r.db.Exec(ctx, query, sessionID, ids, string(category), typeArg)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *FileRepository) CountUploadedBySessions(ctx context.Context, sessionIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(sessionIDs))
	if len(sessionIDs) == 0 {
		return counts, nil
	}

	query := `
		SELECT session_id, COUNT(*)
		FROM files
		WHERE session_id = ANY($1) AND status = 'uploaded'
		GROUP BY session_id`

	rows, err := r.db.Query(ctx, query, sessionIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    string
			count int
		)
		if err := rows.Scan(&id, &count); err != nil {
			return nil, err
		}
		counts[id] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
