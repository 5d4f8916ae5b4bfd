package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dtroode/statementbox/internal/apperrors"
	"github.com/dtroode/statementbox/internal/keygen"
	"github.com/dtroode/statementbox/internal/logger"
	"github.com/dtroode/statementbox/internal/model"
)

// maxSessionIDAttempts bounds session code generation on collisions.
const maxSessionIDAttempts = 5

type Session struct {
	sessionStore model.SessionStore
	fileStore    model.FileStore
	storage      model.Storage
	tokenManager model.TokenManager
	ttl          time.Duration
	logger       *logger.Logger

	newID func() (string, error)
	now   func() time.Time
}

func NewSession(
	sessionStore model.SessionStore,
	fileStore model.FileStore,
	storage model.Storage,
	tokenManager model.TokenManager,
	ttl time.Duration,
	logger *logger.Logger,
) *Session {
	if ttl <= 0 {
		ttl = model.DefaultSessionTTL
	}
	return &Session{
		sessionStore: sessionStore,
		fileStore:    fileStore,
		storage:      storage,
		tokenManager: tokenManager,
		ttl:          ttl,
		logger:       logger,
		newID:        keygen.GenerateSessionCode,
		now:          time.Now,
	}
}

// Create opens a new session for email and issues a bootstrap token scoped to it.
func (s *Session) Create(ctx context.Context, email string) (model.CreatedSession, error) {
	email = normalizeEmail(email)
	if email == "" {
		return model.CreatedSession{}, apperrors.NewErrValidation("Email is required.")
	}

	s.logger.Debug("Session service: creating session",
		"email", email)

	var session model.Session
	created := false
	for attempt := 1; attempt <= maxSessionIDAttempts; attempt++ {
		id, err := s.newID()
		if err != nil {
			return model.CreatedSession{}, fmt.Errorf("failed to generate session id: %w", err)
		}

		exists, err := s.sessionStore.Exists(ctx, id)
		if err != nil {
			return model.CreatedSession{}, fmt.Errorf("failed to check session id: %w", err)
		}
		if exists {
			s.logger.Warn("Session service: session id collision",
				"attempt", attempt)
			continue
		}

		now := s.now()
		session = model.Session{
			ID:                     id,
			Email:                  email,
			Status:                 model.SessionStatusActive,
			ExpiresAt:              now.Add(s.ttl),
			CreatedAt:              now,
			AutoCategorizeOnUpload: true,
		}

		err = s.sessionStore.Create(ctx, session)
		if errors.Is(err, model.ErrDuplicate) {
			s.logger.Warn("Session service: session id taken concurrently",
				"attempt", attempt)
			continue
		}
		if err != nil {
			s.logger.Error("Session service: failed to create session",
				"email", email,
				"error", err.Error())
			return model.CreatedSession{}, fmt.Errorf("failed to create session: %w", err)
		}

		created = true
		break
	}

	if !created {
		s.logger.Error("Session service: unable to allocate session id",
			"email", email,
			"attempts", maxSessionIDAttempts)
		return model.CreatedSession{}, model.ErrUnableToAllocateID
	}

	token, expiresIn, err := s.tokenManager.GenerateAccessToken(model.AccessTokenPayload{
		Email:     session.Email,
		SessionID: session.ID,
		Type:      model.AccessTypeSessionBootstrap,
	})
	if err != nil {
		return model.CreatedSession{}, fmt.Errorf("failed to generate bootstrap token: %w", err)
	}

	s.logger.Info("Session service: session created",
		"session_id", session.ID,
		"email", session.Email)

	return model.CreatedSession{
		Session:     session,
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}

// getActive loads an active session and authorizes requester against it.
func (s *Session) getActive(ctx context.Context, sessionID string, requester model.AccessTokenPayload) (model.Session, error) {
	session, err := activeSession(ctx, s.sessionStore, sessionID, requester, s.now())
	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPCode == http.StatusForbidden {
		s.logger.Info("Session service: access denied",
			"session_id", sessionID,
			"email", requester.Email)
	}
	return session, err
}

// Get returns an active session with its uploaded file count.
func (s *Session) Get(ctx context.Context, sessionID string, requester model.AccessTokenPayload) (model.SessionSummary, error) {
	session, err := s.getActive(ctx, sessionID, requester)
	if err != nil {
		return model.SessionSummary{}, err
	}

	summaries, err := s.summarize(ctx, []model.Session{session})
	if err != nil {
		return model.SessionSummary{}, err
	}

	return summaries[0], nil
}

// List returns the active sessions visible to requester. A session-scoped
// principal only sees its own session.
func (s *Session) List(ctx context.Context, requester model.AccessTokenPayload) ([]model.SessionSummary, error) {
	if requester.SessionID != "" {
		summary, err := s.Get(ctx, requester.SessionID, requester)
		var apiErr *apperrors.APIError
		if errors.As(err, &apiErr) {
			return []model.SessionSummary{}, nil
		}
		if err != nil {
			return nil, err
		}
		return []model.SessionSummary{summary}, nil
	}

	return s.ListForEmail(ctx, requester.Email)
}

// ListForEmail returns all active sessions owned by email.
func (s *Session) ListForEmail(ctx context.Context, email string) ([]model.SessionSummary, error) {
	sessions, err := s.sessionStore.ListActiveByEmail(ctx, normalizeEmail(email), s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return s.summarize(ctx, sessions)
}

func (s *Session) summarize(ctx context.Context, sessions []model.Session) ([]model.SessionSummary, error) {
	summaries := make([]model.SessionSummary, 0, len(sessions))
	if len(sessions) == 0 {
		return summaries, nil
	}

	ids := make([]string, 0, len(sessions))
	for _, session := range sessions {
		ids = append(ids, session.ID)
	}

	counts, err := s.fileStore.CountUploadedBySessions(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count files: %w", err)
	}

	for _, session := range sessions {
		summaries = append(summaries, model.SessionSummary{
			Session:   session,
			FileCount: counts[session.ID],
		})
	}

	return summaries, nil
}

// UpdateSettings changes the user-adjustable settings of a session.
func (s *Session) UpdateSettings(ctx context.Context, sessionID string, requester model.AccessTokenPayload, settings model.SessionSettings) (model.Session, error) {
	current, err := s.getActive(ctx, sessionID, requester)
	if err != nil {
		return model.Session{}, err
	}
	sessionID = current.ID

	session, err := s.sessionStore.UpdateSettings(ctx, sessionID, settings.AutoCategorizeOnUpload)
	if errors.Is(err, model.ErrNotFound) {
		return model.Session{}, apperrors.NewErrSessionNotFound()
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to update session settings: %w", err)
	}

	s.logger.Info("Session service: settings updated",
		"session_id", sessionID,
		"auto_categorize_on_upload", settings.AutoCategorizeOnUpload)

	return session, nil
}

// Delete soft-deletes a session, then reclaims its files. Storage failures
// during reclamation are logged and do not fail the call.
func (s *Session) Delete(ctx context.Context, sessionID string, requester model.AccessTokenPayload) error {
	session, err := s.getActive(ctx, sessionID, requester)
	if err != nil {
		return err
	}
	sessionID = session.ID

	err = s.sessionStore.SoftDelete(ctx, sessionID, s.now())
	if errors.Is(err, model.ErrNotFound) {
		return apperrors.NewErrSessionNotFound()
	}
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	report := s.reclaimFiles(ctx, sessionID)

	s.logger.Info("Session service: session deleted",
		"session_id", sessionID,
		"files", report.Files,
		"storage_failures", len(report.StorageFailures),
		"record_failures", len(report.RecordFailures))

	return nil
}

// CleanupReport collects the outcome of reclaiming a deleted session's files.
type CleanupReport struct {
	Files           int
	StorageFailures []error
	RecordFailures  []error
}

func (s *Session) reclaimFiles(ctx context.Context, sessionID string) CleanupReport {
	var report CleanupReport

	files, err := s.fileStore.ListUploadedBySession(ctx, sessionID)
	if err != nil {
		s.logger.Error("Session service: failed to list files for cleanup",
			"session_id", sessionID,
			"error", err.Error())
		report.RecordFailures = append(report.RecordFailures, err)
		return report
	}
	report.Files = len(files)

	for _, file := range files {
		if err := s.storage.Delete(ctx, file.StorageKey); err != nil {
			s.logger.Warn("Session service: failed to delete stored file",
				"session_id", sessionID,
				"file_id", file.ID,
				"storage_key", file.StorageKey,
				"error", err.Error())
			report.StorageFailures = append(report.StorageFailures, err)
		}

		if err := s.fileStore.MarkDeleted(ctx, file.ID, s.now()); err != nil {
			s.logger.Error("Session service: failed to mark file deleted",
				"session_id", sessionID,
				"file_id", file.ID,
				"error", err.Error())
			report.RecordFailures = append(report.RecordFailures, err)
		}
	}

	return report
}
