package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dtroode/statementbox/internal/apperrors"
	"github.com/dtroode/statementbox/internal/keygen"
	"github.com/dtroode/statementbox/internal/model"
)

// authorize checks that requester may act on session. The error never says
// which check failed.
func authorize(session model.Session, requester model.AccessTokenPayload) error {
	if requester.Email == "" || !strings.EqualFold(requester.Email, session.Email) {
		return apperrors.NewErrForbidden()
	}
	if requester.SessionID != "" && requester.SessionID != session.ID {
		return apperrors.NewErrForbidden()
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizeSessionID upper-cases id and reports whether it can name a session.
func normalizeSessionID(id string) (string, bool) {
	id = strings.ToUpper(strings.TrimSpace(id))
	return id, keygen.IsSessionCode(id)
}

// activeSession loads an active session and authorizes requester against it.
// Ids that cannot name a session are not found without a store lookup.
func activeSession(ctx context.Context, store model.SessionStore, sessionID string, requester model.AccessTokenPayload, now time.Time) (model.Session, error) {
	id, ok := normalizeSessionID(sessionID)
	if !ok {
		return model.Session{}, apperrors.NewErrSessionNotFound()
	}

	session, err := store.GetActiveByID(ctx, id, now)
	if errors.Is(err, model.ErrNotFound) {
		return model.Session{}, apperrors.NewErrSessionNotFound()
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	if err := authorize(session, requester); err != nil {
		return model.Session{}, err
	}

	return session, nil
}
