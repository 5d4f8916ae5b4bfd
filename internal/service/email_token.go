package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/statementbox/internal/keygen"
	"github.com/dtroode/statementbox/internal/logger"
	"github.com/dtroode/statementbox/internal/model"
)

// maxTokenAttempts bounds token generation on hash collisions.
const maxTokenAttempts = 3

// EmailToken issues and redeems single-use magic-link tokens. Only token
// hashes are persisted.
type EmailToken struct {
	store  model.EmailTokenStore
	ttl    time.Duration
	logger *logger.Logger

	generate func() (string, error)
	now      func() time.Time
}

func NewEmailToken(store model.EmailTokenStore, ttl time.Duration, logger *logger.Logger) *EmailToken {
	if ttl <= 0 {
		ttl = model.DefaultEmailTokenTTL
	}
	return &EmailToken{
		store:    store,
		ttl:      ttl,
		logger:   logger,
		generate: keygen.GenerateToken,
		now:      time.Now,
	}
}

// TTL returns the lifetime of issued tokens.
func (s *EmailToken) TTL() time.Duration {
	return s.ttl
}

// Issue persists a new token and returns its raw form for delivery.
func (s *EmailToken) Issue(ctx context.Context, params model.IssueEmailTokenParams) (string, error) {
	for attempt := 1; attempt <= maxTokenAttempts; attempt++ {
		raw, err := s.generate()
		if err != nil {
			return "", fmt.Errorf("failed to generate token: %w", err)
		}

		now := s.now()
		token := model.EmailToken{
			TokenHash: keygen.HashToken(raw),
			Email:     normalizeEmail(params.Email),
			SessionID: params.SessionID,
			Purpose:   params.Purpose,
			ExpiresAt: now.Add(s.ttl),
			CreatedAt: now,
			IP:        params.IP,
			UserAgent: params.UserAgent,
		}

		err = s.store.Create(ctx, token)
		if errors.Is(err, model.ErrDuplicate) {
			s.logger.Warn("Email token service: token hash collision",
				"attempt", attempt)
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to persist token: %w", err)
		}

		s.logger.Debug("Email token service: token issued",
			"purpose", params.Purpose,
			"session_id", params.SessionID,
			"token_fingerprint", keygen.HashPrefix(raw))

		return raw, nil
	}

	return "", fmt.Errorf("failed to issue token after %d attempts: %w", maxTokenAttempts, model.ErrDuplicate)
}

// Consume redeems a raw token exactly once. Unknown, used and expired tokens
// all yield model.ErrInvalidOrExpiredToken.
func (s *EmailToken) Consume(ctx context.Context, raw string) (model.EmailToken, error) {
	if raw == "" {
		return model.EmailToken{}, model.ErrInvalidOrExpiredToken
	}

	token, err := s.store.Consume(ctx, keygen.HashToken(raw), s.now())
	if errors.Is(err, model.ErrNotFound) {
		return model.EmailToken{}, model.ErrInvalidOrExpiredToken
	}
	if err != nil {
		return model.EmailToken{}, fmt.Errorf("failed to consume token: %w", err)
	}

	if !keygen.Matches(raw, token.TokenHash) {
		return model.EmailToken{}, model.ErrInvalidOrExpiredToken
	}

	return token, nil
}
