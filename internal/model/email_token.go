package model

import (
	"context"
	"time"
)

// DefaultEmailTokenTTL is the lifetime of a magic-link token.
const DefaultEmailTokenTTL = 15 * time.Minute

// EmailTokenStore persists hashed magic-link tokens.
type EmailTokenStore interface {
	Create(ctx context.Context, token EmailToken) error
	// Consume marks the token used if it is unused and unexpired and returns its prior state.
	Consume(ctx context.Context, tokenHash string, now time.Time) (EmailToken, error)
}

// EmailTokenPurpose enumerates what a magic link grants.
type EmailTokenPurpose string

const (
	PurposeContinueSession EmailTokenPurpose = "continue_session"
	PurposeFindSessions    EmailTokenPurpose = "find_sessions"
)

// EmailToken is a single-use, time-boxed magic-link credential.
type EmailToken struct {
	TokenHash string
	Email     string
	SessionID string
	Purpose   EmailTokenPurpose
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
	IP        string
	UserAgent string
}

// IssueEmailTokenParams contains parameters to issue a magic-link token.
type IssueEmailTokenParams struct {
	Email     string
	Purpose   EmailTokenPurpose
	SessionID string
	IP        string
	UserAgent string
}

// LinkRequest carries the caller metadata of a magic-link request.
type LinkRequest struct {
	Email     string
	SessionID string
	IP        string
	UserAgent string
}

// VerifyResult is returned after a magic link is redeemed.
type VerifyResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	Sessions    []SessionSummary
}
