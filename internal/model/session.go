package model

import (
	"context"
	"time"
)

// DefaultSessionTTL is the lifetime of a newly created session.
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionStore persists upload sessions.
type SessionStore interface {
	Create(ctx context.Context, session Session) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	GetActiveByID(ctx context.Context, sessionID string, now time.Time) (Session, error)
	ListActiveByEmail(ctx context.Context, email string, now time.Time) ([]Session, error)
	SoftDelete(ctx context.Context, sessionID string, deletedAt time.Time) error
	UpdateSettings(ctx context.Context, sessionID string, autoCategorizeOnUpload bool) (Session, error)
}

// SessionStatus enumerates session states.
type SessionStatus string

const (
	SessionStatusActive  SessionStatus = "active"
	SessionStatusExpired SessionStatus = "expired"
	SessionStatusDeleted SessionStatus = "deleted"
)

// Session is a user-scoped, time-boxed container for uploaded statements.
type Session struct {
	ID                     string
	Email                  string
	Status                 SessionStatus
	ExpiresAt              time.Time
	CreatedAt              time.Time
	DeletedAt              *time.Time
	AutoCategorizeOnUpload bool
}

// IsActive reports whether the session is usable at the given moment.
func (s Session) IsActive(now time.Time) bool {
	return s.Status == SessionStatusActive && s.DeletedAt == nil && s.ExpiresAt.After(now)
}

// SessionSummary is a session annotated with its live uploaded file count.
type SessionSummary struct {
	Session
	FileCount int
}

// CreatedSession is returned when a session is created together with its bootstrap token.
type CreatedSession struct {
	Session     Session
	AccessToken string
	ExpiresIn   time.Duration
}

// SessionSettings holds the user-adjustable parts of a session.
type SessionSettings struct {
	AutoCategorizeOnUpload bool
}
