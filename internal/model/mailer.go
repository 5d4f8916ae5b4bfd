package model

import (
	"context"
	"time"
)

// Mailer delivers magic-link emails.
type Mailer interface {
	SendMagicLink(ctx context.Context, msg MagicLinkMessage) error
}

// MagicLinkMessage is the content of one magic-link email.
type MagicLinkMessage struct {
	To        string
	Purpose   EmailTokenPurpose
	SessionID string
	Link      string
	ExpiresIn time.Duration
}

// RateLimiter records a hit for key and reports whether the key is over its limit.
type RateLimiter interface {
	RecordAndCheck(ctx context.Context, key string) (bool, error)
}
