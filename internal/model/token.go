package model

import "time"

// AccessTokenType enumerates bearer credential scopes.
type AccessTokenType string

const (
	AccessTypeContinueSession  AccessTokenType = "continue_session"
	AccessTypeFindSessions     AccessTokenType = "find_sessions"
	AccessTypeSessionBootstrap AccessTokenType = "session_bootstrap"
)

// Valid reports whether t is a recognized access token type.
func (t AccessTokenType) Valid() bool {
	switch t {
	case AccessTypeContinueSession, AccessTypeFindSessions, AccessTypeSessionBootstrap:
		return true
	}
	return false
}

// AccessTokenPayload is the identity carried by a bearer token.
type AccessTokenPayload struct {
	Email     string
	SessionID string
	Type      AccessTokenType
}

// TokenManager mints and validates access tokens.
type TokenManager interface {
	GenerateAccessToken(payload AccessTokenPayload) (string, time.Duration, error)
	ParseAccessToken(token string) (AccessTokenPayload, error)
}
