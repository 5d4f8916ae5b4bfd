package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dtroode/statementbox/internal/apperrors"
	"github.com/dtroode/statementbox/internal/keygen"
	"github.com/dtroode/statementbox/internal/logger"
	"github.com/dtroode/statementbox/internal/model"
	"github.com/dtroode/statementbox/internal/ratelimit"
)

const (
	EndpointRequestLink     = "request-link"
	EndpointRequestSessions = "request-sessions"
)

// Auth handles magic-link requests and their redemption. Link requests never
// report whether a link was sent.
type Auth struct {
	sessionStore model.SessionStore
	sessions     *Session
	emailTokens  *EmailToken
	tokenManager model.TokenManager
	mailer       model.Mailer
	limiter      model.RateLimiter
	baseURL      string
	logger       *logger.Logger
}

func NewAuth(
	sessionStore model.SessionStore,
	sessions *Session,
	emailTokens *EmailToken,
	tokenManager model.TokenManager,
	mailer model.Mailer,
	limiter model.RateLimiter,
	baseURL string,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		sessionStore: sessionStore,
		sessions:     sessions,
		emailTokens:  emailTokens,
		tokenManager: tokenManager,
		mailer:       mailer,
		limiter:      limiter,
		baseURL:      strings.TrimRight(baseURL, "/"),
		logger:       logger,
	}
}

// RequestLink emails a continue-session link if email owns the active
// session. Only malformed input produces an error.
func (a *Auth) RequestLink(ctx context.Context, req model.LinkRequest) error {
	email := normalizeEmail(req.Email)
	sessionID, valid := normalizeSessionID(req.SessionID)
	if email == "" || sessionID == "" {
		return apperrors.NewErrValidation("Email and sessionId are required.")
	}

	if a.limited(ctx, EndpointRequestLink, req.IP, email) {
		return nil
	}
	if !valid {
		a.logger.Info("Auth service: link requested for malformed session id")
		return nil
	}

	session, err := a.sessionStore.GetActiveByID(ctx, sessionID, a.sessions.now())
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			a.logger.Error("Auth service: failed to get session",
				"session_id", sessionID,
				"error", err.Error())
		}
		return nil
	}
	if session.Email != email {
		a.logger.Info("Auth service: link requested for foreign session",
			"session_id", sessionID)
		return nil
	}

	a.issueAndSend(ctx, model.IssueEmailTokenParams{
		Email:     email,
		Purpose:   model.PurposeContinueSession,
		SessionID: session.ID,
		IP:        req.IP,
		UserAgent: req.UserAgent,
	})

	return nil
}

// RequestSessions emails a link listing the active sessions of email, if any.
// Only malformed input produces an error.
func (a *Auth) RequestSessions(ctx context.Context, req model.LinkRequest) error {
	email := normalizeEmail(req.Email)
	if email == "" {
		return apperrors.NewErrValidation("Email is required.")
	}

	if a.limited(ctx, EndpointRequestSessions, req.IP, email) {
		return nil
	}

	sessions, err := a.sessionStore.ListActiveByEmail(ctx, email, a.sessions.now())
	if err != nil {
		a.logger.Error("Auth service: failed to list sessions",
			"error", err.Error())
		return nil
	}
	if len(sessions) == 0 {
		a.logger.Debug("Auth service: no active sessions for email")
		return nil
	}

	a.issueAndSend(ctx, model.IssueEmailTokenParams{
		Email:     email,
		Purpose:   model.PurposeFindSessions,
		IP:        req.IP,
		UserAgent: req.UserAgent,
	})

	return nil
}

// limited fails open when the limiter store is unavailable.
func (a *Auth) limited(ctx context.Context, endpoint, ip, email string) bool {
	limited, err := a.limiter.RecordAndCheck(ctx, ratelimit.Key(endpoint, ip, email))
	if err != nil {
		a.logger.Error("Auth service: rate limiter failed",
			"endpoint", endpoint,
			"error", err.Error())
		return false
	}
	if limited {
		a.logger.Warn("Auth service: request rate limited",
			"endpoint", endpoint,
			"ip", ip)
	}
	return limited
}

func (a *Auth) issueAndSend(ctx context.Context, params model.IssueEmailTokenParams) {
	raw, err := a.emailTokens.Issue(ctx, params)
	if err != nil {
		a.logger.Error("Auth service: failed to issue email token",
			"purpose", params.Purpose,
			"session_id", params.SessionID,
			"error", err.Error())
		return
	}

	msg := model.MagicLinkMessage{
		To:        params.Email,
		Purpose:   params.Purpose,
		SessionID: params.SessionID,
		Link:      a.verifyLink(raw),
		ExpiresIn: a.emailTokens.TTL(),
	}
	if err := a.mailer.SendMagicLink(ctx, msg); err != nil {
		a.logger.Error("Auth service: failed to send magic link",
			"purpose", params.Purpose,
			"session_id", params.SessionID,
			"token_fingerprint", keygen.HashPrefix(raw),
			"error", err.Error())
		return
	}

	a.logger.Info("Auth service: magic link sent",
		"purpose", params.Purpose,
		"session_id", params.SessionID)
}

func (a *Auth) verifyLink(raw string) string {
	return a.baseURL + "/auth/verify?token=" + url.QueryEscape(raw)
}

// Verify redeems a magic link and exchanges it for an access token.
func (a *Auth) Verify(ctx context.Context, raw string) (model.VerifyResult, error) {
	token, err := a.emailTokens.Consume(ctx, strings.TrimSpace(raw))
	if errors.Is(err, model.ErrInvalidOrExpiredToken) {
		return model.VerifyResult{}, apperrors.NewErrInvalidOrExpiredToken()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to consume email token",
			"error", err.Error())
		return model.VerifyResult{}, fmt.Errorf("failed to consume token: %w", err)
	}

	var (
		payload  model.AccessTokenPayload
		sessions []model.SessionSummary
	)
	switch token.Purpose {
	case model.PurposeContinueSession:
		payload = model.AccessTokenPayload{
			Email:     token.Email,
			SessionID: token.SessionID,
			Type:      model.AccessTypeContinueSession,
		}
		summary, err := a.sessions.Get(ctx, token.SessionID, payload)
		if _, ok := apperrors.As(err); ok {
			a.logger.Info("Auth service: session no longer available",
				"session_id", token.SessionID)
			return model.VerifyResult{}, apperrors.NewErrInvalidOrExpiredToken()
		}
		if err != nil {
			return model.VerifyResult{}, err
		}
		sessions = []model.SessionSummary{summary}
	case model.PurposeFindSessions:
		payload = model.AccessTokenPayload{
			Email: token.Email,
			Type:  model.AccessTypeFindSessions,
		}
		sessions, err = a.sessions.ListForEmail(ctx, token.Email)
		if err != nil {
			return model.VerifyResult{}, err
		}
	default:
		a.logger.Error("Auth service: unknown token purpose",
			"purpose", token.Purpose)
		return model.VerifyResult{}, apperrors.NewErrInvalidOrExpiredToken()
	}

	accessToken, expiresIn, err := a.tokenManager.GenerateAccessToken(payload)
	if err != nil {
		return model.VerifyResult{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	a.logger.Info("Auth service: magic link verified",
		"purpose", token.Purpose,
		"session_id", token.SessionID)

	return model.VerifyResult{
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
		Sessions:    sessions,
	}, nil
}
