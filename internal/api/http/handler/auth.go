package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/statementbox/internal/apperrors"
	"github.com/dtroode/statementbox/internal/logger"
	"github.com/dtroode/statementbox/internal/model"
	"github.com/gin-gonic/gin"
)

// LinkSentMessage is returned by both magic-link endpoints whatever the outcome.
const LinkSentMessage = "If the details match our records, we have sent a link to that email address."

// AuthService defines business operations for magic-link authentication.
type AuthService interface {
	RequestLink(ctx context.Context, req model.LinkRequest) error
	RequestSessions(ctx context.Context, req model.LinkRequest) error
	Verify(ctx context.Context, token string) (model.VerifyResult, error)
}

// Auth handles HTTP endpoints for magic links.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{authService: authService, logger: logger}
}

// RequestLink emails a continue-session link.
func (h *Auth) RequestLink(c *gin.Context) {
	h.requestLink(c, h.authService.RequestLink)
}

// RequestSessions emails a find-sessions link.
func (h *Auth) RequestSessions(c *gin.Context) {
	h.requestLink(c, h.authService.RequestSessions)
}

func (h *Auth) requestLink(c *gin.Context, send func(context.Context, model.LinkRequest) error) {
	var req requestLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apperrors.NewErrValidation("Invalid request body."))
		return
	}

	err := send(c.Request.Context(), model.LinkRequest{
		Email:     req.Email,
		SessionID: req.SessionID,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": LinkSentMessage})
}

// Verify redeems a magic-link token for an access token.
func (h *Auth) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apperrors.NewErrInvalidOrExpiredToken())
		return
	}

	result, err := h.authService.Verify(c.Request.Context(), req.Token)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, verifyResponse{
		OK:          true,
		AccessToken: result.AccessToken,
		ExpiresIn:   seconds(result.ExpiresIn),
		Sessions:    toSessionResponses(result.Sessions),
	})
}
