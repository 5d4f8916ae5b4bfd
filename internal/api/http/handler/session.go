package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/statementbox/internal/apperrors"
	"github.com/dtroode/statementbox/internal/logger"
	"github.com/dtroode/statementbox/internal/model"
	"github.com/gin-gonic/gin"
)

// SessionService defines business operations for upload sessions.
type SessionService interface {
	Create(ctx context.Context, email string) (model.CreatedSession, error)
	Get(ctx context.Context, sessionID string, requester model.AccessTokenPayload) (model.SessionSummary, error)
	List(ctx context.Context, requester model.AccessTokenPayload) ([]model.SessionSummary, error)
	UpdateSettings(ctx context.Context, sessionID string, requester model.AccessTokenPayload, settings model.SessionSettings) (model.Session, error)
	Delete(ctx context.Context, sessionID string, requester model.AccessTokenPayload) error
}

// Session handles HTTP endpoints for sessions.
type Session struct {
	sessionService SessionService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewSession creates a new Session handler.
func NewSession(sessionService SessionService, contextManager model.ContextManager, logger *logger.Logger) *Session {
	return &Session{
		sessionService: sessionService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Create starts a new session and returns its bootstrap access token.
func (h *Session) Create(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apperrors.NewErrValidation("Invalid request body."))
		return
	}

	created, err := h.sessionService.Create(c.Request.Context(), req.Email)
	if err != nil {
		h.logger.Error("Session handler: create failed", "error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createSessionResponse{
		SessionID:              created.Session.ID,
		Email:                  created.Session.Email,
		ExpiresAt:              created.Session.ExpiresAt,
		AutoCategorizeOnUpload: created.Session.AutoCategorizeOnUpload,
		AccessToken:            created.AccessToken,
		ExpiresIn:              seconds(created.ExpiresIn),
	})
}

// List returns the requester's active sessions.
func (h *Session) List(c *gin.Context) {
	requester, ok := principal(c, h.contextManager)
	if !ok {
		return
	}

	summaries, err := h.sessionService.List(c.Request.Context(), requester)
	if err != nil {
		h.logger.Error("Session handler: list failed", "error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": toSessionResponses(summaries)})
}

// Get returns one active session.
func (h *Session) Get(c *gin.Context) {
	requester, ok := principal(c, h.contextManager)
	if !ok {
		return
	}

	summary, err := h.sessionService.Get(c.Request.Context(), c.Param("id"), requester)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionResponse(summary))
}

// UpdateSettings changes the session's user-adjustable settings.
func (h *Session) UpdateSettings(c *gin.Context) {
	requester, ok := principal(c, h.contextManager)
	if !ok {
		return
	}

	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AutoCategorizeOnUpload == nil {
		handleError(c, apperrors.NewErrValidation("autoCategorizeOnUpload must be a boolean."))
		return
	}

	session, err := h.sessionService.UpdateSettings(c.Request.Context(), c.Param("id"), requester, model.SessionSettings{
		AutoCategorizeOnUpload: *req.AutoCategorizeOnUpload,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, settingsResponse{
		SessionID:              session.ID,
		AutoCategorizeOnUpload: session.AutoCategorizeOnUpload,
	})
}

// Delete soft-deletes the session and reclaims its files.
func (h *Session) Delete(c *gin.Context) {
	requester, ok := principal(c, h.contextManager)
	if !ok {
		return
	}

	if err := h.sessionService.Delete(c.Request.Context(), c.Param("id"), requester); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
