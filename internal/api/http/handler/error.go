package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/statementbox/internal/apperrors"
	"github.com/dtroode/statementbox/internal/model"
	"github.com/gin-gonic/gin"
)

func handleError(c *gin.Context, err error) {
	_ = c.Error(err)

	if apiErr, ok := apperrors.As(err); ok {
		c.JSON(apiErr.HTTPCode, gin.H{"error": apiErr.Message})
		return
	}

	switch {
	case errors.Is(err, model.ErrUnableToAllocateID):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Unable to allocate a session id, please retry."})
	default:
		internal := apperrors.NewErrInternalServerError()
		c.JSON(internal.HTTPCode, gin.H{"error": internal.Message})
	}
}

func principal(c *gin.Context, contextManager model.ContextManager) (model.AccessTokenPayload, bool) {
	p, ok := contextManager.GetPrincipalFromContext(c.Request.Context())
	if !ok {
		apiErr := apperrors.NewErrMissingAuthorizationToken()
		c.JSON(apiErr.HTTPCode, gin.H{"error": apiErr.Message})
		return model.AccessTokenPayload{}, false
	}
	return p, true
}
