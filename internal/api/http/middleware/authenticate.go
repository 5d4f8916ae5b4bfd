package middleware

import (
	"strings"

	"github.com/dtroode/statementbox/internal/apperrors"
	"github.com/dtroode/statementbox/internal/logger"
	"github.com/dtroode/statementbox/internal/model"
	"github.com/gin-gonic/gin"
)

// TokenParser resolves the principal carried by a bearer token.
type TokenParser interface {
	ParseAccessToken(token string) (model.AccessTokenPayload, error)
}

// Authenticate validates bearer tokens and injects the principal into the request context.
type Authenticate struct {
	tokenParser    TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenParser TokenParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenParser: tokenParser, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header and aborts with 401 when the token is missing or invalid.
func (m *Authenticate) Handle(c *gin.Context) {
	principal, authErr := m.authenticate(bearerToken(c.GetHeader("Authorization")))
	if authErr != nil {
		m.logger.Debug("Authenticate middleware: request rejected",
			"path", c.FullPath(),
			"reason", authErr.Message)
		c.AbortWithStatusJSON(authErr.HTTPCode, gin.H{"error": authErr.Message})
		return
	}

	c.Request = c.Request.WithContext(m.contextManager.SetPrincipalToContext(c.Request.Context(), principal))
	c.Next()
}

func (m *Authenticate) authenticate(tokenString string) (model.AccessTokenPayload, *apperrors.APIError) {
	if tokenString == "" {
		return model.AccessTokenPayload{}, apperrors.NewErrMissingAuthorizationToken()
	}

	principal, err := m.tokenParser.ParseAccessToken(tokenString)
	if err != nil || principal.Email == "" {
		return model.AccessTokenPayload{}, apperrors.NewErrInvalidAuthorizationToken()
	}

	return principal, nil
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
