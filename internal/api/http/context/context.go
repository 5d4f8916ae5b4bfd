package context

import (
	"context"

	"github.com/dtroode/statementbox/internal/model"
)

type principalKey struct{}

// Manager stores the authenticated principal in a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetPrincipalToContext returns a copy of ctx carrying the principal.
func (m *Manager) SetPrincipalToContext(ctx context.Context, principal model.AccessTokenPayload) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipalFromContext retrieves the principal set by SetPrincipalToContext.
//
// Returns false when no principal is present or it carries no email.
func (m *Manager) GetPrincipalFromContext(ctx context.Context) (model.AccessTokenPayload, bool) {
	principal, ok := ctx.Value(principalKey{}).(model.AccessTokenPayload)
	if !ok || principal.Email == "" {
		return model.AccessTokenPayload{}, false
	}

	return principal, true
}

var _ model.ContextManager = (*Manager)(nil)
