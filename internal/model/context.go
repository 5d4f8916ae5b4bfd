package model

import "context"

type ContextManager interface {
	SetPrincipalToContext(ctx context.Context, principal AccessTokenPayload) context.Context
	GetPrincipalFromContext(ctx context.Context) (AccessTokenPayload, bool)
}
