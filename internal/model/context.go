package model

import (
	"context"
)

// Principal is the authenticated user attached to a request.
type Principal struct {
	UserID    int64
	Username  string
	SessionID string
}

// ContextManager stores and retrieves the Principal in a request context.
type ContextManager interface {
	SetPrincipalToContext(ctx context.Context, principal Principal) context.Context
	GetPrincipalFromContext(ctx context.Context) (Principal, bool)
}
