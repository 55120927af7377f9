package context

import (
	"context"

	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

type principalKey struct{}

// Manager stores the authenticated Principal in a request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

var _ model.ContextManager = (*Manager)(nil)

// SetPrincipalToContext returns a child context carrying principal.
func (m *Manager) SetPrincipalToContext(ctx context.Context, principal model.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipalFromContext returns the Principal set by the authentication middleware.
func (m *Manager) GetPrincipalFromContext(ctx context.Context) (model.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(model.Principal)
	if !ok || principal.UserID == 0 {
		return model.Principal{}, false
	}
	return principal, true
}
