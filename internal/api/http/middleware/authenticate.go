package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Om-mac/multiple-shop-analysis/internal/api/http/view"
	"github.com/Om-mac/multiple-shop-analysis/internal/logger"
	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

// Authenticator resolves a session token to its Principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.Principal, error)
}

// Authenticate reads the session cookie and puts the Principal into the request context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	cookieName     string
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, cookieName string, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		authenticator:  authenticator,
		contextManager: contextManager,
		cookieName:     cookieName,
		logger:         logger,
	}
}

// Page guards HTML routes: anonymous visitors are sent to the login page.
func (m *Authenticate) Page() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.authenticate(c); err != nil {
			if !errors.Is(err, model.ErrUnauthorized) {
				m.logger.Error("Authenticate middleware: failed to resolve session",
					"path", c.Request.URL.Path,
					"error", err.Error())
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			view.AddFlash(c, view.FlashWarning, "Please login first!")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// API guards JSON routes with a 401 error payload.
func (m *Authenticate) API() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.authenticate(c); err != nil {
			if !errors.Is(err, model.ErrUnauthorized) {
				m.logger.Error("Authenticate middleware: failed to resolve session",
					"path", c.Request.URL.Path,
					"error", err.Error())
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

func (m *Authenticate) authenticate(c *gin.Context) error {
	token, err := c.Cookie(m.cookieName)
	if err != nil || token == "" {
		return model.ErrUnauthorized
	}

	principal, err := m.authenticator.Authenticate(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, model.ErrUnauthorized) {
			// stale cookie, drop it
			c.SetCookie(m.cookieName, "", -1, "/", "", view.CookieSecure(c), true)
		}
		return err
	}

	m.logger.Debug("Authenticate middleware: session resolved",
		"user_id", principal.UserID,
		"session_id", principal.SessionID)

	ctx := m.contextManager.SetPrincipalToContext(c.Request.Context(), principal)
	c.Request = c.Request.WithContext(ctx)
	return nil
}
