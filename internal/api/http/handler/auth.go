package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Om-mac/multiple-shop-analysis/internal/api/http/view"
	"github.com/Om-mac/multiple-shop-analysis/internal/logger"
	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

// AuthService registers users and manages their sessions.
type AuthService interface {
	Register(ctx context.Context, creds model.Credentials) (model.User, error)
	Login(ctx context.Context, creds model.Credentials) (string, model.Session, error)
	Logout(ctx context.Context, token string) error
}

// Auth serves the register, login and logout pages.
type Auth struct {
	service AuthService
	cookie  CookieConfig
	logger  *logger.Logger
}

func NewAuth(service AuthService, cookie CookieConfig, logger *logger.Logger) *Auth {
	return &Auth{
		service: service,
		cookie:  cookie,
		logger:  logger,
	}
}

func (h *Auth) ShowRegister(c *gin.Context) {
	renderPage(c, http.StatusOK, "register.html", "Register", "", nil)
}

func (h *Auth) Register(c *gin.Context) {
	var creds model.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		view.AddFlash(c, view.FlashDanger, "Invalid form submission.")
		renderPage(c, http.StatusBadRequest, "register.html", "Register", "", nil)
		return
	}

	_, err := h.service.Register(c.Request.Context(), creds)
	if err != nil {
		var vErr *model.ValidationError
		switch {
		case errors.Is(err, model.ErrDuplicateUsername):
			view.AddFlash(c, view.FlashDanger, "Username already exists!")
			renderPage(c, http.StatusOK, "register.html", "Register", "", nil)
		case errors.As(err, &vErr):
			view.AddFlash(c, view.FlashDanger, vErr.Error())
			renderPage(c, http.StatusOK, "register.html", "Register", "", nil)
		default:
			renderError(c, err, "", h.logger)
		}
		return
	}

	view.AddFlash(c, view.FlashSuccess, "Registered Successfully! Please Login.")
	c.Redirect(http.StatusFound, "/login")
}

func (h *Auth) ShowLogin(c *gin.Context) {
	renderPage(c, http.StatusOK, "login.html", "Login", "", nil)
}

func (h *Auth) Login(c *gin.Context) {
	var creds model.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		view.AddFlash(c, view.FlashDanger, "Invalid form submission.")
		renderPage(c, http.StatusBadRequest, "login.html", "Login", "", nil)
		return
	}

	token, session, err := h.service.Login(c.Request.Context(), creds)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			view.AddFlash(c, view.FlashDanger, "Invalid username or password!")
			renderPage(c, http.StatusOK, "login.html", "Login", "", nil)
			return
		}
		renderError(c, err, "", h.logger)
		return
	}

	maxAge := int(session.ExpiresAt.Sub(session.CreatedAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, maxAge, "/", "", h.cookie.Secure, true)

	view.AddFlash(c, view.FlashSuccess, "Login successful!")
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout always ends on the login page, even when there was no session.
func (h *Auth) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookie.Name); err == nil && token != "" {
		if err := h.service.Logout(c.Request.Context(), token); err != nil {
			h.logger.Error("Auth handler: failed to revoke session",
				"error", err.Error())
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)

	view.AddFlash(c, view.FlashInfo, "You have been logged out!")
	c.Redirect(http.StatusFound, "/login")
}
