package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Om-mac/multiple-shop-analysis/internal/api/http/view"
)

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
}

func renderPage(c *gin.Context, status int, name, title, username string, data any) {
	c.HTML(status, name, view.Page{
		Title:    title,
		Username: username,
		Flashes:  view.ConsumeFlashes(c),
		Data:     data,
	})
}
