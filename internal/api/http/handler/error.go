package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Om-mac/multiple-shop-analysis/internal/logger"
	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

const msgInternal = "Internal server error"

// errorStatus maps domain errors onto HTTP status codes and client-safe messages.
func errorStatus(err error) (int, string) {
	var vErr *model.ValidationError
	switch {
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.As(err, &vErr):
		return http.StatusBadRequest, vErr.Error()
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "Not found"
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func handleAPIError(c *gin.Context, err error, logger *logger.Logger) {
	status, msg := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("HTTP handler: request failed",
			"path", c.Request.URL.Path,
			"error", err.Error())
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func renderError(c *gin.Context, err error, username string, logger *logger.Logger) {
	logger.Error("HTTP handler: page failed",
		"path", c.Request.URL.Path,
		"error", err.Error())
	_ = c.Error(err)
	renderPage(c, http.StatusInternalServerError, "error.html", "Error", username, nil)
	c.Abort()
}
