package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	httpctx "github.com/Om-mac/multiple-shop-analysis/internal/api/http/context"
	"github.com/Om-mac/multiple-shop-analysis/internal/api/http/view"
	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var alice = model.Principal{UserID: 7, Username: "alice"}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	tmpl, err := view.LoadTemplates()
	require.NoError(t, err)

	e := gin.New()
	e.SetHTMLTemplate(tmpl)
	return e
}

// withPrincipal stands in for the authentication middleware.
func withPrincipal(ctxMgr model.ContextManager, p model.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(ctxMgr.SetPrincipalToContext(c.Request.Context(), p))
		c.Next()
	}
}

func newSalesEngine(t *testing.T, h *Sales, ctxMgr *httpctx.Manager) *gin.Engine {
	t.Helper()
	e := newTestEngine(t)
	auth := e.Group("/", withPrincipal(ctxMgr, alice))
	auth.GET("/dashboard", h.Dashboard)
	auth.GET("/add-sale", h.ShowAddSale)
	auth.POST("/add-sale", h.AddSale)
	auth.GET("/sales", h.List)
	auth.GET("/analytics", h.Analytics)
	auth.GET("/api/analytics", h.APIAnalytics)
	auth.GET("/api/sales-summary", h.Summary)
	return e
}

func postForm(e http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func get(e http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func cookieNamed(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
