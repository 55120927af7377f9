package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/Om-mac/multiple-shop-analysis/internal/api/http/context"
	"github.com/Om-mac/multiple-shop-analysis/internal/api/http/view"
	"github.com/Om-mac/multiple-shop-analysis/internal/logger"
	"github.com/Om-mac/multiple-shop-analysis/internal/mocks"
	"github.com/Om-mac/multiple-shop-analysis/internal/model"
	"github.com/Om-mac/multiple-shop-analysis/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T, auth *mocks.Authenticator) *gin.Engine {
	t.Helper()
	return newEngineWithPolicy(t, auth, false)
}

func newEngineWithPolicy(t *testing.T, auth *mocks.Authenticator, secure bool) *gin.Engine {
	t.Helper()
	ctxMgr := httpctx.NewManager()
	m := NewAuthenticate(auth, ctxMgr, "session", testutil.MakeNoopLogger())

	echo := func(c *gin.Context) {
		p, ok := ctxMgr.GetPrincipalFromContext(c.Request.Context())
		require.True(t, ok)
		c.String(http.StatusOK, p.Username)
	}

	e := gin.New()
	e.Use(view.SecureCookies(secure))
	e.GET("/page", m.Page(), echo)
	e.GET("/api", m.API(), echo)
	return e
}

func TestAuthenticate_ValidSession(t *testing.T) {
	auth := mocks.NewAuthenticator(t)
	auth.On("Authenticate", mock.Anything, "tok").Return(model.Principal{UserID: 1, Username: "alice"}, nil)
	e := newEngine(t, auth)

	for _, path := range []string{"/page", "/api"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "tok"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "alice", rec.Body.String(), path)
	}
}

func TestAuthenticate_Page_RedirectsToLogin(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		setup  func(a *mocks.Authenticator)
	}{
		{name: "no cookie", setup: func(a *mocks.Authenticator) {}},
		{
			name:   "revoked session",
			cookie: "tok",
			setup: func(a *mocks.Authenticator) {
				a.On("Authenticate", mock.Anything, "tok").Return(model.Principal{}, model.ErrUnauthorized)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mocks.NewAuthenticator(t)
			tt.setup(auth)
			e := newEngine(t, auth)

			req := httptest.NewRequest(http.MethodGet, "/page", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "session", Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get("Location"))
			assert.Contains(t, strings.Join(rec.Header().Values("Set-Cookie"), "\n"), "flash=")
		})
	}
}

func TestAuthenticate_API_Unauthorized(t *testing.T) {
	auth := mocks.NewAuthenticator(t)
	e := newEngine(t, auth)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestAuthenticate_StoreFailure(t *testing.T) {
	auth := mocks.NewAuthenticator(t)
	auth.On("Authenticate", mock.Anything, "tok").Return(model.Principal{}, errors.New("db down"))
	e := newEngine(t, auth)

	for _, path := range []string{"/page", "/api"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "tok"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)
	}
}

func TestAuthenticate_SecureCookies(t *testing.T) {
	for _, secure := range []bool{false, true} {
		auth := mocks.NewAuthenticator(t)
		auth.On("Authenticate", mock.Anything, "tok").Return(model.Principal{}, model.ErrUnauthorized)
		e := newEngineWithPolicy(t, auth, secure)

		req := httptest.NewRequest(http.MethodGet, "/page", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "tok"})
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		cookies := rec.Result().Cookies()
		require.NotEmpty(t, cookies)
		names := make([]string, 0, len(cookies))
		for _, c := range cookies {
			names = append(names, c.Name)
			assert.Equal(t, secure, c.Secure, c.Name)
		}
		assert.ElementsMatch(t, []string{"session", "flash"}, names)
	}
}

func TestAuthenticate_LogsResolvedSession(t *testing.T) {
	var buf bytes.Buffer
	auth := mocks.NewAuthenticator(t)
	auth.On("Authenticate", mock.Anything, "tok").
		Return(model.Principal{UserID: 1, Username: "alice", SessionID: "sid-1"}, nil)

	m := NewAuthenticate(auth, httpctx.NewManager(), "session", logger.NewWithWriter(&buf, -4))
	e := gin.New()
	e.GET("/api", m.API(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/api", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "tok"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, buf.String(), "session_id=sid-1")
	assert.Contains(t, buf.String(), "user_id=1")
}
