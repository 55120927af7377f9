package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.SaleRecorded("Stationery", decimal.RequireFromString("2.50"))
	m.SaleRecorded("Kitchen", decimal.RequireFromString("7.25"))
	m.LoginAttempt(true)
	m.LoginAttempt(false)
	m.LoginAttempt(false)
	m.UserRegistered()
	m.SessionRevoked()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.sales))
	assert.InDelta(t, 9.75, testutil.ToFloat64(m.revenue), 1e-9)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.logins.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.registrations))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logouts))
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/sales", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/sales", http.StatusOK, 30*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/sales", http.StatusFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/sales", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/sales", "302")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.UserRegistered()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "sales_tracker_auth_registrations_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.UserRegistered()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.registrations))
	assert.NotSame(t, a.registry, b.registry)
}
