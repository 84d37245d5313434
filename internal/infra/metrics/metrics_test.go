package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.RecordLogin(LoginSucceeded)
	m.RecordLogin(LoginRejected)
	m.RecordLogin(LoginRejected)
	m.RecordTokenRejection("expired")
	m.RecordNotFound("Anti-hero")

	assert.InDelta(t, 1, testutil.ToFloat64(m.logins.WithLabelValues(LoginSucceeded)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.logins.WithLabelValues(LoginRejected)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.tokenRejections.WithLabelValues("expired")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.notFound.WithLabelValues("Anti-hero")), 0)
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordLogin(LoginFailed)
		m.RecordTokenRejection("malformed")
		m.RecordNotFound("User")
	})
	assert.NoError(t, m.RegisterDBStats(nil, "roster"))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RecordLogin(LoginSucceeded)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `roster_logins_total{outcome="success"} 1`)
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	first := New()
	second := New()
	first.RecordNotFound("User")

	assert.InDelta(t, 0, testutil.ToFloat64(second.notFound.WithLabelValues("User")), 0)
}
