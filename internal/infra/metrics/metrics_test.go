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

func TestMetrics_HandlerExposesCounters(t *testing.T) {
	m := New()
	m.WebhookEvents.WithLabelValues("order", WebhookProcessed).Inc()
	m.PushResults.WithLabelValues("success").Add(2)

	assert.InDelta(t, 1, testutil.ToFloat64(m.WebhookEvents.WithLabelValues("order", WebhookProcessed)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.PushResults.WithLabelValues("success")), 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `clubrelay_webhook_events_total{domain="order",outcome="processed"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()
	a.SweepItems.WithLabelValues("deleted").Inc()

	assert.InDelta(t, 0, testutil.ToFloat64(b.SweepItems.WithLabelValues("deleted")), 0)
}
