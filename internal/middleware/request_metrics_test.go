package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lpserve/lpserve/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func Test_requestMetricsMiddleware(t *testing.T) {
	metricsManager := metrics.NewTestManager()

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	handler := RequestMetrics(metricsManager)(nextHandler)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/lp/missing", nil)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	counter, err := metricsManager.CounterRequests.GetMetricWith(map[string]string{
		"method": "GET",
		"status": "404",
	})
	assert.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(counter))
}
