package healthcheck

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agglayer/cascadekit/log"
	"github.com/stretchr/testify/require"
)

func TestHealthCheckHandler_ServeHTTP_Healthy(t *testing.T) {
	handler := NewHealthCheckHandler(log.GetDefaultLogger()).
		AddChecker("dispatcher", func() error { return nil })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"is_healthy": true}`, rr.Body.String())
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestHealthCheckHandler_ServeHTTP_Unhealthy(t *testing.T) {
	handler := NewHealthCheckHandler(log.GetDefaultLogger()).
		AddChecker("dispatcher", func() error { return errors.New("no block for 10m0s") }).
		AddChecker("reconciler", func() error { return nil })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	require.JSONEq(t, `{"is_healthy": false, "failing": {"dispatcher": "no block for 10m0s"}}`, rr.Body.String())
}
