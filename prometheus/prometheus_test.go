package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func initTestRegistry(t *testing.T) {
	t.Helper()
	reg := prometheus.NewRegistry()
	InitWithRegistry(reg, reg)
}

func TestGauges(t *testing.T) {
	initTestRegistry(t)
	RegisterGauges(prometheus.GaugeOpts{Name: "test_gauge", Help: "help"})
	// registering twice is ignored
	RegisterGauges(prometheus.GaugeOpts{Name: "test_gauge", Help: "help"})

	GaugeSet("test_gauge", 5)
	GaugeInc("test_gauge")
	GaugeInc("unknown_gauge")

	g, ok := GetGauge("test_gauge")
	require.True(t, ok)
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	require.Equal(t, float64(6), m.GetGauge().GetValue())
}

func TestCounters(t *testing.T) {
	initTestRegistry(t)
	RegisterCounters(prometheus.CounterOpts{Name: "test_counter", Help: "help"})
	RegisterCounterVecs(CounterVecOpts{
		CounterOpts: prometheus.CounterOpts{Name: "test_counter_vec", Help: "help"},
		Labels:      []string{"outcome"},
	})

	CounterInc("test_counter")
	CounterInc("test_counter")
	CounterVecInc("test_counter_vec", "submitted")
	CounterVecInc("test_counter_vec", "a", "b")

	c, ok := GetCounter("test_counter")
	require.True(t, ok)
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	require.Equal(t, float64(2), m.GetCounter().GetValue())

	vec, ok := GetCounterVec("test_counter_vec")
	require.True(t, ok)
	var mv dto.Metric
	require.NoError(t, vec.WithLabelValues("submitted").Write(&mv))
	require.Equal(t, float64(1), mv.GetCounter().GetValue())
}

func TestHandler(t *testing.T) {
	initTestRegistry(t)
	RegisterCounters(prometheus.CounterOpts{Name: "test_handler_counter", Help: "help"})
	CounterInc("test_handler_counter")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, Endpoint, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "test_handler_counter 1")
}
