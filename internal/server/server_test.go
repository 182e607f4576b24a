package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vislib-axis/internal/database"
	"vislib-axis/internal/metrics"
	"vislib-axis/internal/types"
	"vislib-axis/internal/yaxis"
)

func newTestServer(t *testing.T) (*Server, *metrics.AxisMetrics) {
	t.Helper()
	require.NoError(t, database.InitDB(filepath.Join(t.TempDir(), "axis.db")))
	t.Cleanup(func() { database.CloseDB() })

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	s := New(Options{
		Metrics:  m,
		Gatherer: reg,
		CacheTTL: time.Minute,
		Margin:   yaxis.DefaultMargin,
	})
	return s, m
}

func do(s *Server, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestAxisSVG(t *testing.T) {
	s, m := newTestServer(t)

	rec := do(s, http.MethodGet, "/axis.svg?ymin=0&ymax=0&width=60&height=55", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `<svg xmlns="http://www.w3.org/2000/svg" width="60" height="55">`))
	assert.Contains(t, body, `transform="translate(58,10)"`)
	assert.Contains(t, body, ">-1</text>")
	assert.Contains(t, body, ">1</text>")
	assert.Equal(t, 1.0, metrics.GetMetricValue(m.RendersTotal.WithLabelValues("normal")))
}

func TestAxisSVGCached(t *testing.T) {
	s, m := newTestServer(t)

	first := do(s, http.MethodGet, "/axis.svg?ymin=5&ymax=5e9&height=1015", "")
	second := do(s, http.MethodGet, "/axis.svg?height=1015&ymax=5e9&ymin=5", "")
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Contains(t, second.Body.String(), ">5B</text>")
	assert.Equal(t, 1.0, metrics.GetMetricValue(m.CacheHitsTotal))
	assert.Equal(t, 1.0, metrics.GetMetricValue(m.RendersTotal.WithLabelValues("normal")))
}

func TestAxisPNG(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(s, http.MethodGet, "/axis.png?ymin=0&ymax=250", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
}

func TestAxisStatus(t *testing.T) {
	table := []struct {
		name   string
		target string
		status int
		kind   string
	}{
		{"suppressed", "/axis.svg?ymin=0&ymax=10&mode=wiggle", http.StatusNoContent, ""},
		{"suppressed png", "/axis.png?ymin=0&ymax=10&mode=silhouette", http.StatusNoContent, ""},
		{"zero width", "/axis.svg?ymin=0&ymax=10&width=0", http.StatusBadRequest, metrics.KindDimension},
		{"no room for margins", "/axis.svg?ymin=0&ymax=10&height=15", http.StatusBadRequest, metrics.KindDimension},
		{"nan bound", "/axis.svg?ymin=NaN&ymax=10", http.StatusUnprocessableEntity, metrics.KindScale},
		{"missing ymax", "/axis.svg?ymin=0", http.StatusBadRequest, metrics.KindRequest},
		{"bad number", "/axis.svg?ymin=zero&ymax=1", http.StatusBadRequest, metrics.KindRequest},
		{"unknown mode", "/axis.svg?ymin=0&ymax=1&mode=sideways", http.StatusBadRequest, metrics.KindRequest},
	}

	for _, row := range table {
		t.Run(row.name, func(t *testing.T) {
			s, m := newTestServer(t)

			rec := do(s, http.MethodGet, row.target, "")
			assert.Equal(t, row.status, rec.Code)
			if row.kind != "" {
				assert.Equal(t, 1.0, metrics.GetMetricValue(m.ErrorsTotal.WithLabelValues(row.kind)))
			}
		})
	}
}

func TestSuppressedCounted(t *testing.T) {
	s, m := newTestServer(t)

	do(s, http.MethodGet, "/axis.svg?ymin=0&ymax=10&mode=wiggle", "")
	assert.Equal(t, 1.0, metrics.GetMetricValue(m.SuppressedTotal.WithLabelValues("wiggle")))
}

func TestPresets(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(s, http.MethodGet, "/presets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do(s, http.MethodPut, "/presets/revenue", `{"y_min": 5, "y_max": 5000000000, "height": 1015}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var saved types.Preset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, "revenue", saved.Name)
	assert.Equal(t, "normal", saved.Mode)
	assert.Equal(t, 60.0, saved.Width)

	rec = do(s, http.MethodGet, "/presets/revenue.svg", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ">5B</text>")

	// replacing the preset drops the cached rendering
	rec = do(s, http.MethodPut, "/presets/revenue", `{"y_min": 0, "y_max": 1, "mode": "percentage", "height": 215}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(s, http.MethodGet, "/presets/revenue.svg", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ">100%</text>")

	rec = do(s, http.MethodGet, "/presets", "")
	var presets []types.Preset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &presets))
	require.Len(t, presets, 1)

	rec = do(s, http.MethodDelete, "/presets/revenue", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(s, http.MethodGet, "/presets/revenue", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(s, http.MethodGet, "/presets/revenue.svg", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(s, http.MethodDelete, "/presets/revenue", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPutPresetRejected(t *testing.T) {
	s, _ := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest, do(s, http.MethodPut, "/presets/a", `{"mode": "sideways"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(s, http.MethodPut, "/presets/a", `not json`).Code)
	assert.Equal(t, http.StatusBadRequest, do(s, http.MethodPut, "/presets/a.svg", `{}`).Code)
}

func TestHealthAndMetrics(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	do(s, http.MethodGet, "/axis.svg?ymin=0&ymax=10", "")
	rec = do(s, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `vislib_yaxis_renders_total{mode="normal"} 1`)
}

func TestRenderCacheExpires(t *testing.T) {
	c := newRenderCache(time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.set("/axis.svg?ymax=1", []byte("<svg/>"), "image/svg+xml")
	_, ok := c.get("/axis.svg?ymax=1")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok = c.get("/axis.svg?ymax=1")
	assert.False(t, ok)
}

func TestRenderCacheDisabled(t *testing.T) {
	c := newRenderCache(0)
	c.set("k", []byte("x"), "text/plain")
	_, ok := c.get("k")
	assert.False(t, ok)
}
