package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"chainscale/services"
)

func TestGetHealth(t *testing.T) {
	h := NewHandler(services.NewCacheService(testConfig(), services.NewMetricsService()), newMonitorService())

	rec := getJSON(t, h.GetHealth)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
}

func TestGetStatus(t *testing.T) {
	cache := services.NewCacheService(testConfig(), services.NewMetricsService())
	h := NewHandler(cache, newMonitorService())

	rec := getJSON(t, h.GetStatus)
	require.Equal(t, http.StatusOK, rec.Code)

	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	require.Equal(t, "running", status["status"])
	require.Equal(t, "in-memory", status["cacheMode"])
	require.NotContains(t, status, "clientVersion")
}

func TestGetStatusWithVersionHeader(t *testing.T) {
	cache := services.NewCacheService(testConfig(), services.NewMetricsService())
	h := NewHandler(cache, newMonitorService())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	req.Header.Set("X-App-Version", "0.8.0")
	rec := httptest.NewRecorder()
	require.NoError(t, h.GetStatus(e.NewContext(req, rec)))

	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))

	verdict, ok := status["clientVersion"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "deprecated", verdict["status"])
	require.Equal(t, true, verdict["needsUpgrade"])
	require.Equal(t, "critical", verdict["severity"])
}

func TestCacheEndpoints(t *testing.T) {
	cache := services.NewCacheService(testConfig(), services.NewMetricsService())
	cache.Refresh()
	h := NewCacheHandlers(cache)

	rec := getJSON(t, h.GetCacheStatus)
	require.Equal(t, http.StatusOK, rec.Code)

	var status map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	require.Equal(t, "in-memory", status["mode"])
	require.Equal(t, false, status["healthy"])

	rec = getJSON(t, h.ClearCache)
	require.Equal(t, http.StatusOK, rec.Code)

	_, found := cache.Get("metrics:all")
	require.False(t, found)
}
