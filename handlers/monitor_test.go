package handlers

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"chainscale/models"
	"chainscale/services"
)

func newMonitorService() *services.MonitorService {
	rng := rand.New(rand.NewPCG(7, 7))
	return services.NewMonitorServiceWithSource(testConfig(), nil, rng)
}

func TestGetCurrentBeforeFirstSample(t *testing.T) {
	h := NewMonitorHandlers(newMonitorService())

	rec := getJSON(t, h.GetCurrent)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	envelope, _ := decodeEnvelope(t, rec)
	require.False(t, envelope.Success)
	require.Equal(t, "no samples collected yet", envelope.Error)
}

func TestGetCurrentAndHistory(t *testing.T) {
	monitor := newMonitorService()
	monitor.Start()
	defer monitor.Stop()

	h := NewMonitorHandlers(monitor)

	rec := getJSON(t, h.GetCurrent)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope, data := decodeEnvelope(t, rec)
	require.True(t, envelope.Success)

	var sample models.MonitorSample
	require.NoError(t, json.Unmarshal(data, &sample))
	require.Greater(t, sample.Layer1TPS, 0.0)

	rec = getJSON(t, h.GetHistory)
	require.Equal(t, http.StatusOK, rec.Code)

	_, data = decodeEnvelope(t, rec)
	var history models.MonitorHistory
	require.NoError(t, json.Unmarshal(data, &history))
	require.NotEmpty(t, history.Samples)
	require.Equal(t, "2s", history.Period)
}
