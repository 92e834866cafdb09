package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"chainscale/services"
	"chainscale/utils"
)

// Handler manages the system-level endpoints.
type Handler struct {
	Cache   *services.CacheService
	Monitor *services.MonitorService
	Started time.Time
}

func NewHandler(cache *services.CacheService, monitor *services.MonitorService) *Handler {
	return &Handler{
		Cache:   cache,
		Monitor: monitor,
		Started: time.Now(),
	}
}

// GetHealth returns OK
func (h *Handler) GetHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// GetStatus returns backend status. Clients may report their build via
// the X-App-Version header and get an upgrade verdict back.
func (h *Handler) GetStatus(c echo.Context) error {
	status := map[string]interface{}{
		"status":         "running",
		"uptime":         time.Since(h.Started).Round(time.Second).String(),
		"cacheMode":      string(h.Cache.GetCacheMode()),
		"monitorSamples": h.Monitor.SampleCount(),
		"timestamp":      time.Now(),
	}

	if clientVersion := c.Request().Header.Get("X-App-Version"); clientVersion != "" {
		verdict, needsUpgrade, severity := utils.CheckVersionStatus(clientVersion, nil)
		status["clientVersion"] = map[string]interface{}{
			"reported":     clientVersion,
			"status":       verdict,
			"needsUpgrade": needsUpgrade,
			"severity":     severity,
			"message":      utils.GetUpgradeMessage(clientVersion, nil),
		}
	}

	return c.JSON(http.StatusOK, status)
}
