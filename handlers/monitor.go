package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"chainscale/models"
	"chainscale/services"
)

// MonitorHandlers exposes the simulated live-performance feed.
type MonitorHandlers struct {
	monitor *services.MonitorService
}

func NewMonitorHandlers(monitor *services.MonitorService) *MonitorHandlers {
	return &MonitorHandlers{monitor: monitor}
}

// GetCurrent returns the latest sample.
func (mh *MonitorHandlers) GetCurrent(c echo.Context) error {
	sample, ok := mh.monitor.Current()
	if !ok {
		return c.JSON(http.StatusServiceUnavailable, models.Fail("no samples collected yet"))
	}
	return c.JSON(http.StatusOK, models.OK(sample))
}

// GetHistory returns the recent-sample window.
func (mh *MonitorHandlers) GetHistory(c echo.Context) error {
	return c.JSON(http.StatusOK, models.OK(mh.monitor.History()))
}
