package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"chainscale/models"
	"chainscale/services"
)

// MetricsHandlers serves the static reference datasets.
type MetricsHandlers struct {
	metrics *services.MetricsService
	cache   *services.CacheService
}

func NewMetricsHandlers(metrics *services.MetricsService, cache *services.CacheService) *MetricsHandlers {
	return &MetricsHandlers{
		metrics: metrics,
		cache:   cache,
	}
}

// serve returns the cached payload for key when present, otherwise falls
// back to the loader. The datasets are immutable so a stale read is
// impossible; the cache only short-circuits serialization of the big maps.
func (mh *MetricsHandlers) serve(c echo.Context, key string, load func() interface{}) error {
	if data, found := mh.cache.Get(key); found {
		return c.JSON(http.StatusOK, models.OK(data))
	}
	return c.JSON(http.StatusOK, models.OK(load()))
}

// GetAllMetrics returns every solution dataset.
func (mh *MetricsHandlers) GetAllMetrics(c echo.Context) error {
	return mh.serve(c, "metrics:all", func() interface{} { return mh.metrics.AllSolutions() })
}

// GetBaseMetrics returns the Layer 1 reference chains.
func (mh *MetricsHandlers) GetBaseMetrics(c echo.Context) error {
	return mh.serve(c, "metrics:base", func() interface{} { return mh.metrics.BaseLayer() })
}

// GetLayer2Metrics returns the Layer 2 solution dataset.
func (mh *MetricsHandlers) GetLayer2Metrics(c echo.Context) error {
	return mh.serve(c, "metrics:layer2", func() interface{} { return mh.metrics.Layer2Solutions() })
}

// GetShardingMetrics returns the sharding solution dataset.
func (mh *MetricsHandlers) GetShardingMetrics(c echo.Context) error {
	return mh.serve(c, "metrics:sharding", func() interface{} { return mh.metrics.ShardingSolutions() })
}

// GetTrilemma returns the trilemma score profiles.
func (mh *MetricsHandlers) GetTrilemma(c echo.Context) error {
	return mh.serve(c, "metrics:trilemma", func() interface{} { return mh.metrics.TrilemmaData() })
}

// GetComparisonSummary returns the qualitative comparison table.
func (mh *MetricsHandlers) GetComparisonSummary(c echo.Context) error {
	return mh.serve(c, "metrics:comparison", func() interface{} { return mh.metrics.ComparisonSummary() })
}

// GetSecurityVectors returns the attack-vector ratings.
func (mh *MetricsHandlers) GetSecurityVectors(c echo.Context) error {
	return mh.serve(c, "metrics:security", func() interface{} { return mh.metrics.SecurityVectors() })
}
