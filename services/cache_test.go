package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chainscale/config"
	"chainscale/models"
)

func testCacheConfig() *config.Config {
	return &config.Config{
		Calculator: testCalcConfig(),
		Monitor:    config.MonitorConfig{Interval: 2000, HistorySize: 30},
		Cache:      config.CacheConfig{TTL: 30},
		Redis:      config.RedisConfig{Enabled: false},
	}
}

func TestCacheStartsInMemoryWhenRedisDisabled(t *testing.T) {
	cs := NewCacheService(testCacheConfig(), NewMetricsService())
	require.Equal(t, CacheModeInMemory, cs.GetCacheMode())
}

func TestCacheSetGetRoundTrip(t *testing.T) {
	cs := NewCacheService(testCacheConfig(), NewMetricsService())

	sample := models.MonitorSample{Layer1TPS: 15.3, PendingTxs: 120}
	cs.Set("monitor:current", sample, time.Minute)

	got, found := cs.Get("monitor:current")
	require.True(t, found)
	require.Equal(t, sample, got.(models.MonitorSample))

	_, found = cs.Get("monitor:missing")
	require.False(t, found)
}

func TestCacheExpiry(t *testing.T) {
	cs := NewCacheService(testCacheConfig(), NewMetricsService())

	cs.Set("metrics:base", "payload", 10*time.Millisecond)

	_, found := cs.Get("metrics:base")
	require.True(t, found)

	time.Sleep(30 * time.Millisecond)
	_, found = cs.Get("metrics:base")
	require.False(t, found)
}

func TestRefreshWarmsAllDatasets(t *testing.T) {
	metrics := NewMetricsService()
	cs := NewCacheService(testCacheConfig(), metrics)

	cs.Refresh()

	keys := []string{
		"metrics:all", "metrics:base", "metrics:layer2", "metrics:sharding",
		"metrics:trilemma", "metrics:comparison", "metrics:security",
	}
	for _, key := range keys {
		_, found := cs.Get(key)
		require.True(t, found, "key %s not warmed", key)
	}

	base, _ := cs.Get("metrics:base")
	require.Equal(t, metrics.BaseLayer(), base)
}

func TestClearCache(t *testing.T) {
	cs := NewCacheService(testCacheConfig(), NewMetricsService())

	cs.Refresh()
	require.NoError(t, cs.ClearCache())

	_, found := cs.Get("metrics:all")
	require.False(t, found)

	stats := cs.GetCacheStats()
	require.Equal(t, 0, stats["in_memory_keys"])
}

func TestGetCacheStats(t *testing.T) {
	cs := NewCacheService(testCacheConfig(), NewMetricsService())
	cs.Refresh()

	stats := cs.GetCacheStats()
	require.Equal(t, "in-memory", stats["mode"])
	require.Equal(t, false, stats["enabled"])
	require.Equal(t, 7, stats["in_memory_keys"])
}
