package services

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"chainscale/config"
)

func testMonitorConfig(historySize int) *config.Config {
	return &config.Config{
		Calculator: testCalcConfig(),
		Monitor: config.MonitorConfig{
			Interval:    2000,
			HistorySize: historySize,
		},
	}
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1))
}

func TestCollectSampleWithinBounds(t *testing.T) {
	ms := NewMonitorServiceWithSource(testMonitorConfig(30), nil, testRNG())

	for i := 0; i < 100; i++ {
		ms.collectSample()
	}

	history := ms.History()
	for _, s := range history.Samples {
		require.InDelta(t, 15.0, s.Layer1TPS, 15.0*0.10)
		require.InDelta(t, 3000.0, s.Layer2TPS, 3000.0*0.15)
		require.InDelta(t, 6400.0, s.ShardingTPS, 6400.0*0.10)
		require.InDelta(t, 160_000.0, s.HybridTPS, 160_000.0*0.10)
		require.GreaterOrEqual(t, s.AvgLatencyMs, 50.0)
		require.LessOrEqual(t, s.AvgLatencyMs, 200.0)
		require.GreaterOrEqual(t, s.PendingTxs, 0)
		require.Less(t, s.PendingTxs, 10000)
		require.GreaterOrEqual(t, s.ActiveShards, 56)
		require.LessOrEqual(t, s.ActiveShards, 64)
		require.False(t, s.Timestamp.IsZero())
	}
}

func TestHistoryRingCapped(t *testing.T) {
	ms := NewMonitorServiceWithSource(testMonitorConfig(5), nil, testRNG())

	for i := 0; i < 12; i++ {
		ms.collectSample()
	}

	require.Equal(t, 5, ms.SampleCount())

	history := ms.History()
	require.Len(t, history.Samples, 5)

	// Oldest first, and the newest entry is what Current reports.
	current, ok := ms.Current()
	require.True(t, ok)
	require.Equal(t, history.Samples[4], current)
	for i := 1; i < len(history.Samples); i++ {
		require.False(t, history.Samples[i].Timestamp.Before(history.Samples[i-1].Timestamp))
	}
}

func TestCurrentEmptyBeforeFirstSample(t *testing.T) {
	ms := NewMonitorServiceWithSource(testMonitorConfig(30), nil, testRNG())

	_, ok := ms.Current()
	require.False(t, ok)
	require.Equal(t, 0, ms.SampleCount())
}

func TestMonitorStopIdempotent(t *testing.T) {
	ms := NewMonitorServiceWithSource(testMonitorConfig(30), nil, testRNG())

	ms.Start()
	require.GreaterOrEqual(t, ms.SampleCount(), 1)

	ms.Stop()
	ms.Stop()

	// Loop is gone; the count stays where it was.
	count := ms.SampleCount()
	require.Equal(t, count, ms.SampleCount())
}

func TestDeterministicStreamWithSeededSource(t *testing.T) {
	a := NewMonitorServiceWithSource(testMonitorConfig(30), nil, testRNG())
	b := NewMonitorServiceWithSource(testMonitorConfig(30), nil, testRNG())

	a.collectSample()
	b.collectSample()

	sampleA, _ := a.Current()
	sampleB, _ := b.Current()
	require.Equal(t, sampleA.Layer1TPS, sampleB.Layer1TPS)
	require.Equal(t, sampleA.PendingTxs, sampleB.PendingTxs)
	require.Equal(t, sampleA.ActiveShards, sampleB.ActiveShards)
}
