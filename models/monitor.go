package models

import "time"

// MonitorSample is one tick of the simulated live-performance feed.
// Values are synthetic by construction; there is no real telemetry source.
type MonitorSample struct {
	Timestamp    time.Time `json:"timestamp"`
	Layer1TPS    float64   `json:"layer1_tps"`
	Layer2TPS    float64   `json:"layer2_tps"`
	ShardingTPS  float64   `json:"sharding_tps"`
	HybridTPS    float64   `json:"hybrid_tps"`
	AvgLatencyMs float64   `json:"avg_latency_ms"`
	PendingTxs   int       `json:"pending_txs"`
	ActiveShards int       `json:"active_shards"`
}

// MonitorHistory is the bounded recent-sample window, oldest first.
type MonitorHistory struct {
	Samples []MonitorSample `json:"samples"`
	Period  string          `json:"period"`
}
