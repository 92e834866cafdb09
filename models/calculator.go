package models

// Calculation requests. Optional fields are pointers so an absent value
// falls back to its documented default while an explicit zero or negative
// value is rejected as a parameter error.

type Layer2Request struct {
	TxVolume  float64  `json:"tx_volume"`
	BatchSize *int     `json:"batch_size,omitempty"` // default 100
	GasPrice  *float64 `json:"gas_price,omitempty"`  // default 20 gwei
}

type ShardingRequest struct {
	TxVolume    float64  `json:"tx_volume"`
	NumShards   *int     `json:"num_shards,omitempty"`    // default 64
	TPSPerShard *float64 `json:"tps_per_shard,omitempty"` // default 100
}

type HybridRequest struct {
	TxVolume         float64  `json:"tx_volume"`
	NumShards        *int     `json:"num_shards,omitempty"`        // default 32
	Layer2Multiplier *float64 `json:"layer2_multiplier,omitempty"` // default 50
}

type CompareRequest struct {
	TxVolume float64 `json:"tx_volume"`
}

type TrilemmaRequest struct {
	Scalability      float64 `json:"scalability"`
	Security         float64 `json:"security"`
	Decentralization float64 `json:"decentralization"`
}

// RollupMetrics is the per-variant output of the Layer 2 calculation.
type RollupMetrics struct {
	Solution            string  `json:"solution"`
	TPS                 float64 `json:"tps"`
	ProcessingTimeSec   float64 `json:"processing_time_seconds"`
	NumBatches          int64   `json:"num_batches"`
	L1CostGwei          float64 `json:"l1_cost_gwei"`
	L2CostGwei          float64 `json:"l2_cost_gwei"`
	CostSavingsPercent  float64 `json:"cost_savings_percent"`
	FinalityTime        string  `json:"finality_time"`
	WithdrawalDelay     string  `json:"withdrawal_delay"`
	SecurityInheritance string  `json:"security_inheritance"`
}

type Layer2Result struct {
	Optimistic RollupMetrics     `json:"optimistic"`
	ZK         RollupMetrics     `json:"zk"`
	Comparison map[string]string `json:"comparison"`
}

// BaseLayerComparison relates sharded throughput back to the unsharded
// base layer.
type BaseLayerComparison struct {
	BaseTPS           float64 `json:"base_tps"`
	ShardedTPS        float64 `json:"sharded_tps"`
	ImprovementFactor float64 `json:"improvement_factor"`
}

type ShardingResult struct {
	Solution                 string              `json:"solution"`
	NumShards                int                 `json:"num_shards"`
	TPSPerShard              float64             `json:"tps_per_shard"`
	TotalTPS                 float64             `json:"total_tps"`
	ProcessingTimeSec        float64             `json:"processing_time_seconds"`
	IntraShardTxs            int64               `json:"intra_shard_txs"`
	CrossShardTxs            int64               `json:"cross_shard_txs"`
	CrossShardPercentage     float64             `json:"cross_shard_percentage"`
	AvgLatencyMultiplier     float64             `json:"avg_latency_multiplier"`
	ThroughputImprovementPct float64             `json:"throughput_improvement_percent"`
	LatencyReductionPct      float64             `json:"latency_reduction_percent"`
	BaseLayer                BaseLayerComparison `json:"base_layer_comparison"`
	Scalability              string              `json:"scalability"`
	SecurityModel            string              `json:"security_model"`
}

type HybridResult struct {
	Solution          string   `json:"solution"`
	BaseLayer         string   `json:"base_layer"`
	Layer2            string   `json:"layer2"`
	BaseShardedTPS    float64  `json:"base_sharded_tps"`
	Layer2Multiplier  float64  `json:"layer2_multiplier"`
	TotalHybridTPS    float64  `json:"total_hybrid_tps"`
	ProcessingTimeSec float64  `json:"processing_time_seconds"`
	ScalabilityType   string   `json:"scalability_type"`
	CostEfficiency    string   `json:"cost_efficiency"`
	Security          string   `json:"security"`
	UseCase           string   `json:"use_case"`
	Examples          []string `json:"examples"`
}

// BaseLayerResult is the unscaled reference point in a comparison.
type BaseLayerResult struct {
	Name              string  `json:"name"`
	TPS               float64 `json:"tps"`
	ProcessingTimeSec float64 `json:"processing_time_seconds"`
	ProcessingTimeHrs float64 `json:"processing_time_hours"`
}

// RankEntry is one row of the throughput ranking, highest total TPS first.
type RankEntry struct {
	Rank     int     `json:"rank"`
	Solution string  `json:"solution"`
	TotalTPS float64 `json:"total_tps"`
}

type CompareSolutions struct {
	BaseLayer        BaseLayerResult `json:"base_layer"`
	Layer2Optimistic RollupMetrics   `json:"layer2_optimistic"`
	Layer2ZK         RollupMetrics   `json:"layer2_zk"`
	Sharding         ShardingResult  `json:"sharding"`
	Hybrid           HybridResult    `json:"hybrid"`
}

// CompareResult carries no timestamp: identical requests must produce
// byte-identical responses.
type CompareResult struct {
	TransactionVolume float64           `json:"transaction_volume"`
	Solutions         CompareSolutions  `json:"solutions"`
	Ranking           []RankEntry       `json:"ranking"`
	Highlights        map[string]string `json:"highlights"`
}

type TrilemmaResult struct {
	BalancedScore      float64            `json:"balanced_score"`
	IndividualScores   map[string]float64 `json:"individual_scores"`
	WeakestDimension   string             `json:"weakest_dimension"`
	StrongestDimension string             `json:"strongest_dimension"`
	TradeOffVariance   float64            `json:"trade_off_variance"`
	IsBalanced         bool               `json:"is_balanced"`
	Recommendation     string             `json:"recommendation"`
}
