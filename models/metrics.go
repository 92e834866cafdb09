package models

// BaseLayerChain describes a Layer 1 (or traditional) payment network.
type BaseLayerChain struct {
	Name                  string  `json:"name"`
	TPS                   float64 `json:"tps"`
	BlockTime             string  `json:"block_time"`
	Consensus             string  `json:"consensus"`
	FinalityTime          string  `json:"finality_time"`
	SecurityScore         int     `json:"security_score"`
	DecentralizationScore int     `json:"decentralization_score"`
}

// Layer2Solution describes an off-chain scaling solution settling to a
// parent chain.
type Layer2Solution struct {
	Name                  string   `json:"name"`
	Type                  string   `json:"type"` // "Payment Channels", "Sidechain", "Optimistic Rollup", "ZK Rollup"
	ParentChain           string   `json:"parent_chain"`
	TPS                   float64  `json:"tps"`
	AvgTxCostUSD          float64  `json:"avg_transaction_cost_usd"`
	FinalityTime          string   `json:"finality_time"`
	SecurityModel         string   `json:"security_model"`
	WithdrawalDelay       string   `json:"withdrawal_delay"`
	CostReduction         string   `json:"cost_reduction"`
	Complexity            string   `json:"complexity"`
	UseCases              []string `json:"use_cases"`
	SecurityScore         int      `json:"security_score"`
	DecentralizationScore int      `json:"decentralization_score"`
}

// ShardingSolution describes a sharded base layer. NumShards of 0 means
// the protocol reshards dynamically.
type ShardingSolution struct {
	Name                  string   `json:"name"`
	Status                string   `json:"status"`
	NumShards             int      `json:"num_shards"`
	TPSPerShard           float64  `json:"tps_per_shard"`
	TotalTPS              float64  `json:"total_tps"`
	Consensus             string   `json:"consensus"`
	CrossShardLatency     string   `json:"cross_shard_latency"`
	SecurityModel         string   `json:"security_model"`
	ImplementationStatus  string   `json:"implementation_status"`
	Complexity            string   `json:"complexity"`
	UseCases              []string `json:"use_cases"`
	SecurityScore         int      `json:"security_score"`
	DecentralizationScore int      `json:"decentralization_score"`
}

// TrilemmaScores holds the three-way tradeoff profile for one solution
// family, each dimension scored 0-100.
type TrilemmaScores struct {
	Scalability      int `json:"scalability"`
	Security         int `json:"security"`
	Decentralization int `json:"decentralization"`
}

// ComparisonProfile is one row of the qualitative comparison table.
type ComparisonProfile struct {
	Throughput        string `json:"throughput"`
	Performance       string `json:"performance"`
	Security          string `json:"security"`
	Complexity        string `json:"complexity"`
	CrossChain        string `json:"cross_chain"`
	CostEfficiency    string `json:"cost_efficiency"`
	EcosystemAdoption string `json:"ecosystem_adoption"`
	BestFor           string `json:"best_for"`
}

// AttackVector rates one attack against a solution family.
type AttackVector struct {
	Likelihood string `json:"likelihood"`
	Impact     string `json:"impact"`
}

// AllMetrics bundles every reference dataset for /api/metrics/all.
type AllMetrics struct {
	Base     map[string]BaseLayerChain   `json:"base"`
	Layer2   map[string]Layer2Solution   `json:"layer2"`
	Sharding map[string]ShardingSolution `json:"sharding"`
}
