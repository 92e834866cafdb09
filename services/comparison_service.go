package services

import (
	"sort"

	"chainscale/config"
	"chainscale/models"
)

// ComparisonService runs every scaling model against one transaction
// volume and ranks the outcomes.
type ComparisonService struct {
	cfg  config.CalculatorConfig
	calc *CalculatorService
}

func NewComparisonService(cfg config.CalculatorConfig, calc *CalculatorService) *ComparisonService {
	return &ComparisonService{cfg: cfg, calc: calc}
}

// CompareAll evaluates base layer, both rollup variants, sharding and the
// hybrid model at their documented defaults. The result carries no
// timestamp so identical requests produce byte-identical responses.
func (cs *ComparisonService) CompareAll(req models.CompareRequest) (*models.CompareResult, error) {
	if req.TxVolume <= 0 {
		return nil, &ParamError{Param: "tx_volume", Reason: "must be a positive number"}
	}

	layer2, err := cs.calc.CalculateLayer2(models.Layer2Request{TxVolume: req.TxVolume})
	if err != nil {
		return nil, err
	}

	sharding, err := cs.calc.CalculateSharding(models.ShardingRequest{TxVolume: req.TxVolume})
	if err != nil {
		return nil, err
	}

	hybrid, err := cs.calc.CalculateHybrid(models.HybridRequest{TxVolume: req.TxVolume})
	if err != nil {
		return nil, err
	}

	baseTime := req.TxVolume / cs.cfg.EthereumBaseTPS
	base := models.BaseLayerResult{
		Name:              "Ethereum Base Layer",
		TPS:               cs.cfg.EthereumBaseTPS,
		ProcessingTimeSec: round2(baseTime),
		ProcessingTimeHrs: round2(baseTime / 3600),
	}

	ranking := rankByTPS([]models.RankEntry{
		{Solution: "Hybrid Model", TotalTPS: hybrid.TotalHybridTPS},
		{Solution: "Sharding", TotalTPS: sharding.TotalTPS},
		{Solution: "ZK Rollup", TotalTPS: layer2.ZK.TPS},
		{Solution: "Optimistic Rollup", TotalTPS: layer2.Optimistic.TPS},
		{Solution: "Ethereum Base Layer", TotalTPS: base.TPS},
	})

	result := &models.CompareResult{
		TransactionVolume: req.TxVolume,
		Solutions: models.CompareSolutions{
			BaseLayer:        base,
			Layer2Optimistic: layer2.Optimistic,
			Layer2ZK:         layer2.ZK,
			Sharding:         *sharding,
			Hybrid:           *hybrid,
		},
		Ranking: ranking,
		Highlights: map[string]string{
			"fastest":            "Hybrid Model",
			"most_secure":        "Layer 2 ZK Rollup",
			"most_decentralized": "Sharding",
			"best_cost":          "Layer 2 ZK Rollup",
			"production_ready":   "Layer 2 Optimistic Rollup",
			"future_potential":   "Hybrid Model",
		},
	}

	return result, nil
}

// rankByTPS orders entries by throughput descending. The sort is stable so
// equal-TPS entries keep their declaration order.
func rankByTPS(entries []models.RankEntry) []models.RankEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalTPS > entries[j].TotalTPS
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
