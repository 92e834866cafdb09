package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetricsDatasetValid(t *testing.T) {
	ms := NewMetricsService()
	require.NoError(t, ms.Validate())
}

func TestMetricsDatasetContents(t *testing.T) {
	ms := NewMetricsService()

	base := ms.BaseLayer()
	require.Len(t, base, 3)
	require.Equal(t, 15.0, base["ethereum"].TPS)
	require.Equal(t, 7.0, base["bitcoin"].TPS)
	require.Equal(t, 24000.0, base["visa"].TPS)
	require.Equal(t, 0, base["visa"].DecentralizationScore)

	layer2 := ms.Layer2Solutions()
	require.Len(t, layer2, 6)
	require.Equal(t, "ZK Rollup", layer2["zksync"].Type)
	require.Equal(t, "Bitcoin", layer2["lightning_network"].ParentChain)

	sharding := ms.ShardingSolutions()
	require.Len(t, sharding, 4)
	require.Equal(t, 64, sharding["ethereum_2"].NumShards)
	require.Equal(t, 6400.0, sharding["ethereum_2"].TotalTPS)
	// NEAR reshards dynamically, so no fixed shard count.
	require.Equal(t, 0, sharding["near"].NumShards)

	trilemma := ms.TrilemmaData()
	require.Len(t, trilemma, 8)
	require.Equal(t, 95, trilemma["hybrid_model"].Scalability)

	require.Len(t, ms.ComparisonSummary(), 3)

	security := ms.SecurityVectors()
	require.Len(t, security, 4)
	require.Contains(t, security["sharding"], "Single Shard Takeover")
}

func TestAllSolutionsBundlesEveryFamily(t *testing.T) {
	ms := NewMetricsService()

	all := ms.AllSolutions()
	require.Len(t, all.Base, 3)
	require.Len(t, all.Layer2, 6)
	require.Len(t, all.Sharding, 4)
}
