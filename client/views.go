package client

import (
	"sort"

	"chainscale/models"
)

// Chart builders for the dashboard panels. Each takes API data and a
// palette and returns a render-ready chart. Map-keyed datasets are
// sorted by key so a rebuild from identical data yields an identical
// chart.

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BuildThroughputChart compares base-layer and Layer 2 TPS on a grouped
// bar chart.
func BuildThroughputChart(base map[string]models.BaseLayerChain, layer2 map[string]models.Layer2Solution, p Palette) (*Chart, error) {
	labels := make([]string, 0, len(base)+len(layer2))
	baseTPS := make([]float64, 0, len(base)+len(layer2))
	l2TPS := make([]float64, 0, len(base)+len(layer2))

	for _, k := range sortedKeys(base) {
		labels = append(labels, base[k].Name)
		baseTPS = append(baseTPS, base[k].TPS)
		l2TPS = append(l2TPS, 0)
	}
	for _, k := range sortedKeys(layer2) {
		labels = append(labels, layer2[k].Name)
		baseTPS = append(baseTPS, 0)
		l2TPS = append(l2TPS, layer2[k].TPS)
	}

	return NewChart(ChartGroupedBar, "Throughput (TPS)", labels, []ChartSeries{
		{Label: "Base layer", Values: baseTPS, Color: p.Color("layer1")},
		{Label: "Layer 2", Values: l2TPS, Color: p.Color("layer2")},
	})
}

// BuildTrilemmaRadar plots every solution family on the three trilemma
// axes.
func BuildTrilemmaRadar(data map[string]models.TrilemmaScores, p Palette) (*Chart, error) {
	axes := []string{"Scalability", "Security", "Decentralization"}

	series := make([]ChartSeries, 0, len(data))
	for _, k := range sortedKeys(data) {
		s := data[k]
		series = append(series, ChartSeries{
			Label:  k,
			Values: []float64{float64(s.Scalability), float64(s.Security), float64(s.Decentralization)},
			Color:  p.Color(k),
		})
	}
	return NewChart(ChartRadar, "Scalability Trilemma", axes, series)
}

// BuildRankingChart shows the comparison ranking as a horizontal bar
// chart, best solution first.
func BuildRankingChart(result *models.CompareResult, p Palette) (*Chart, error) {
	labels := make([]string, 0, len(result.Ranking))
	values := make([]float64, 0, len(result.Ranking))
	for _, entry := range result.Ranking {
		labels = append(labels, entry.Solution)
		values = append(values, entry.TotalTPS)
	}
	return NewChart(ChartHorizontalBar, "Throughput Ranking", labels, []ChartSeries{
		{Label: "Total TPS", Values: values, Color: p.Color("ranking")},
	})
}

// BuildCostChart contrasts L1 and L2 settlement cost for both rollup
// variants on a doughnut.
func BuildCostChart(result *models.Layer2Result, p Palette) (*Chart, error) {
	return NewChart(ChartDoughnut, "Settlement Cost (gwei)",
		[]string{"Optimistic rollup", "ZK rollup", "Direct L1"},
		[]ChartSeries{{
			Label: "Cost",
			Values: []float64{
				result.Optimistic.L2CostGwei,
				result.ZK.L2CostGwei,
				result.Optimistic.L1CostGwei,
			},
			Color: p.Color("cost"),
		}})
}

// BuildMonitorChart turns the sample history into a multi-series line
// chart, one series per scaling approach.
func BuildMonitorChart(history *models.MonitorHistory, p Palette) (*Chart, error) {
	n := len(history.Samples)
	labels := make([]string, n)
	l1 := make([]float64, n)
	l2 := make([]float64, n)
	sh := make([]float64, n)
	hy := make([]float64, n)
	for i, s := range history.Samples {
		labels[i] = s.Timestamp.Format("15:04:05")
		l1[i] = s.Layer1TPS
		l2[i] = s.Layer2TPS
		sh[i] = s.ShardingTPS
		hy[i] = s.HybridTPS
	}

	return NewChart(ChartLine, "Live Throughput", labels, []ChartSeries{
		{Label: "Layer 1", Values: l1, Color: p.Color("layer1")},
		{Label: "Layer 2", Values: l2, Color: p.Color("layer2")},
		{Label: "Sharding", Values: sh, Color: p.Color("sharding")},
		{Label: "Hybrid", Values: hy, Color: p.Color("hybrid")},
	})
}

// BuildLatencyGauge shows the latest average latency on a 0-100 scale
// gauge, clamped.
func BuildLatencyGauge(sample models.MonitorSample, p Palette) (*Chart, error) {
	v := sample.AvgLatencyMs / 10 // 0-1000ms mapped onto the dial
	if v > 100 {
		v = 100
	}
	return NewChart(ChartGauge, "Avg Latency", []string{"latency"}, []ChartSeries{
		{Label: "ms", Values: []float64{v}, Color: p.Color("latency")},
	})
}

// BuildBalanceChart stacks the trilemma dimensions of a single custom
// profile so the relative weighting is visible at a glance.
func BuildBalanceChart(result *models.TrilemmaResult, p Palette) (*Chart, error) {
	labels := []string{"Profile"}
	series := make([]ChartSeries, 0, len(result.IndividualScores))
	for _, k := range sortedKeys(result.IndividualScores) {
		series = append(series, ChartSeries{
			Label:  k,
			Values: []float64{result.IndividualScores[k]},
			Color:  p.Color(k),
		})
	}
	return NewChart(ChartStackedArea, "Trilemma Balance", labels, series)
}
