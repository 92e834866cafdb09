package client

import (
	"fmt"
	"sync"
)

// ChartKind tags the visualization a ChartSpec describes.
type ChartKind string

const (
	ChartGroupedBar    ChartKind = "grouped_bar"
	ChartLine          ChartKind = "line"
	ChartRadar         ChartKind = "radar"
	ChartHorizontalBar ChartKind = "horizontal_bar"
	ChartStackedArea   ChartKind = "stacked_area"
	ChartDoughnut      ChartKind = "doughnut"
	ChartGauge         ChartKind = "gauge"
)

// ChartSeries is one named dataset within a chart.
type ChartSeries struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
	Color  string    `json:"color,omitempty"`
}

// ChartSpec is a render-ready chart view model. It carries everything a
// drawing surface needs and nothing about how drawing happens.
type ChartSpec struct {
	Kind    ChartKind     `json:"kind"`
	Title   string        `json:"title"`
	Labels  []string      `json:"labels"`
	Series  []ChartSeries `json:"series"`
	Stacked bool          `json:"stacked,omitempty"`
	// Max applies to gauge charts only.
	Max float64 `json:"max,omitempty"`
}

// Chart is a live chart bound to a surface. Dispose releases it;
// UpdateInPlace swaps data without a rebuild, for high-frequency
// refresh paths like the live monitor.
type Chart struct {
	Spec ChartSpec

	mu       sync.Mutex
	disposed bool
}

func (c *Chart) UpdateInPlace(labels []string, series []ChartSeries) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return fmt.Errorf("chart %q already disposed", c.Spec.Title)
	}
	c.Spec.Labels = labels
	c.Spec.Series = series
	return nil
}

func (c *Chart) Dispose() {
	c.mu.Lock()
	c.disposed = true
	c.mu.Unlock()
}

func (c *Chart) Disposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

// Palette colors one series per solution family. Keys missing from the
// configured palette fall back to a neutral grey.
type Palette map[string]string

func (p Palette) Color(key string) string {
	if c, ok := p[key]; ok {
		return c
	}
	return "#9e9e9e"
}

// NewChart builds a chart of the given kind. Validation is per kind:
// a gauge takes exactly one series with one value, a radar needs at
// least three axes.
func NewChart(kind ChartKind, title string, labels []string, series []ChartSeries) (*Chart, error) {
	switch kind {
	case ChartGroupedBar, ChartLine, ChartHorizontalBar:
		if len(series) == 0 {
			return nil, fmt.Errorf("%s chart %q needs at least one series", kind, title)
		}
	case ChartStackedArea:
		if len(series) < 2 {
			return nil, fmt.Errorf("stacked area chart %q needs at least two series", title)
		}
	case ChartRadar:
		if len(labels) < 3 {
			return nil, fmt.Errorf("radar chart %q needs at least three axes", title)
		}
	case ChartDoughnut:
		if len(series) != 1 {
			return nil, fmt.Errorf("doughnut chart %q needs exactly one series", title)
		}
	case ChartGauge:
		if len(series) != 1 || len(series[0].Values) != 1 {
			return nil, fmt.Errorf("gauge chart %q needs exactly one value", title)
		}
	default:
		return nil, fmt.Errorf("unknown chart kind %q", kind)
	}

	for _, s := range series {
		if kind != ChartGauge && len(s.Values) != len(labels) {
			return nil, fmt.Errorf("chart %q series %q has %d values for %d labels",
				title, s.Label, len(s.Values), len(labels))
		}
	}

	spec := ChartSpec{
		Kind:    kind,
		Title:   title,
		Labels:  labels,
		Series:  series,
		Stacked: kind == ChartStackedArea,
	}
	if kind == ChartGauge {
		spec.Max = 100
	}
	return &Chart{Spec: spec}, nil
}

// Registry tracks the live chart per drawing surface. It is injected
// into whatever builds charts rather than being shared module state, so
// two dashboard instances never fight over the same bookkeeping.
// Binding a chart to a surface disposes whatever was there before, so a
// surface holds at most one live chart.
type Registry struct {
	mu     sync.Mutex
	charts map[string]*Chart
}

func NewRegistry() *Registry {
	return &Registry{charts: make(map[string]*Chart)}
}

// Bind installs chart on the named surface, disposing any previous one.
func (r *Registry) Bind(surface string, chart *Chart) {
	r.mu.Lock()
	prev := r.charts[surface]
	r.charts[surface] = chart
	r.mu.Unlock()

	if prev != nil {
		prev.Dispose()
	}
}

// Get returns the live chart on a surface, if any.
func (r *Registry) Get(surface string) (*Chart, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.charts[surface]
	return c, ok
}

// Release disposes and forgets the chart on a surface.
func (r *Registry) Release(surface string) {
	r.mu.Lock()
	c := r.charts[surface]
	delete(r.charts, surface)
	r.mu.Unlock()

	if c != nil {
		c.Dispose()
	}
}

// Len reports how many surfaces hold a live chart.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.charts)
}
