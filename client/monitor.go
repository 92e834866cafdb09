package client

import (
	"context"
	"sync"
	"time"

	"chainscale/models"
)

// SampleRenderer draws one live sample into the monitor panel.
type SampleRenderer interface {
	RenderSample(sample models.MonitorSample)
	Notify(message string)
}

// PerformanceMonitor polls /api/monitor/current on a fixed interval and
// pushes each sample through the renderer. A failed poll notifies and
// the loop keeps going; the next tick may succeed.
type PerformanceMonitor struct {
	api      *APIClient
	renderer SampleRenderer
	interval time.Duration

	started  bool
	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

const DefaultPollInterval = 2 * time.Second

func NewPerformanceMonitor(api *APIClient, renderer SampleRenderer, interval time.Duration) *PerformanceMonitor {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &PerformanceMonitor{
		api:      api,
		renderer: renderer,
		interval: interval,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (pm *PerformanceMonitor) Start() {
	if pm.started {
		return
	}
	pm.started = true
	go pm.run()
}

func (pm *PerformanceMonitor) run() {
	defer close(pm.done)

	ticker := time.NewTicker(pm.interval)
	defer ticker.Stop()

	pm.poll()
	for {
		select {
		case <-ticker.C:
			pm.poll()
		case <-pm.stopChan:
			return
		}
	}
}

func (pm *PerformanceMonitor) poll() {
	ctx, cancel := context.WithTimeout(context.Background(), pm.interval)
	defer cancel()

	sample, err := pm.api.CurrentSample(ctx)
	if err != nil {
		pm.renderer.Notify("monitor poll failed: " + err.Error())
		return
	}
	pm.renderer.RenderSample(*sample)
}

// Stop halts the polling loop and waits for it to exit. Safe to call
// repeatedly.
func (pm *PerformanceMonitor) Stop() {
	pm.stopOnce.Do(func() {
		close(pm.stopChan)
	})
	if pm.started {
		<-pm.done
	}
}
