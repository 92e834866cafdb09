package services

import (
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"chainscale/config"
	"chainscale/models"
)

// MonitorService generates the simulated live-performance feed. There is
// no real telemetry source behind it: each tick synthesizes a sample by
// jittering the paper's baseline figures. The RNG is injectable so tests
// get a reproducible stream.
type MonitorService struct {
	cfg   *config.Config
	cache *CacheService
	rng   *rand.Rand

	mutex   sync.RWMutex
	samples []models.MonitorSample

	stopChan chan struct{}
	stopOnce sync.Once
}

func NewMonitorService(cfg *config.Config, cache *CacheService) *MonitorService {
	seed := uint64(time.Now().UnixNano())
	return NewMonitorServiceWithSource(cfg, cache, rand.New(rand.NewPCG(seed, seed>>32)))
}

func NewMonitorServiceWithSource(cfg *config.Config, cache *CacheService, rng *rand.Rand) *MonitorService {
	return &MonitorService{
		cfg:      cfg,
		cache:    cache,
		rng:      rng,
		samples:  make([]models.MonitorSample, 0, cfg.Monitor.HistorySize),
		stopChan: make(chan struct{}),
	}
}

func (ms *MonitorService) Start() {
	log.Printf("Starting Performance Monitor (simulated feed, every %s)...", ms.cfg.MonitorIntervalDuration())

	ms.collectSample() // Initial sample

	ticker := time.NewTicker(ms.cfg.MonitorIntervalDuration())

	go func() {
		for {
			select {
			case <-ticker.C:
				ms.collectSample()
			case <-ms.stopChan:
				ticker.Stop()
				log.Println("Performance Monitor stopped")
				return
			}
		}
	}()
}

// Stop halts the sampling loop. Safe to call more than once.
func (ms *MonitorService) Stop() {
	ms.stopOnce.Do(func() {
		close(ms.stopChan)
	})
}

func (ms *MonitorService) collectSample() {
	calc := ms.cfg.Calculator

	sample := models.MonitorSample{
		Timestamp:    time.Now(),
		Layer1TPS:    jitter(ms.rng, calc.EthereumBaseTPS, 0.10),
		Layer2TPS:    jitter(ms.rng, calc.Layer2AvgTPS, 0.15),
		ShardingTPS:  jitter(ms.rng, 64*calc.BaseShardTPS, 0.10),
		HybridTPS:    jitter(ms.rng, 32*calc.BaseShardTPS*50, 0.10),
		AvgLatencyMs: 50 + ms.rng.Float64()*150,
		PendingTxs:   ms.rng.IntN(10000),
		ActiveShards: 56 + ms.rng.IntN(9),
	}

	ms.mutex.Lock()
	ms.samples = append(ms.samples, sample)
	if len(ms.samples) > ms.cfg.Monitor.HistorySize {
		ms.samples = ms.samples[len(ms.samples)-ms.cfg.Monitor.HistorySize:]
	}
	ms.mutex.Unlock()

	if ms.cache != nil {
		ttl := 2 * ms.cfg.MonitorIntervalDuration()
		ms.cache.Set("monitor:current", sample, ttl)
	}
}

// Current returns the most recent sample.
func (ms *MonitorService) Current() (models.MonitorSample, bool) {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()

	if len(ms.samples) == 0 {
		return models.MonitorSample{}, false
	}
	return ms.samples[len(ms.samples)-1], true
}

// History returns a copy of the recent-sample window, oldest first.
func (ms *MonitorService) History() models.MonitorHistory {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()

	samples := make([]models.MonitorSample, len(ms.samples))
	copy(samples, ms.samples)

	return models.MonitorHistory{
		Samples: samples,
		Period:  ms.cfg.MonitorIntervalDuration().String(),
	}
}

// SampleCount reports how many samples have been collected so far,
// capped at the ring size.
func (ms *MonitorService) SampleCount() int {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()
	return len(ms.samples)
}

// jitter returns base perturbed by up to ±spread (fraction of base).
func jitter(rng *rand.Rand, base, spread float64) float64 {
	return base * (1 + (rng.Float64()*2-1)*spread)
}
