package client

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"chainscale/models"
)

// ComparisonView is the atomically rendered result of one calculation
// round: all three scaling approaches at the same input.
type ComparisonView struct {
	Layer2   *models.Layer2Result
	Sharding *models.ShardingResult
	Hybrid   *models.HybridResult
}

// ComparisonRenderer receives either a complete round or a failure
// notification. Partial rounds are never rendered.
type ComparisonRenderer interface {
	RenderComparison(view ComparisonView)
	Notify(message string)
}

// ComparisonCalculator drives the interactive side-by-side view. Two
// sliders feed it; a settled value kicks off layer2, sharding and hybrid
// calculations concurrently. Every round carries a monotonically
// increasing sequence number and only the latest round may render, so a
// slow early response can never overwrite a newer one. Superseded rounds
// are discarded, not cancelled.
type ComparisonCalculator struct {
	api      *APIClient
	renderer ComparisonRenderer

	TxVolumeSlider *Slider
	ShardsSlider   *Slider

	seq atomic.Uint64

	mu        sync.Mutex
	txVolume  float64
	numShards int
}

func NewComparisonCalculator(api *APIClient, renderer ComparisonRenderer, debounce time.Duration) *ComparisonCalculator {
	cc := &ComparisonCalculator{
		api:       api,
		renderer:  renderer,
		txVolume:  1_000_000,
		numShards: 64,
	}

	cc.TxVolumeSlider = NewSlider(1_000, 10_000_000, cc.txVolume, debounce)
	cc.TxVolumeSlider.OnCommit = func(v float64) {
		cc.mu.Lock()
		cc.txVolume = v
		cc.mu.Unlock()
		cc.Recalculate(context.Background())
	}

	cc.ShardsSlider = NewSlider(1, 256, float64(cc.numShards), debounce)
	cc.ShardsSlider.OnCommit = func(v float64) {
		cc.mu.Lock()
		cc.numShards = int(v)
		cc.mu.Unlock()
		cc.Recalculate(context.Background())
	}

	return cc
}

// Recalculate starts a new round. It returns after the round completes,
// renders or is superseded; callers driving it from a slider commit run
// it on the debouncer goroutine already.
func (cc *ComparisonCalculator) Recalculate(ctx context.Context) {
	round := cc.seq.Add(1)

	cc.mu.Lock()
	txVolume := cc.txVolume
	numShards := cc.numShards
	cc.mu.Unlock()

	var (
		wg       sync.WaitGroup
		layer2   *models.Layer2Result
		sharding *models.ShardingResult
		hybrid   *models.HybridResult
		errMu    sync.Mutex
		firstErr error
	)

	fail := func(err error) {
		errMu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		errMu.Unlock()
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		res, err := cc.api.CalculateLayer2(ctx, models.Layer2Request{TxVolume: txVolume})
		if err != nil {
			fail(err)
			return
		}
		layer2 = res
	}()
	go func() {
		defer wg.Done()
		res, err := cc.api.CalculateSharding(ctx, models.ShardingRequest{
			TxVolume:  txVolume,
			NumShards: &numShards,
		})
		if err != nil {
			fail(err)
			return
		}
		sharding = res
	}()
	go func() {
		defer wg.Done()
		res, err := cc.api.CalculateHybrid(ctx, models.HybridRequest{
			TxVolume:  txVolume,
			NumShards: &numShards,
		})
		if err != nil {
			fail(err)
			return
		}
		hybrid = res
	}()
	wg.Wait()

	// A newer round started while this one was in flight. Its results
	// are stale regardless of success; drop them silently.
	if cc.seq.Load() != round {
		return
	}

	if firstErr != nil {
		cc.renderer.Notify("calculation failed: " + firstErr.Error())
		return
	}

	cc.renderer.RenderComparison(ComparisonView{
		Layer2:   layer2,
		Sharding: sharding,
		Hybrid:   hybrid,
	})
}

// Stop cancels pending slider commits.
func (cc *ComparisonCalculator) Stop() {
	cc.TxVolumeSlider.Stop()
	cc.ShardsSlider.Stop()
}
