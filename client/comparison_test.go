package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chainscale/models"
	"chainscale/services"
)

type recordingRenderer struct {
	mu    sync.Mutex
	views []ComparisonView
	notes []string
}

func (r *recordingRenderer) RenderComparison(view ComparisonView) {
	r.mu.Lock()
	r.views = append(r.views, view)
	r.mu.Unlock()
}

func (r *recordingRenderer) Notify(message string) {
	r.mu.Lock()
	r.notes = append(r.notes, message)
	r.mu.Unlock()
}

func (r *recordingRenderer) snapshot() ([]ComparisonView, []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ComparisonView(nil), r.views...), append([]string(nil), r.notes...)
}

func TestRecalculateRendersAtomically(t *testing.T) {
	server := newBackend(t)
	renderer := &recordingRenderer{}
	cc := NewComparisonCalculator(NewAPIClient(server.URL), renderer, time.Millisecond)

	cc.Recalculate(context.Background())

	views, notes := renderer.snapshot()
	require.Empty(t, notes)
	require.Len(t, views, 1)

	// All three results present together, at the same inputs.
	view := views[0]
	require.NotNil(t, view.Layer2)
	require.NotNil(t, view.Sharding)
	require.NotNil(t, view.Hybrid)
	require.Equal(t, 6400.0, view.Sharding.TotalTPS)
	require.Equal(t, 64, view.Sharding.NumShards)
}

// TestRecalculateFailureAbortsRound kills one of the three endpoints and
// expects a notification instead of a partial render.
func TestRecalculateFailureAbortsRound(t *testing.T) {
	calc := services.NewCalculatorService(testCalcConfig())

	mux := http.NewServeMux()
	mux.HandleFunc("/api/calculate/layer2", func(w http.ResponseWriter, r *http.Request) {
		var req models.Layer2Request
		_ = json.NewDecoder(r.Body).Decode(&req)
		result, _ := calc.CalculateLayer2(req)
		_ = json.NewEncoder(w).Encode(models.OK(result))
	})
	mux.HandleFunc("/api/calculate/sharding", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(models.Fail("internal server error"))
	})
	mux.HandleFunc("/api/calculate/hybrid", func(w http.ResponseWriter, r *http.Request) {
		var req models.HybridRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		result, _ := calc.CalculateHybrid(req)
		_ = json.NewEncoder(w).Encode(models.OK(result))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	renderer := &recordingRenderer{}
	cc := NewComparisonCalculator(NewAPIClient(server.URL), renderer, time.Millisecond)

	cc.Recalculate(context.Background())

	views, notes := renderer.snapshot()
	require.Empty(t, views)
	require.Len(t, notes, 1)
	require.Contains(t, notes[0], "calculation failed")
}

// TestStaleRoundDiscarded holds the first round's responses until a
// second round completes, then releases them. Only the second round may
// render.
func TestStaleRoundDiscarded(t *testing.T) {
	calc := services.NewCalculatorService(testCalcConfig())

	var mu sync.Mutex
	gate := make(chan struct{})
	firstRound := true

	handler := func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hold := firstRound
		mu.Unlock()
		if hold {
			<-gate
		}

		switch r.URL.Path {
		case "/api/calculate/layer2":
			var req models.Layer2Request
			_ = json.NewDecoder(r.Body).Decode(&req)
			result, _ := calc.CalculateLayer2(req)
			_ = json.NewEncoder(w).Encode(models.OK(result))
		case "/api/calculate/sharding":
			var req models.ShardingRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			result, _ := calc.CalculateSharding(req)
			_ = json.NewEncoder(w).Encode(models.OK(result))
		case "/api/calculate/hybrid":
			var req models.HybridRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			result, _ := calc.CalculateHybrid(req)
			_ = json.NewEncoder(w).Encode(models.OK(result))
		}
	}
	server := httptest.NewServer(http.HandlerFunc(handler))
	defer server.Close()

	renderer := &recordingRenderer{}
	cc := NewComparisonCalculator(NewAPIClient(server.URL), renderer, time.Millisecond)

	// Round 1: all three requests park on the gate.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		cc.mu.Lock()
		cc.txVolume = 100_000
		cc.mu.Unlock()
		cc.Recalculate(context.Background())
	}()

	// Give round 1 time to get in flight, then run round 2 unblocked.
	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	firstRound = false
	mu.Unlock()

	cc.mu.Lock()
	cc.txVolume = 2_000_000
	cc.mu.Unlock()
	cc.Recalculate(context.Background())

	// Release the parked round 1 responses and let it finish.
	close(gate)
	wg.Wait()

	views, notes := renderer.snapshot()
	require.Empty(t, notes)
	require.Len(t, views, 1, "superseded round must not render")
	require.Equal(t, 312.5, views[0].Sharding.ProcessingTimeSec) // 2e6 / 6400
}

func TestSliderCommitTriggersRecalculate(t *testing.T) {
	server := newBackend(t)
	renderer := &recordingRenderer{}
	cc := NewComparisonCalculator(NewAPIClient(server.URL), renderer, 20*time.Millisecond)
	defer cc.Stop()

	cc.ShardsSlider.Commit(128)

	require.Eventually(t, func() bool {
		views, _ := renderer.snapshot()
		return len(views) == 1 && views[0].Sharding.NumShards == 128
	}, 2*time.Second, 10*time.Millisecond)
}
