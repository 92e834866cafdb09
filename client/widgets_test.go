package client

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSliderInputDisplaysWithoutCommit(t *testing.T) {
	var displayed []float64
	committed := make(chan float64, 10)

	s := NewSlider(0, 100, 50, 30*time.Millisecond)
	s.OnDisplay = func(v float64) { displayed = append(displayed, v) }
	s.OnCommit = func(v float64) { committed <- v }

	s.Input(10)
	s.Input(20)
	s.Input(30)

	require.Equal(t, []float64{10, 20, 30}, displayed)
	require.Equal(t, SliderDragging, s.State())
	require.Equal(t, 30.0, s.Value())

	select {
	case v := <-committed:
		t.Fatalf("input alone committed value %v", v)
	case <-time.After(100 * time.Millisecond):
	}
}

// TestSliderCommitDebounced drags through several commits and expects a
// single debounced commit with the last value.
func TestSliderCommitDebounced(t *testing.T) {
	committed := make(chan float64, 10)

	s := NewSlider(0, 100, 0, 40*time.Millisecond)
	s.OnCommit = func(v float64) { committed <- v }

	s.Commit(25)
	s.Commit(60)
	s.Commit(75)
	require.Equal(t, SliderIdle, s.State())

	select {
	case v := <-committed:
		require.Equal(t, 75.0, v)
	case <-time.After(300 * time.Millisecond):
		t.Fatal("commit never fired")
	}

	select {
	case v := <-committed:
		t.Fatalf("extra commit fired with %v", v)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSliderClampsToRange(t *testing.T) {
	s := NewSlider(10, 90, 50, time.Millisecond)

	s.Input(200)
	require.Equal(t, 90.0, s.Value())
	s.Input(-5)
	require.Equal(t, 10.0, s.Value())
}

func TestTabContainerSingleVisible(t *testing.T) {
	var mu sync.Mutex
	visible := map[string]bool{}
	onShow := func(tab string) { mu.Lock(); visible[tab] = true; mu.Unlock() }
	onHide := func(tab string) { mu.Lock(); visible[tab] = false; mu.Unlock() }

	tc, err := NewTabContainer([]string{"overview", "layer2", "sharding"}, onShow, onHide)
	require.NoError(t, err)
	require.Equal(t, "overview", tc.Active())
	require.True(t, visible["overview"])

	tc.Select("sharding")
	require.Equal(t, "sharding", tc.Active())
	require.False(t, visible["overview"])
	require.True(t, visible["sharding"])

	// Unknown and repeated selections change nothing.
	tc.Select("nonexistent")
	require.Equal(t, "sharding", tc.Active())
	tc.Select("sharding")
	require.Equal(t, "sharding", tc.Active())

	count := 0
	for _, v := range visible {
		if v {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestTabContainerRequiresTabs(t *testing.T) {
	_, err := NewTabContainer(nil, nil, nil)
	require.Error(t, err)
}

func TestModalCloseIdempotent(t *testing.T) {
	opens, closes := 0, 0
	m := NewModal(func() { opens++ }, func() { closes++ })

	require.False(t, m.IsOpen())

	m.Open()
	m.Open()
	require.True(t, m.IsOpen())
	require.Equal(t, 1, opens)

	// Close button, outside click and Escape all land here.
	m.Close()
	m.Close()
	m.Close()
	require.False(t, m.IsOpen())
	require.Equal(t, 1, closes)
}
