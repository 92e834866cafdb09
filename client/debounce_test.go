package client

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestDebounceCollapsesBurst fires five calls inside the quiet window
// and expects exactly one execution carrying the final value.
func TestDebounceCollapsesBurst(t *testing.T) {
	d := NewDebouncer(100 * time.Millisecond)

	var mu sync.Mutex
	var got []int

	for i := 1; i <= 5; i++ {
		v := i * 10
		d.Call(func() {
			mu.Lock()
			got = append(got, v)
			mu.Unlock()
		})
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(250 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []int{50}, got)
}

func TestDebounceSeparateWindows(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var mu sync.Mutex
	count := 0
	fn := func() {
		mu.Lock()
		count++
		mu.Unlock()
	}

	d.Call(fn)
	time.Sleep(120 * time.Millisecond)
	d.Call(fn)
	time.Sleep(120 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, 2, count)
}

func TestDebounceStopCancelsPending(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	fired := make(chan struct{}, 1)
	d.Call(func() { fired <- struct{}{} })
	d.Stop()
	d.Stop()

	select {
	case <-fired:
		t.Fatal("stopped debouncer still fired")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestDebounceZeroDelayUsesDefault(t *testing.T) {
	d := NewDebouncer(0)
	require.Equal(t, DefaultDebounceDelay, d.delay)
}
