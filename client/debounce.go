package client

import (
	"sync"
	"time"
)

// Debouncer collapses bursts of calls into a single execution. Each Call
// resets the quiet window; only the function passed to the last Call
// before the window elapses runs.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

const DefaultDebounceDelay = 500 * time.Millisecond

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer{delay: delay}
}

// Call schedules fn after the quiet window, cancelling any pending one.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels a pending execution, if any. Safe to call repeatedly.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
