package client

import (
	"fmt"
	"sync"
	"time"
)

// Widget state machines for the dashboard controls. They hold no DOM or
// rendering state themselves; callbacks fire on transitions and the host
// surface draws whatever it wants.

// SliderState tells whether the user is mid-drag.
type SliderState int

const (
	SliderIdle SliderState = iota
	SliderDragging
)

// Slider separates the cheap path (live value display while dragging)
// from the expensive path (committing a value, which usually triggers a
// network round trip). Input never reaches OnCommit directly; commits
// route through the debouncer so a drag produces one request, not one
// per pixel.
type Slider struct {
	Min, Max  float64
	OnDisplay func(value float64)
	OnCommit  func(value float64)

	debouncer *Debouncer

	mu    sync.Mutex
	value float64
	state SliderState
}

func NewSlider(min, max, initial float64, debounce time.Duration) *Slider {
	s := &Slider{
		Min:       min,
		Max:       max,
		debouncer: NewDebouncer(debounce),
		value:     clamp(initial, min, max),
	}
	return s
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Input updates the displayed value immediately. No commit happens.
func (s *Slider) Input(value float64) {
	s.mu.Lock()
	s.value = clamp(value, s.Min, s.Max)
	s.state = SliderDragging
	v := s.value
	display := s.OnDisplay
	s.mu.Unlock()

	if display != nil {
		display(v)
	}
}

// Commit ends the drag and schedules OnCommit through the debouncer.
// Repeated commits inside the quiet window collapse to the last value.
func (s *Slider) Commit(value float64) {
	s.mu.Lock()
	s.value = clamp(value, s.Min, s.Max)
	s.state = SliderIdle
	v := s.value
	commit := s.OnCommit
	s.mu.Unlock()

	if commit == nil {
		return
	}
	s.debouncer.Call(func() {
		commit(v)
	})
}

func (s *Slider) Value() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

func (s *Slider) State() SliderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Stop cancels any pending commit.
func (s *Slider) Stop() {
	s.debouncer.Stop()
}

// TabContainer shows exactly one of a fixed set of panels. The first
// declared tab is visible initially.
type TabContainer struct {
	mu     sync.Mutex
	tabs   []string
	active string
	onShow func(tab string)
	onHide func(tab string)
}

func NewTabContainer(tabs []string, onShow, onHide func(tab string)) (*TabContainer, error) {
	if len(tabs) == 0 {
		return nil, fmt.Errorf("tab container needs at least one tab")
	}
	tc := &TabContainer{
		tabs:   append([]string(nil), tabs...),
		active: tabs[0],
		onShow: onShow,
		onHide: onHide,
	}
	if onShow != nil {
		onShow(tc.active)
	}
	return tc, nil
}

// Select makes the named tab the single visible one. Selecting the
// already-active tab or an unknown name is a no-op.
func (tc *TabContainer) Select(name string) {
	tc.mu.Lock()
	known := false
	for _, t := range tc.tabs {
		if t == name {
			known = true
			break
		}
	}
	if !known || tc.active == name {
		tc.mu.Unlock()
		return
	}
	prev := tc.active
	tc.active = name
	onShow, onHide := tc.onShow, tc.onHide
	tc.mu.Unlock()

	if onHide != nil {
		onHide(prev)
	}
	if onShow != nil {
		onShow(name)
	}
}

func (tc *TabContainer) Active() string {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.active
}

func (tc *TabContainer) Tabs() []string {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return append([]string(nil), tc.tabs...)
}

// Modal is a simple open/close surface. The close button, a click
// outside the modal, and the Escape key all map to Close, which is
// idempotent.
type Modal struct {
	mu      sync.Mutex
	open    bool
	onOpen  func()
	onClose func()
}

func NewModal(onOpen, onClose func()) *Modal {
	return &Modal{onOpen: onOpen, onClose: onClose}
}

func (m *Modal) Open() {
	m.mu.Lock()
	if m.open {
		m.mu.Unlock()
		return
	}
	m.open = true
	cb := m.onOpen
	m.mu.Unlock()

	if cb != nil {
		cb()
	}
}

func (m *Modal) Close() {
	m.mu.Lock()
	if !m.open {
		m.mu.Unlock()
		return
	}
	m.open = false
	cb := m.onClose
	m.mu.Unlock()

	if cb != nil {
		cb()
	}
}

func (m *Modal) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}
