package field

import "time"

// tickSlack absorbs host frame timing jitter so a 60 Hz host yields
// a steady 30 ticks per second instead of alternating 2- and 3-frame gaps
const tickSlack = time.Millisecond

// Ticker gates host frame callbacks down to a capped tick rate.
// Frames arriving sooner than the interval after the last tick are
// skipped; missed ticks are never queued and late ticks earn no credit.
type Ticker struct {
	interval time.Duration
	running  bool
	started  bool
	last     time.Duration
}

// NewTicker creates a stopped ticker
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{interval: interval}
}

// Start lets Due fire again. The first frame after Start always ticks.
func (t *Ticker) Start() {
	if t.running {
		return
	}
	t.running = true
	t.started = false
}

// Stop cancels the pending tick
func (t *Ticker) Stop() {
	t.running = false
}

// Running reports whether the ticker is started
func (t *Ticker) Running() bool {
	return t.running
}

// Due reports whether a tick should run at now, and records it if so
func (t *Ticker) Due(now time.Duration) bool {
	if !t.running {
		return false
	}
	if !t.started {
		t.Step(now)
		return true
	}
	if now-t.last < t.interval-tickSlack {
		return false
	}
	t.last = now
	return true
}

// Step records a tick at now regardless of the interval
func (t *Ticker) Step(now time.Duration) {
	t.started = true
	t.last = now
}

// Interval returns the minimum time between ticks
func (t *Ticker) Interval() time.Duration {
	return t.interval
}
