package core

import "time"

// DefaultTickInterval is how often a running simulation advances.
const DefaultTickInterval = time.Second

// Ticker decides when a running simulation should advance by one
// generation. It is driven by the caller's clock and fires at most once per
// call.
type Ticker struct {
	interval time.Duration
	running  bool
	last     time.Time
}

// NewTicker constructs a paused Ticker firing every interval.
func NewTicker(interval time.Duration) *Ticker {
	t := &Ticker{}
	t.SetInterval(interval)
	return t
}

// SetInterval changes the tick interval. It is safe to call from the main loop.
func (t *Ticker) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	t.interval = interval
}

// Interval returns the configured interval.
func (t *Ticker) Interval() time.Duration { return t.interval }

// SetRunning starts or pauses the ticker.
func (t *Ticker) SetRunning(running bool) { t.running = running }

// Running reports whether the ticker fires.
func (t *Ticker) Running() bool { return t.running }

// Due reports whether a generation should run at now. The first call only
// starts the clock; afterwards it fires once at least interval has passed
// since the last firing. Paused time counts toward the next tick.
func (t *Ticker) Due(now time.Time) bool {
	if t.last.IsZero() {
		t.last = now
	}
	if !t.running {
		return false
	}
	if now.Sub(t.last) >= t.interval {
		t.last = now
		return true
	}
	return false
}
