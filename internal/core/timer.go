package core

import "time"

// DefaultPeriod is the time between generations while playing.
const DefaultPeriod = 150 * time.Millisecond

// Clock reports monotonic milliseconds.
type Clock interface {
	NowMS() uint64
}

// MonotonicClock counts milliseconds since it was created.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// NowMS returns the milliseconds elapsed since the clock started.
func (c *MonotonicClock) NowMS() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}

// PeriodGate lets one simulation step through per elapsed period. Missed
// periods are dropped rather than accumulated, so a slow frame never causes
// a burst of catch-up steps.
type PeriodGate struct {
	period uint64
	last   uint64
}

// NewPeriodGate constructs a gate for the given period starting at now.
func NewPeriodGate(period time.Duration, now uint64) *PeriodGate {
	g := &PeriodGate{}
	g.SetPeriod(period)
	g.last = now
	return g
}

// SetPeriod changes the gate period. Non-positive values fall back to DefaultPeriod.
func (g *PeriodGate) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = DefaultPeriod
	}
	ms := uint64(period.Milliseconds())
	if ms == 0 {
		ms = 1
	}
	g.period = ms
}

// Period returns the configured period.
func (g *PeriodGate) Period() time.Duration {
	return time.Duration(g.period) * time.Millisecond
}

// Reset restarts the current period at now.
func (g *PeriodGate) Reset(now uint64) { g.last = now }

// Ready reports whether a full period has elapsed, restarting the period if so.
func (g *PeriodGate) Ready(now uint64) bool {
	if now < g.last || now-g.last < g.period {
		return false
	}
	g.last = now
	return true
}

// Progress returns the elapsed fraction of the current period in [0, 1].
func (g *PeriodGate) Progress(now uint64) float64 {
	if now <= g.last {
		return 0
	}
	p := float64(now-g.last) / float64(g.period)
	if p > 1 {
		return 1
	}
	return p
}
