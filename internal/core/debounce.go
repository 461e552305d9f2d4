package core

import "time"

// DefaultResizeDelay is how long resize events must stop before the window snaps.
const DefaultResizeDelay = 100 * time.Millisecond

// Debouncer coalesces bursts of events into a single settle notification.
// It is either idle or pending; every Trigger while pending pushes the
// deadline out again.
type Debouncer struct {
	delay   uint64
	last    uint64
	pending bool
}

// NewDebouncer constructs an idle debouncer.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultResizeDelay
	}
	return &Debouncer{delay: uint64(delay.Milliseconds())}
}

// Trigger enters the pending state and records the event time.
func (d *Debouncer) Trigger(now uint64) {
	d.pending = true
	d.last = now
}

// Cancel returns to idle without settling.
func (d *Debouncer) Cancel() { d.pending = false }

// Pending reports whether a settle is outstanding.
func (d *Debouncer) Pending() bool { return d.pending }

// Settle reports true exactly once per pending burst, after the delay has
// elapsed since the last Trigger.
func (d *Debouncer) Settle(now uint64) bool {
	if !d.pending || now < d.last || now-d.last < d.delay {
		return false
	}
	d.pending = false
	d.last = now
	return true
}
