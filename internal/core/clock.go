package core

import "time"

// Clock turns host tick timestamps into elapsed simulation time.
//
// In fixed mode every call returns the same delta, which makes runs
// reproducible. In wall-clock mode the delta is the time since the previous
// call, capped at the configured maximum.
type Clock struct {
	fixed time.Duration
	max   time.Duration
	last  time.Time
}

// NewClock creates a clock from the runtime config.
func NewClock(cfg RuntimeConfig) *Clock {
	return &Clock{
		fixed: cfg.FixedDelta,
		max:   cfg.MaxDelta,
	}
}

// Fixed reports whether the clock runs with a constant delta.
func (c *Clock) Fixed() bool {
	return c.fixed > 0
}

// Delta returns the elapsed seconds to simulate for a tick observed at now.
// The first wall-clock call returns zero.
func (c *Clock) Delta(now time.Time) float64 {
	if c.fixed > 0 {
		return c.fixed.Seconds()
	}

	if c.last.IsZero() {
		c.last = now
		return 0
	}

	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	if c.max > 0 && d > c.max {
		d = c.max
	}
	return d.Seconds()
}

// Reset forgets the previous timestamp, so the next wall-clock delta starts
// from zero. Used after a pause.
func (c *Clock) Reset() {
	c.last = time.Time{}
}
