package core

import (
	"math"
	"time"
)

// MaxStep is the largest simulation step in seconds. Longer gaps (a stalled
// terminal, a suspended SSH session) are treated as this much time.
const MaxStep = 0.2

// ClampStep sanitises a step duration to [0, MaxStep]. NaN maps to 0.
func ClampStep(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if dt > MaxStep {
		return MaxStep
	}
	return dt
}

// Clock turns monotonic timestamps into clamped step durations.
// The first tick after creation or Reset yields zero.
type Clock struct {
	last    time.Time
	started bool
}

// Tick records now and returns the seconds elapsed since the previous tick.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampStep(dt)
}

// Reset forgets the previous timestamp.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}
