package ohflip

import "math/rand"

// Blink schedules the idle eye blink.
type Blink struct {
	Delay float64 // seconds until the next blink
	Time  float64 // seconds the eye stays closed
}

func newBlink() Blink {
	return Blink{Delay: 3.0, Time: 0.5}
}

// Advance moves the schedule forward and rolls a new blink when due.
func (b *Blink) Advance(dt float64, rng *rand.Rand) {
	b.Delay -= dt
	b.Time -= dt
	if b.Delay <= 0 {
		b.Delay = 1 + rng.Float64()*3
		b.Time = 0.1 + rng.Float64()*0.1
	}
}

// Closed reports whether the eye is shut.
func (b Blink) Closed() bool {
	return b.Time > 0
}
