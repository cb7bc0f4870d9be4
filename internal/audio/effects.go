// Package audio plays short synthesized effects for game events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/ohflip/internal/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// sweep is an oscillator whose frequency glides linearly from start to end
type sweep struct {
	start, end float64
	phase      float64
	duration   int
	position   int
	wave       WaveType
	rate       beep.SampleRate
}

// NewSweep creates an oscillator gliding from start to end Hz.
// A constant tone has start == end.
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		start:    start,
		end:      end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.start + (o.end-o.start)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// envelope fades a stream in and out
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope applies a linear attack and release over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release && e.release > 0 {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(start, end float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(start, end, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// EffectFor returns the sound for a game event, or nil when the event is
// silent.
func EffectFor(e core.Event, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer

	switch e.Kind {
	case core.EventBounce:
		s = note(110, 55, 90*time.Millisecond, WaveSine, rate)
	case core.EventFlip:
		// Each extra flip in the same bounce climbs a fifth
		base := 330 * math.Pow(1.5, float64(max(e.Value-1, 0)))
		s = note(base, base*1.5, 70*time.Millisecond, WaveSine, rate)
	case core.EventGood:
		s = beep.Seq(
			note(659.25, 659.25, 60*time.Millisecond, WaveSquare, rate),
			note(880, 880, 90*time.Millisecond, WaveSquare, rate),
		)
	case core.EventPerfect:
		s = beep.Seq(
			note(987.77, 987.77, 70*time.Millisecond, WaveSquare, rate),
			note(1318.51, 1318.51, 160*time.Millisecond, WaveSquare, rate),
		)
	case core.EventFail:
		s = note(330, 70, 400*time.Millisecond, WaveSaw, rate)
	case core.EventGoal:
		s = beep.Seq(
			note(523.25, 523.25, 80*time.Millisecond, WaveSquare, rate),
			note(659.25, 659.25, 80*time.Millisecond, WaveSquare, rate),
			note(783.99, 783.99, 80*time.Millisecond, WaveSquare, rate),
			note(1046.5, 1046.5, 200*time.Millisecond, WaveSquare, rate),
		)
	default:
		return nil
	}

	return newVolume(s, volume)
}
