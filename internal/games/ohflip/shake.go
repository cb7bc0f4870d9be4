package ohflip

import (
	"math"

	"github.com/vovakirdan/ohflip/internal/config"
)

// Shake is the decaying oscillation of the trampoline surface.
type Shake struct {
	Amount float64
	Phase  float64 // degrees

	cfg config.ShakeConfig
}

// NewShake returns a still trampoline.
func NewShake(cfg config.ShakeConfig) Shake {
	return Shake{cfg: cfg}
}

// Hit starts a new oscillation.
func (s *Shake) Hit() {
	s.Amount = s.cfg.Amplitude
	s.Phase = 0
}

// Advance decays the amplitude and moves the phase.
func (s *Shake) Advance(dt float64) {
	s.Amount *= s.cfg.Decay
	s.Phase = math.Mod(s.Phase+s.cfg.PhaseSpeed*dt, 360)
}

// Offset returns the vertical displacement of the surface.
func (s Shake) Offset() float64 {
	return math.Sin(s.Phase*math.Pi/180) * s.Amount
}
