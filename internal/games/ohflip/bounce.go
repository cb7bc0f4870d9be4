package ohflip

import (
	"math"

	"github.com/vovakirdan/ohflip/internal/config"
)

// Outcome classifies a trampoline contact.
type Outcome int

const (
	OutcomeMiss    Outcome = iota // Safe landing without a completed flip
	OutcomeFail                   // Landed too far from upright
	OutcomeGood                   // Flip landed
	OutcomePerfect                // Flip landed nearly upright
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "miss"
	case OutcomeFail:
		return "fail"
	case OutcomeGood:
		return "good"
	case OutcomePerfect:
		return "perfect"
	default:
		return "unknown"
	}
}

// Classify decides the outcome of a contact from the landing angle and the
// rotation accumulated during the cycle. Fail takes precedence over every
// other outcome.
func Classify(angle, rotation float64, cfg config.BounceConfig) Outcome {
	if math.Abs(angle) > cfg.FailAngle {
		return OutcomeFail
	}
	if rotation < cfg.FlipThreshold {
		return OutcomeMiss
	}
	if math.Abs(angle) < cfg.PerfectAngle {
		return OutcomePerfect
	}
	return OutcomeGood
}

// BouncePower is the launch velocity applied at each contact.
type BouncePower struct {
	Value float64
	cfg   config.BounceConfig
}

// NewBouncePower returns power at its floor.
func NewBouncePower(cfg config.BounceConfig) BouncePower {
	return BouncePower{Value: cfg.MinVelocity, cfg: cfg}
}

// Delta returns how much a landed flip adds to the power.
// The flip multiplier grows by FlipMultPerFive for every five flips.
func (b BouncePower) Delta(flips int, perfect bool) float64 {
	inc := b.cfg.HitIncrease
	if perfect {
		inc *= b.cfg.PerfectMult
	}
	flipMult := 1.0 + float64(flips)/5.0*b.cfg.FlipMultPerFive
	return inc * flipMult
}

// Reward raises the power after a landed flip.
func (b *BouncePower) Reward(flips int, perfect bool) {
	b.Value += b.Delta(flips, perfect)
}

// Penalize lowers the power after a miss, never below the floor.
func (b *BouncePower) Penalize() {
	b.Value = math.Max(b.Value-b.cfg.MissDecrease, b.cfg.MinVelocity)
}

// Reset returns the power to its floor.
func (b *BouncePower) Reset() {
	b.Value = b.cfg.MinVelocity
}
