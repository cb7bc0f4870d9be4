package ohflip

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/ohflip/internal/config"
	"github.com/vovakirdan/ohflip/internal/core"
)

// Player holds the character's motion and the per-bounce flip bookkeeping.
// Y is height above the trampoline; X is only used by the fail-out arc.
type Player struct {
	X, Y     float64
	Vel      float64 // vertical, positive = up
	Angle    float64 // degrees, always in (-180, 180]
	AngleVel float64 // degrees per second

	Rotation    float64 // accumulated rotation this bounce cycle
	Flips       int     // flips counted this cycle
	FlipsLanded int     // flips landed at the last contact of this cycle
	TotalFlips  int     // flips landed this run
	PeakY       float64 // highest point this cycle

	Upright bool // easing back to upright after a landing
	Fail    FailOut
}

// FailOut is the scripted fall off the trampoline.
type FailOut struct {
	Active bool
	Time   float64 // seconds remaining
	Left   bool
}

func (f FailOut) sign() float64 {
	if f.Left {
		return -1.0
	}
	return 1.0
}

// newPlayer returns a player standing on the trampoline about to launch.
func newPlayer(launch float64) Player {
	return Player{Vel: launch}
}

// startFail enters the fail-out sequence with a random direction.
func (p *Player) startFail(cfg config.FailConfig, rng *rand.Rand) {
	p.Fail = FailOut{
		Active: true,
		Time:   cfg.Duration,
		Left:   rng.Float64() < 0.5,
	}
}

// advanceFail runs one tick of the fail-out arc. Returns true when the
// sequence has finished and the run must restart.
func (p *Player) advanceFail(dt, power float64, cfg config.FailConfig) bool {
	pct := 0.0
	if cfg.Duration > 0 {
		pct = p.Fail.Time / cfg.Duration
	}
	reach := power * 0.001
	p.X = math.Cos(pct*math.Pi*0.5) * cfg.ArcWidth * p.Fail.sign() * reach
	p.Y = math.Sin(pct*math.Pi) * cfg.ArcHeight * reach
	p.Angle = core.NormalizeAngle(p.Angle + cfg.SpinSpeed*dt*p.Fail.sign())

	p.Fail.Time -= dt
	return p.Fail.Time <= 0
}

// advanceFlight integrates rotation and vertical motion for one tick.
// flipped reports that the flip count went up this tick; contact reports
// that the player reached the trampoline.
func (p *Player) advanceFlight(dt float64, held bool, cfg config.FlipTuning, gravity float64) (flipped, contact bool) {
	if held && p.Y > cfg.MinHeight {
		p.Upright = false
		p.AngleVel += (cfg.TargetVelocity - p.AngleVel) * cfg.SpinUpBlend
	} else {
		if p.Upright {
			p.Angle *= cfg.UprightDecay
			if math.Abs(p.Angle) < cfg.UprightEpsilon {
				p.Upright = false
			}
		}
		p.AngleVel *= cfg.SpinDecay
	}

	// Count flips from the unwrapped rotation, before normalising the angle
	prevAngle := p.Angle
	p.Angle += p.AngleVel * dt
	p.Rotation += p.Angle - prevAngle

	prevFlips := p.Flips
	if n := flipCount(p.Rotation, cfg.CountOffset); n > p.Flips {
		p.Flips = n
	}
	flipped = p.Flips > prevFlips

	p.Angle = core.NormalizeAngle(p.Angle)

	p.Vel += gravity * dt
	p.Y += p.Vel * dt
	if p.Y > p.PeakY {
		p.PeakY = p.Y
	}

	return flipped, p.Y <= 0
}

// land resets the player for the next bounce cycle.
func (p *Player) land(launch float64) {
	p.Y = 0
	p.Vel = launch
	p.Upright = true
	p.Rotation = 0
	p.Flips = 0
	p.FlipsLanded = 0
	p.PeakY = 0
}

// flipCount converts accumulated rotation into whole flips, counting a flip
// once the body is a quarter turn from upright again.
func flipCount(rotation, offset float64) int {
	return int(math.Floor((rotation + offset) / 360.0))
}
