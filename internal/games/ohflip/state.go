package ohflip

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/ohflip/internal/config"
	"github.com/vovakirdan/ohflip/internal/core"
)

// Virtual canvas the simulation and renderer share.
const (
	CanvasW = 1280.0
	CanvasH = 720.0
)

// Popup anchors in canvas coordinates.
var (
	landingPopupPos = core.Vec2{X: CanvasW/2 + 100, Y: CanvasH - 100}
	flipPopupPos    = core.Vec2{X: CanvasW/2 + 100, Y: CanvasH - 200}
)

// InputSnapshot is the control state sampled once per tick.
type InputSnapshot struct {
	Held bool
}

// runStats accumulates the figures reported when a run ends.
type runStats struct {
	elapsed     float64
	maxHeightFt int
	perfects    int
}

// State is the whole simulation. It is advanced by Update and read by the
// renderer through Snapshot.
type State struct {
	Player Player
	Power  BouncePower
	Camera Camera
	Shake  Shake
	Goals  *GoalTracker
	Popups PopupQueue
	Blink  Blink

	MainMenu  bool
	menuTouch bool // the touch that left the menu is still held
	touching  bool // player-facing control level after menu filtering

	run     runStats
	lastRun *core.RunSummary

	cfg config.FlipConfig
	rng *rand.Rand
}

// NewState builds a simulation on the title screen.
func NewState(cfg config.FlipConfig, seed int64) (*State, error) {
	goals, err := BuildGoals(cfg.Goals)
	if err != nil {
		return nil, err
	}

	s := &State{
		Goals:    NewGoalTracker(goals),
		Popups:   NewPopupQueue(cfg.Popups),
		Blink:    newBlink(),
		MainMenu: true,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
	}
	s.resetRun()
	return s, nil
}

// resetRun restarts the run. Goal progress, popups and the title screen
// flag are left alone.
func (s *State) resetRun() {
	s.Power = NewBouncePower(s.cfg.Bounce)
	s.Player = newPlayer(s.Power.Value)
	s.Camera = NewCamera(s.cfg.Camera)
	s.Shake = NewShake(s.cfg.Shake)
	s.run = runStats{}
}

// Update advances the simulation by dt seconds.
func (s *State) Update(dt float64, in InputSnapshot) []core.Event {
	dt = core.ClampStep(dt)
	var events []core.Event

	s.updateMenu(in.Held, &events)

	if !s.MainMenu {
		s.run.elapsed += dt
	}

	s.updatePlayer(dt, &events)
	s.Camera.Advance(dt, s.Player.Y)
	s.Shake.Advance(dt)
	s.Popups.Advance(dt)

	if ft := s.HeightFt(); ft > s.run.maxHeightFt {
		s.run.maxHeightFt = ft
	}

	return events
}

// updateMenu dismisses the title screen on the first press. That press does
// not reach the player until it is released.
func (s *State) updateMenu(held bool, events *[]core.Event) {
	if held {
		if s.MainMenu {
			s.menuTouch = true
			s.MainMenu = false
			*events = append(*events, core.Event{Kind: core.EventMenuLeave})
		}
	} else {
		s.menuTouch = false
	}
	s.touching = held && !s.menuTouch
}

func (s *State) updatePlayer(dt float64, events *[]core.Event) {
	p := &s.Player

	if p.Fail.Active {
		if p.advanceFail(dt, s.Power.Value, s.cfg.Fail) {
			s.finishRun(events)
		}
		return
	}

	s.Blink.Advance(dt, s.rng)

	flipped, contact := p.advanceFlight(dt, s.touching, s.cfg.Flip, s.cfg.Physics.Gravity)
	if flipped {
		*events = append(*events, core.Event{Kind: core.EventFlip, Value: p.Flips})
		s.Popups.Spawn(flipPopupPos, fmt.Sprintf("x%d", p.Flips), core.ColorMagenta)
	}

	if contact {
		s.resolveContact(events)
	}
}

// resolveContact classifies a landing and applies its effects.
func (s *State) resolveContact(events *[]core.Event) {
	p := &s.Player

	s.Shake.Hit()
	*events = append(*events, core.Event{Kind: core.EventBounce})

	outcome := Classify(p.Angle, p.Rotation, s.cfg.Bounce)
	switch outcome {
	case OutcomeFail:
		p.startFail(s.cfg.Fail, s.rng)
		s.Popups.Spawn(landingPopupPos, "miss", core.ColorRed)
		*events = append(*events, core.Event{Kind: core.EventFail})
		return

	case OutcomePerfect, OutcomeGood:
		perfect := outcome == OutcomePerfect
		s.Power.Reward(p.Flips, perfect)
		p.FlipsLanded = p.Flips
		p.TotalFlips += p.Flips
		if perfect {
			s.run.perfects++
			if !s.MainMenu {
				s.Camera.Kick()
			}
			s.Popups.Spawn(landingPopupPos, "perfect!", core.ColorYellow)
			*events = append(*events, core.Event{Kind: core.EventPerfect, Value: p.Flips})
		} else {
			s.Popups.Spawn(landingPopupPos, "good", core.ColorGreen)
			*events = append(*events, core.Event{Kind: core.EventGood, Value: p.Flips})
		}

	case OutcomeMiss:
		s.Power.Penalize()
		*events = append(*events, core.Event{Kind: core.EventMiss})
	}

	report := BounceReport{
		Outcome:     outcome,
		FlipsLanded: p.FlipsLanded,
		HeightFt:    s.feet(p.PeakY),
		TotalFlips:  p.TotalFlips,
	}
	idx := s.Goals.Index()
	if s.Goals.OnBounceResolved(report) {
		*events = append(*events, core.Event{Kind: core.EventGoal, Value: idx})
	}

	p.land(s.Power.Value)
}

// finishRun records the run summary and restarts.
func (s *State) finishRun(events *[]core.Event) {
	s.lastRun = &core.RunSummary{
		Score:       s.Player.TotalFlips,
		MaxHeight:   s.run.maxHeightFt,
		Perfects:    s.run.perfects,
		Duration:    secondsToDuration(s.run.elapsed),
		GoalReached: s.Goals.Index(),
	}
	s.resetRun()
	*events = append(*events, core.Event{Kind: core.EventRunReset})
}

// TakeRun returns the summary of a run that ended since the last call.
func (s *State) TakeRun() *core.RunSummary {
	r := s.lastRun
	s.lastRun = nil
	return r
}

// Touching reports whether the control is reaching the player.
func (s *State) Touching() bool {
	return s.touching
}

// HeightFt returns the current height in whole feet.
func (s *State) HeightFt() int {
	return s.feet(s.Player.Y)
}

// PupilOffset returns how far the pupil looks up, in canvas units.
func (s *State) PupilOffset() float64 {
	return core.ClampF(s.Player.Vel/1000, 0, 1) * 7
}

// Config returns the tuning the state was built with.
func (s *State) Config() config.FlipConfig {
	return s.cfg
}

func (s *State) feet(y float64) int {
	upf := s.cfg.Physics.UnitsPerFoot
	if upf <= 0 {
		upf = 40
	}
	return int(math.Floor(y / upf))
}

func secondsToDuration(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
