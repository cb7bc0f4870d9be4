// Package ohflip implements a one-button trampoline game: hold to flip,
// land upright to bounce higher.
package ohflip

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ohflip/internal/config"
	"github.com/vovakirdan/ohflip/internal/core"
	"github.com/vovakirdan/ohflip/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts State to the registry interface.
type Game struct {
	state   *State
	runtime core.RuntimeConfig
	clock   core.Clock
	bests   *BestScores
	logger  *log.Logger

	bestHeight int
	bestFlips  int
	storeWarn  bool

	paused bool
}

// New creates a new game instance.
func New() *Game {
	return &Game{
		bests:  NewBestScores(nil),
		logger: log.New(io.Discard),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "ohflip"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Oh, Flip"
}

// AttachBests persists best height and flips in store.
func (g *Game) AttachBests(store core.BestStore) {
	g.bests = NewBestScores(store)
}

// SetLogger routes game log lines to logger.
func (g *Game) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g.logger = logger
}

// Reset loads tuning and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadFlip(configPath)
	if err != nil {
		g.logger.Warn("using default tuning", "err", err)
		cfg = config.DefaultFlipConfig()
	}
	if difficultyPreset != "" {
		config.ApplyFlipPreset(&cfg, difficultyPreset)
	}

	state, err := NewState(cfg, runtime.Seed)
	if err != nil {
		g.logger.Warn("invalid goals, using defaults", "err", err)
		cfg.Goals = config.DefaultFlipConfig().Goals
		state, _ = NewState(cfg, runtime.Seed)
	}
	g.state = state

	g.clock.Reset()
	g.paused = false
	g.storeWarn = false
	g.bestHeight = g.loadBest(KeyMaxHeightFt)
	g.bestFlips = g.loadBest(KeyMaxTotalFlips)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	dt := g.runtime.FixedStep()
	if !in.At.IsZero() {
		dt = g.clock.Tick(in.At)
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.state.MainMenu {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	if in.Has(core.ActionRestart) && !g.state.MainMenu && !g.state.Player.Fail.Active {
		g.state.finishRun(&events)
	}

	held := in.Held || in.Has(core.ActionJump)
	events = append(events, g.state.Update(dt, InputSnapshot{Held: held})...)

	if !g.state.MainMenu {
		g.bestHeight = g.record(KeyMaxHeightFt, g.state.HeightFt())
		g.bestFlips = g.record(KeyMaxTotalFlips, g.state.Player.TotalFlips)
	}

	for _, e := range events {
		switch e.Kind {
		case core.EventGoal:
			g.logger.Info("SUCCESS!", "goal", e.Value+1)
		case core.EventFail:
			g.logger.Debug("failed landing", "angle", g.state.Player.Angle)
		}
	}

	result := core.StepResult{State: g.State(), Events: events}
	if run := g.state.TakeRun(); run != nil {
		g.logger.Info("run finished", "flips", run.Score, "height_ft", run.MaxHeight, "perfects", run.Perfects, "goal", run.GoalReached+1)
		result.Run = run
	}
	return result
}

func (g *Game) loadBest(key string) int {
	v, _, err := g.bests.Best(key)
	if err != nil {
		g.warnStore(err)
	}
	return v
}

func (g *Game) record(key string, v int) int {
	best, err := g.bests.Record(key, v)
	if err != nil {
		g.warnStore(err)
	}
	return best
}

// warnStore logs the first storage failure of a session.
func (g *Game) warnStore(err error) {
	if g.storeWarn {
		return
	}
	g.storeWarn = true
	g.logger.Warn("best scores not persisted", "err", err)
}

// Snapshot returns the render view of the game.
func (g *Game) Snapshot() Snapshot {
	snap := g.state.Snapshot()
	snap.BestHeightFt = g.bestHeight
	snap.BestTotalFlips = g.bestFlips
	snap.Paused = g.paused
	return snap
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.state.Player.TotalFlips,
		Paused: g.paused,
		InMenu: g.state.MainMenu,
	}
}

// Register the game with the registry
func init() {
	registry.Register("ohflip", func() registry.Game {
		return New()
	})
}
