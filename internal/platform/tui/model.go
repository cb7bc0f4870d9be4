package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ohflip/internal/core"
	"github.com/vovakirdan/ohflip/internal/registry"
	"github.com/vovakirdan/ohflip/internal/storage"
)

// EventSink receives the events of every tick, e.g. to play sounds.
type EventSink interface {
	HandleEvents(events []core.Event)
}

// Options are the optional services a Model runs with.
type Options struct {
	Store  *storage.Store // nil disables persistence
	Bests  core.BestStore // defaults to Store
	Sound  EventSink      // nil plays nothing
	Logger *log.Logger    // nil discards
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	hold       HoldLatch
	keys       GameKeyMap
	help       help.Model
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	if g, ok := game.(registry.Loggable); ok {
		g.SetLogger(opts.Logger)
	}
	if opts.Bests == nil && opts.Store != nil {
		opts.Bests = opts.Store
	}
	if g, ok := game.(registry.BestTracker); ok && opts.Bests != nil {
		g.AttachBests(opts.Bests)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		m.hold.Release()
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Scores):
		sb := NewScoreboardModel(m.opts.Store, m.game.ID(), m.config.ScreenW, m.config.ScreenH)
		sb.embedded = true
		m.scoreboard = &sb
		m.hold.Release()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Flip):
		m.hold.KeyPress(time.Now())
	case key.Matches(msg, m.keys.Pause):
		m.inputFrame.Set(core.ActionPause)
	case key.Matches(msg, m.keys.Restart):
		m.inputFrame.Set(core.ActionRestart)
	}

	return m, nil
}

// handleMouse turns the left button into a held control.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.hold.MousePress()
		}
	case tea.MouseActionRelease:
		m.hold.MouseRelease()
	}
	return m, nil
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
	default:
		m.scoreboard = &sb
	}
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m, tickCmd(m.config.TickRate)
	}

	m.inputFrame.Held = m.hold.Held(now)
	m.inputFrame.At = now

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Run != nil {
		m.saveRun(*result.Run)
	}
	if m.opts.Sound != nil {
		m.opts.Sound.HandleEvents(result.Events)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records a finished run. Runs without a landed flip are not kept.
func (m Model) saveRun(run core.RunSummary) {
	if m.opts.Store == nil || run.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), run.Score); err != nil {
		m.opts.Logger.Error("saving score", "err", err)
	}
	id, err := m.opts.Store.SaveRun(m.game.ID(), run)
	if err != nil {
		m.opts.Logger.Error("saving run", "err", err)
		return
	}
	m.opts.Logger.Debug("run saved", "id", id, "flips", run.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	helpView := m.help.View(m.keys)
	helpLines := strings.Count(helpView, "\n") + 1
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-helpLines, 1))
	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(helpView)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
