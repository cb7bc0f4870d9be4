package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ohflip/internal/audio"
	"github.com/vovakirdan/ohflip/internal/config"
	"github.com/vovakirdan/ohflip/internal/core"
	"github.com/vovakirdan/ohflip/internal/games/ohflip"
	"github.com/vovakirdan/ohflip/internal/platform/tui"
	"github.com/vovakirdan/ohflip/internal/registry"
	"github.com/vovakirdan/ohflip/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing.

Controls:
  Space/Up/W, mouse  - Hold to flip
  P/Esc              - Pause
  R                  - Restart the run
  Tab                - Scores
  Ctrl+S             - Screenshot
  Q/Ctrl+C           - Quit

Terminals do not report key releases, so a held key is detected from
key repeat. The mouse button gives the most precise control.

Difficulty options:
  easy   - Wider safe and perfect landing angles
  normal - Default angles
  hard   - Narrow landing angles
  fixed  - Same as normal

Examples:
  ohflip play
  ohflip play --difficulty hard
  ohflip play --config ./my-ohflip.yaml
  ohflip play --sound --volume 0.3`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addTuningFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning (YAML or TOML)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func addPlayFlags(cmd *cobra.Command) {
	addTuningFlags(cmd)
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume (0-1)")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := applyTuningFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	game, err := registry.Create("ohflip")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs only go to --log
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	opts := tui.Options{Store: store, Logger: logger}

	if flagSound {
		sm := audio.NewSoundManager(core.ClampF(flagVolume, 0, 1))
		if err := sm.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			defer sm.Cleanup()
			opts.Sound = sm
		}
	}

	logger.Info("starting", "fps", flagFPS, "seed", flagSeed, "difficulty", flagDifficulty)
	runErr := tui.Run(game, cfg, opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}

// applyTuningFlags validates --config and --difficulty and hands them to
// the game package. Both must be set before the game is created.
func applyTuningFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadFlip(flagConfig); err != nil {
			return err
		}
	}

	ohflip.SetConfigPath(flagConfig)
	ohflip.SetDifficultyPreset(flagDifficulty)
	return nil
}
