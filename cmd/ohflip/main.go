// ohflip is a one-button trampoline game for the terminal: hold to flip,
// land upright to bounce higher.
//
// Usage:
//
//	ohflip play              - Play the game
//	ohflip scores            - Show run history and records
//	ohflip serve             - Start SSH server for remote play
//	ohflip list              - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--log <path>    - Write a log file
//	--debug         - Log debug messages
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/ohflip/internal/games/ohflip"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ohflip",
	Short: "oh, flip - a game about backflips",
	Long: `oh, flip is a one-button trampoline game for the terminal.

Hold space or the left mouse button in the air to spin. Land close to
upright to bounce higher; land crooked and you fall off.

Available commands:
  play     - Play the game
  scores   - View run history and records
  serve    - Start SSH server for remote play
  list     - Show registered games

Examples:
  ohflip play
  ohflip play --difficulty easy --sound
  ohflip serve --ssh :2222
  ohflip scores`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// openLogger returns the logger selected by --log and --debug. Without a
// log file, output goes to fallback. The returned func closes the file.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}

	if flagLogPath != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogPath), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "ohflip",
		Level:           level,
	})
	return logger, closeFn, nil
}
