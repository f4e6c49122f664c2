// gomba is a terminal side-scrolling platformer: stomp patrollers, jump over
// them for points and stay clear of the axe patrollers' swings.
//
// Usage:
//
//	gomba play               - Play in the terminal
//	gomba serve              - Start SSH server for remote play
//	gomba scores             - Show high scores and recent rounds
//	gomba simulate           - Run headless rounds with a scripted player
//	gomba config             - Print the default or resolved configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.gomba/scores.db)
//	--config <path>       - Use a custom YAML or TOML game config
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gomba/internal/config"
)

const gameID = "gomba"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gomba",
	Short: "Gomba - a platformer in your terminal",
	Long: `Gomba is a terminal side-scroller. Stomp patrollers for points, jump
over them for a bonus, and keep away from the axe patrollers.

Available commands:
  play      - Play in the terminal
  serve     - Start SSH server for remote play
  scores    - View high scores and recent rounds
  simulate  - Run headless rounds with a scripted player
  config    - Print configuration

Examples:
  gomba play
  gomba play --difficulty hard
  gomba serve --ssh :2222
  gomba scores --interactive
  gomba simulate --seed 42 --rounds 5`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.gomba/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the game config and applies the difficulty preset.
func loadGameConfig() (config.GombaConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GombaConfig{}, err
	}
	if flagDifficulty != "" {
		preset := config.ParseDifficultyPreset(flagDifficulty)
		if preset == "" {
			return config.GombaConfig{}, fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// newLogger creates a logger writing to --log-file, or to fallback when no
// file is given. The returned closer must be called on exit.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
