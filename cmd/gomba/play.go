package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gomba/internal/core"
	"github.com/vovakirdan/gomba/internal/games/gomba"
	"github.com/vovakirdan/gomba/internal/platform/tui"
	"github.com/vovakirdan/gomba/internal/storage"
)

var flagHoldTicks int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Left/Right, A/D  - Move
  Space/Up/W       - Jump
  Enter/S          - Start a round
  P                - Pause
  R                - Restart (after game over)
  B/Esc            - Scoreboard (between rounds or while paused)
  Ctrl+S           - Save a screenshot to ~/.gomba/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower spawns, slower axe patrollers
  normal - The configured values
  hard   - Faster spawns, faster and more aggressive axe patrollers

Logs are discarded unless --log-file is given.

Examples:
  gomba play
  gomba play --difficulty hard
  gomba play --seed 42 --log-file gomba.log --log-level debug
  gomba play --config ./my-gomba.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Ticks a movement key stays held after each key event")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, gameID)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Continue without storage if the database is unavailable
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	newGame := func() core.Game {
		return gomba.New(gameCfg, logger)
	}

	if err := tui.Run(newGame, cfg, tui.ModelOptions{
		Store:      store,
		Logger:     logger,
		Difficulty: flagDifficulty,
		HoldTicks:  flagHoldTicks,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
