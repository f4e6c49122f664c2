package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gomba/internal/core"
	"github.com/vovakirdan/gomba/internal/games/gomba"
	"github.com/vovakirdan/gomba/internal/storage"
)

// statsReporter is implemented by games that track per-round statistics.
type statsReporter interface {
	Stats() gomba.RoundStats
}

// ModelOptions holds the optional collaborators of a Model.
type ModelOptions struct {
	Store      *storage.Store // nil disables score persistence
	Logger     *log.Logger    // nil discards output
	Difficulty string         // recorded with each round
	HoldTicks  int            // see NewKeyMapper
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	log        *log.Logger
	config     core.RuntimeConfig
	difficulty string
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	roundSaved bool // whether the finished round has been persisted
}

// NewModel creates a Bubble Tea model for the given game and resets it.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		log:        logger,
		config:     cfg,
		difficulty: opts.Difficulty,
		keys:       NewKeyMapper(opts.HoldTicks),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.Press(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only between rounds or while paused
	if m.inputFrame.Has(core.ActionBack) && (!m.gameState.Playing || m.gameState.Paused) {
		m.backToMenu = true
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	m.keys.Fill(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.Playing {
		m.roundSaved = false
	}
	if m.gameState.GameOver && !m.roundSaved {
		m.saveRound()
		m.roundSaved = true
		m.keys.Release()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRound persists the score and statistics of the finished round.
func (m *Model) saveRound() {
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.log.Error("could not save score", "error", err)
		}
	}

	rec := storage.RoundRecord{
		GameID:     m.game.ID(),
		Score:      m.gameState.Score,
		Seed:       m.config.Seed,
		Difficulty: m.difficulty,
	}
	if r, ok := m.game.(statsReporter); ok {
		stats := r.Stats()
		rec.PatrollerKills = stats.PatrollerKills
		rec.AxePatrollerKills = stats.AxePatrollerKills
		rec.JumpOvers = stats.JumpOvers
		rec.Spawned = stats.Spawned
		rec.DurationSecs = stats.Duration
	}
	if _, err := m.store.SaveRound(rec); err != nil {
		m.log.Error("could not save round", "error", err)
	}
}

// saveScreenshot saves the current screen to ~/.gomba/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".gomba", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("could not save screenshot", "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested the scoreboard.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}
