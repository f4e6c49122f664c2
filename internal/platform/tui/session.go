package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gomba/internal/core"
)

// GameFactory creates a fresh game for each visit to the game screen.
type GameFactory func() core.Game

// SessionModel manages the session flow: game -> scoreboard -> game.
// It is the top-level model for both local and SSH sessions.
type SessionModel struct {
	newGame  GameFactory
	config   core.RuntimeConfig
	opts     ModelOptions
	game     Model
	board    ScoreboardModel
	onBoard  bool
	quitting bool
}

// NewSessionModel creates a session that starts on the game screen.
func NewSessionModel(newGame GameFactory, cfg core.RuntimeConfig, opts ModelOptions) SessionModel {
	return SessionModel{
		newGame: newGame,
		config:  cfg,
		opts:    opts,
		game:    NewModel(newGame(), cfg, opts),
	}
}

// Init starts the game tick loop.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.onBoard {
		return m.updateBoard(msg)
	}
	return m.updateGame(msg)
}

// updateGame handles updates while the game screen is shown.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.game = gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.board = NewScoreboardModel(m.opts.Store, m.game.game.ID(), m.config.ScreenW, m.config.ScreenH)
		m.onBoard = true
		return m, m.board.Init()
	}

	return m, cmd
}

// updateBoard handles updates while the scoreboard is shown.
func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		// stale tick from the game screen
		return m, nil
	}

	newBoard, cmd := m.board.Update(msg)
	if bm, ok := newBoard.(ScoreboardModel); ok {
		m.board = bm
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.board.IsGoingBack() {
		m.game = NewModel(m.newGame(), m.config, m.opts)
		m.onBoard = false
		return m, m.game.Init()
	}

	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.onBoard {
		return m.board.View()
	}
	return m.game.View()
}

// OnScoreboard reports whether the scoreboard is shown.
func (m SessionModel) OnScoreboard() bool {
	return m.onBoard
}

// Run starts a local Bubble Tea program for the session.
func Run(newGame GameFactory, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewSessionModel(newGame, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
