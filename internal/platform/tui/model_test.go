package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gomba/internal/core"
	"github.com/vovakirdan/gomba/internal/games/gomba"
	"github.com/vovakirdan/gomba/internal/storage"
)

// stubGame plays one round that ends after overAt steps.
type stubGame struct {
	steps  int
	overAt int
	score  int
	resets int
	last   core.InputFrame
}

func (s *stubGame) ID() string    { return "stub" }
func (s *stubGame) Title() string { return "Stub" }

func (s *stubGame) Reset(core.RuntimeConfig) {
	s.steps = 0
	s.resets++
}

func (s *stubGame) Step(in core.InputFrame) core.StepResult {
	s.steps++
	s.last = in.Clone()
	return core.StepResult{State: s.State()}
}

func (s *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (s *stubGame) State() core.GameState {
	if s.steps >= s.overAt {
		return core.GameState{Score: s.score, GameOver: true}
	}
	return core.GameState{Score: s.score, Playing: s.steps > 0}
}

func (s *stubGame) Stats() gomba.RoundStats {
	return gomba.RoundStats{Score: s.score, PatrollerKills: 2, JumpOvers: 1, Spawned: 3, Duration: 1.5}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(time.Now()))
	return next.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelSavesRoundOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &stubGame{overAt: 2, score: 300}
	m := NewModel(game, testRuntime(), ModelOptions{Store: store, Difficulty: "hard"})

	for i := 0; i < 5; i++ {
		m = tick(t, m)
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 300 {
		t.Fatalf("scores = %v, want one score of 300", scores)
	}

	rounds, err := store.RecentRounds("stub", 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("Expected 1 round, got %d", len(rounds))
	}
	r := rounds[0]
	if r.PatrollerKills != 2 || r.JumpOvers != 1 || r.Spawned != 3 || r.DurationSecs != 1.5 {
		t.Errorf("round stats not recorded: %+v", r)
	}
	if r.Seed != 1 || r.Difficulty != "hard" {
		t.Errorf("round seed/difficulty = %d/%q, want 1/hard", r.Seed, r.Difficulty)
	}
}

func TestModelHeldKeyReachesGame(t *testing.T) {
	game := &stubGame{overAt: 100}
	m := NewModel(game, testRuntime(), ModelOptions{HoldTicks: 2})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m)
	if !game.last.Has(core.ActionRight) {
		t.Fatal("right should reach the game on the next tick")
	}
	m = tick(t, m)
	if !game.last.Has(core.ActionRight) {
		t.Fatal("right should still be held on the second tick")
	}
	tick(t, m)
	if game.last.Has(core.ActionRight) {
		t.Error("right should be released after the hold expires")
	}
}

func TestModelBackOnlyBetweenRounds(t *testing.T) {
	game := &stubGame{overAt: 3}
	m := NewModel(game, testRuntime(), ModelOptions{})

	m = tick(t, m)
	m = press(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back should be ignored during a round")
	}

	m = tick(t, m)
	m = tick(t, m)
	if !m.State().GameOver {
		t.Fatal("round should be over")
	}
	m = press(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back should leave the game after game over")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{overAt: 10}, testRuntime(), ModelOptions{})

	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	created := 0
	factory := func() core.Game {
		created++
		return &stubGame{overAt: 1}
	}

	var s tea.Model = NewSessionModel(factory, testRuntime(), ModelOptions{})
	if created != 1 {
		t.Fatalf("factory called %d times, want 1", created)
	}

	s, _ = s.Update(TickMsg(time.Now()))
	s, _ = s.Update(runeKey('b'))
	if !s.(SessionModel).OnScoreboard() {
		t.Fatal("session should show the scoreboard")
	}
	if s.View() == "" {
		t.Error("scoreboard view should not be empty")
	}

	// ticks from the game screen are dropped
	s, _ = s.Update(TickMsg(time.Now()))
	if !s.(SessionModel).OnScoreboard() {
		t.Fatal("tick should not leave the scoreboard")
	}

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.(SessionModel).OnScoreboard() {
		t.Error("back should return to the game")
	}
	if created != 2 {
		t.Errorf("factory called %d times, want 2", created)
	}
}
