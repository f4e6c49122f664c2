package gomba

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gomba/internal/config"
	"github.com/vovakirdan/gomba/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func newStartedGame() *Game {
	g := New(config.DefaultGombaConfig(), nil)
	g.Reset(testRuntime())
	g.Step(frame(core.ActionConfirm))
	return g
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionConfirm)
		case i%90 < 50:
			inputs[i].Set(core.ActionRight)
		case i%90 < 60:
			inputs[i].Set(core.ActionJump)
		default:
			inputs[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := New(config.DefaultGombaConfig(), nil)
		g.Reset(testRuntime())
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.Tick != snap2.Tick {
		t.Errorf("Determinism failed: score %d/%d tick %d/%d", snap1.Score, snap2.Score, snap1.Tick, snap2.Tick)
	}
}

func TestGameWaitsOnTitle(t *testing.T) {
	g := New(config.DefaultGombaConfig(), nil)
	g.Reset(testRuntime())

	for i := 0; i < 30; i++ {
		g.Step(frame(core.ActionRight, core.ActionJump))
	}
	if g.Round().Phase() != PhaseIdle || g.State().Playing {
		t.Fatal("game should wait for confirm on the title panel")
	}

	g.Step(frame(core.ActionConfirm))
	if !g.State().Playing {
		t.Error("confirm should start a round")
	}
}

func TestGamePlayerLandsAndJumps(t *testing.T) {
	g := newStartedGame()

	g.Step(frame())
	if !g.Player().CanJump() {
		t.Fatal("player should be standing on the ground after the first tick")
	}

	g.Step(frame(core.ActionJump))
	if g.Player().CanJump() || g.Player().Velocity().Y <= 0 {
		t.Fatal("jump should lift the player off the ground")
	}

	for i := 0; i < 120 && !g.Player().CanJump(); i++ {
		g.Step(frame())
	}
	if !g.Player().CanJump() {
		t.Error("player should land again")
	}
	if g.Player().Bottom() != g.cfg.Physics.GroundY {
		t.Errorf("player bottom = %v, want ground", g.Player().Bottom())
	}
}

func TestGameWalkingIntoPatrollerEndsRound(t *testing.T) {
	g := newStartedGame()

	for i := 0; i < 600 && !g.State().GameOver; i++ {
		g.Step(frame(core.ActionRight))
	}

	state := g.State()
	if !state.GameOver {
		t.Fatal("walking into a patroller should end the round")
	}
	if state.Score != 0 {
		t.Errorf("score = %d, want 0", state.Score)
	}
	if !g.Player().IsPaused() {
		t.Error("player should be paused after game over")
	}
	for _, e := range g.Round().Enemies() {
		if !e.IsPaused() {
			t.Errorf("enemy %d should be paused", e.ID())
		}
	}

	g.Step(frame(core.ActionRestart))
	if !g.State().Playing || g.State().Score != 0 {
		t.Error("restart should begin a fresh round")
	}
	if g.Tick() != 0 {
		t.Errorf("tick = %d after restart, want 0", g.Tick())
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := newStartedGame()
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionRight))
	}

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause key should pause the round")
	}
	before := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(frame(core.ActionRight))
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("paused game should not change")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause press should resume")
	}
}

func TestGameRender(t *testing.T) {
	g := New(config.DefaultGombaConfig(), nil)
	g.Reset(testRuntime())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Enter to start") {
		t.Error("title panel missing")
	}

	g.Step(frame(core.ActionConfirm))
	g.Step(frame())
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "SCORE 0000000") {
		t.Errorf("score missing from HUD row: %q", screen.Row(0))
	}
	if !strings.Contains(screen.String(), string(PlayerChar)) {
		t.Error("player not drawn")
	}

	g.Round().SubmitGameOver()
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game-over panel missing")
	}
}
