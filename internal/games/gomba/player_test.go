package gomba

import (
	"testing"

	"github.com/vovakirdan/gomba/internal/config"
	"github.com/vovakirdan/gomba/internal/core"
	"github.com/vovakirdan/gomba/internal/physics"
)

type enemyIndex map[physics.BodyID]Enemy

func (idx enemyIndex) EnemyByBody(id physics.BodyID) (Enemy, bool) {
	e, ok := idx[id]
	return e, ok
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func groundContact() physics.Contact {
	return physics.Contact{Other: 99, OtherCategory: physics.CategoryGround}
}

func TestHorizontalSign(t *testing.T) {
	tests := []struct {
		name string
		in   core.InputFrame
		want float64
	}{
		{"none", frame(), 0},
		{"left", frame(core.ActionLeft), -1},
		{"right", frame(core.ActionRight), 1},
		{"both", frame(core.ActionLeft, core.ActionRight), 0},
		{"jump only", frame(core.ActionJump), 0},
	}
	for _, tt := range tests {
		if got := HorizontalSign(tt.in); got != tt.want {
			t.Errorf("%s: HorizontalSign() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPlayerHorizontalMovement(t *testing.T) {
	cfg := config.DefaultGombaConfig()
	p := newRunningPlayer(cfg, &recordingReferee{})
	start := p.Position().X

	p.Update(0.5, frame(core.ActionRight))
	if !approx(p.Position().X, start+cfg.Player.HorizontalSpeed*0.5) {
		t.Errorf("x = %v after moving right", p.Position().X)
	}
	if !p.FacingRight() {
		t.Error("should face right")
	}

	p.Update(0.5, frame(core.ActionLeft))
	if !approx(p.Position().X, start) || p.FacingRight() {
		t.Errorf("x = %v facingRight = %v after moving left", p.Position().X, p.FacingRight())
	}

	p.Pause()
	p.Update(0.5, frame(core.ActionRight))
	if !approx(p.Position().X, start) {
		t.Error("paused player should not move")
	}
}

func TestPlayerJumpGating(t *testing.T) {
	cfg := config.DefaultGombaConfig()
	p := newRunningPlayer(cfg, &recordingReferee{})

	p.Update(0.1, frame(core.ActionJump))
	if p.Velocity().Y != 0 {
		t.Fatal("jump before touching the ground should not fire")
	}

	p.HandleContact(groundContact(), enemyIndex{})
	if !p.CanJump() {
		t.Fatal("ground contact should enable jumping")
	}

	p.Update(0.1, frame(core.ActionJump))
	if p.Velocity().Y != cfg.Player.VerticalSpeed {
		t.Errorf("jump velocity = %v, want %v", p.Velocity().Y, cfg.Player.VerticalSpeed)
	}
	if p.CanJump() {
		t.Error("jumping should consume canJump")
	}

	// Holding jump in the air does nothing more.
	p.Update(0.1, frame(core.ActionJump))
	if p.Velocity().Y != cfg.Player.VerticalSpeed {
		t.Errorf("second jump fired in the air, vy = %v", p.Velocity().Y)
	}
}

func TestPlayerJumpOverSingleCreditPerArc(t *testing.T) {
	cfg := config.DefaultGombaConfig()
	ref := &recordingReferee{}
	p := newRunningPlayer(cfg, ref)

	body := &physics.Body{Category: physics.CategoryEnemy, Size: core.V(1, 1)}
	e := NewPatroller(1, core.V(0, 0.5), body, cfg)
	e.Initialize()
	e.Resume()
	enemies := []Enemy{e}

	p.Body().Pos = core.V(0.1, 2)
	for i := 0; i < 10; i++ {
		p.CheckJumpOvers(enemies)
	}
	if ref.jumpOvers != 1 {
		t.Fatalf("jump-over credits = %d, want 1", ref.jumpOvers)
	}
	if !p.JumpedOver(e.ID()) {
		t.Error("patroller should be in the jumped-over set")
	}

	p.HandleContact(groundContact(), enemyIndex{})
	if p.JumpedOver(e.ID()) {
		t.Error("landing should clear the jumped-over set")
	}

	p.CheckJumpOvers(enemies)
	if ref.jumpOvers != 2 {
		t.Errorf("after landing the patroller should be creditable again, got %d", ref.jumpOvers)
	}
}

func TestPlayerJumpOverGeometry(t *testing.T) {
	cfg := config.DefaultGombaConfig()
	tests := []struct {
		name string
		pos  core.Vec2
		want int
	}{
		{"over", core.V(0.4, 1), 1},
		{"over from the left", core.V(-0.4, 1), 1},
		{"too far sideways", core.V(0.5, 2), 0},
		{"too far sideways left", core.V(-0.5, 2), 0},
		{"too low", core.V(0, 0.75), 0},
		{"just high enough", core.V(0, 0.76), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := &recordingReferee{}
			p := newRunningPlayer(cfg, ref)
			body := &physics.Body{Category: physics.CategoryEnemy, Size: core.V(1, 1)}
			e := NewPatroller(1, core.V(0, 0.5), body, cfg)
			e.Initialize()
			e.Resume()

			p.Body().Pos = tt.pos
			p.CheckJumpOvers([]Enemy{e})
			if ref.jumpOvers != tt.want {
				t.Errorf("credits = %d, want %d", ref.jumpOvers, tt.want)
			}
		})
	}
}

func TestPlayerJumpOverIgnoresAxePatrollers(t *testing.T) {
	a, p := newStillAxePatroller(t, core.V(0, 2))
	ref := &recordingReferee{}
	p.referee = ref

	p.CheckJumpOvers([]Enemy{a})
	if ref.jumpOvers != 0 {
		t.Errorf("axe patrollers are not jump-over targets, got %d credits", ref.jumpOvers)
	}
}

func TestPlayerEnemyContact(t *testing.T) {
	tests := []struct {
		name      string
		bottom    float64
		kills     int
		gameOvers int
	}{
		{"stomp", 0.1, 1, 0},
		{"bumped", -0.1, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultGombaConfig()
			ref := &recordingReferee{}
			p := newRunningPlayer(cfg, ref)

			body := &physics.Body{ID: 7, Category: physics.CategoryEnemy, Size: core.V(1, 1)}
			e := NewPatroller(1, core.V(0, 0), body, cfg)
			e.Initialize()
			e.Resume()

			p.Body().Pos = core.V(0, tt.bottom+cfg.Player.Height/2)
			p.HandleContact(physics.Contact{Other: 7, OtherCategory: physics.CategoryEnemy}, enemyIndex{7: e})

			if len(ref.kills) != tt.kills || ref.gameOvers != tt.gameOvers {
				t.Errorf("kills=%d gameOvers=%d, want %d/%d", len(ref.kills), ref.gameOvers, tt.kills, tt.gameOvers)
			}
			if tt.kills == 1 && !approx(p.Velocity().Y, cfg.Player.VerticalSpeed*0.8) {
				t.Errorf("stomp should bounce the player, vy = %v", p.Velocity().Y)
			}
		})
	}
}

func TestPlayerWeaponContact(t *testing.T) {
	cfg := config.DefaultGombaConfig()
	ref := &recordingReferee{}
	p := newRunningPlayer(cfg, ref)
	weapon := physics.Contact{Other: 3, OtherCategory: physics.CategoryEnemyWeapon}

	p.HandleContact(weapon, enemyIndex{})
	if ref.gameOvers != 1 {
		t.Errorf("weapon contact should end the game, got %d", ref.gameOvers)
	}

	p.Pause()
	p.HandleContact(weapon, enemyIndex{})
	if ref.gameOvers != 1 {
		t.Error("paused player should ignore weapon contacts")
	}
}

func TestPlayerIgnoresOtherContacts(t *testing.T) {
	cfg := config.DefaultGombaConfig()
	ref := &recordingReferee{}
	p := newRunningPlayer(cfg, ref)

	p.HandleContact(physics.Contact{OtherCategory: physics.CategoryWall}, enemyIndex{})
	p.HandleContact(physics.Contact{Other: 5, OtherCategory: physics.CategoryEnemy}, enemyIndex{})

	if len(ref.kills) != 0 || ref.gameOvers != 0 || p.CanJump() {
		t.Error("walls and unknown enemies should not produce verdicts")
	}
}

func TestPlayerInitializeResetsState(t *testing.T) {
	cfg := config.DefaultGombaConfig()
	p := newRunningPlayer(cfg, &recordingReferee{})
	p.HandleContact(groundContact(), enemyIndex{})
	p.Body().Pos = core.V(5, 5)
	p.Body().Vel = core.V(1, 1)
	p.tryAddJumpedOver(3)

	p.Initialize()

	if p.Position() != core.V(cfg.Player.Spawn.X, cfg.Player.Spawn.Y) {
		t.Errorf("position = %v, want spawn", p.Position())
	}
	if p.Velocity() != (core.Vec2{}) || p.CanJump() || p.JumpedOver(3) {
		t.Error("initialize should clear velocity, jump state and the jumped-over set")
	}
	p.Resume()
	if p.Velocity() != (core.Vec2{}) {
		t.Errorf("resume after initialize should restore zero velocity, got %v", p.Velocity())
	}
}
