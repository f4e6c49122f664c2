package gomba

import (
	"testing"

	"github.com/vovakirdan/gomba/internal/config"
	"github.com/vovakirdan/gomba/internal/core"
	"github.com/vovakirdan/gomba/internal/physics"
)

func TestKillScore(t *testing.T) {
	tests := []struct {
		kind   Kind
		points int
		ok     bool
	}{
		{KindPatroller, 100, true},
		{KindAxePatroller, 200, true},
		{Kind(42), 0, false},
	}
	for _, tt := range tests {
		points, ok := KillScore(tt.kind)
		if points != tt.points || ok != tt.ok {
			t.Errorf("KillScore(%v) = (%d, %v), want (%d, %v)", tt.kind, points, ok, tt.points, tt.ok)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindPatroller, KindAxePatroller} {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = (%v, %v)", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("dragon"); ok {
		t.Error("unknown kind should not parse")
	}
}

func TestKillCheck(t *testing.T) {
	cfg := config.DefaultGombaConfig()
	body := &physics.Body{Category: physics.CategoryEnemy, Size: core.V(1, 1)}
	e := NewPatroller(1, core.V(0, 0), body, cfg)
	e.Initialize()

	tests := []struct {
		name   string
		bottom float64
		want   bool
	}{
		{"above", 0.1, true},
		{"level", 0, true},
		{"below", -0.1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newRunningPlayer(cfg, &recordingReferee{})
			p.Body().Pos.Y = tt.bottom + cfg.Player.Height/2
			if got := e.KillCheck(p); got != tt.want {
				t.Errorf("KillCheck with player bottom %v = %v, want %v", tt.bottom, got, tt.want)
			}
		})
	}
}

func TestKillEffectBouncesPlayer(t *testing.T) {
	cfg := config.DefaultGombaConfig()
	body := &physics.Body{Category: physics.CategoryEnemy, Size: core.V(1, 1)}
	e := NewPatroller(1, core.V(0, 0.5), body, cfg)

	p := newRunningPlayer(cfg, &recordingReferee{})
	p.Body().Vel = core.V(2, -7)
	e.KillEffect(p)

	want := cfg.Player.VerticalSpeed * 0.8
	if !approx(p.Velocity().Y, want) {
		t.Errorf("vertical velocity after kill = %v, want %v", p.Velocity().Y, want)
	}
	if p.Velocity().X != 2 {
		t.Errorf("kill effect should not change horizontal velocity, got %v", p.Velocity().X)
	}
}

func TestKillIsTerminal(t *testing.T) {
	cfg := config.DefaultGombaConfig()
	body := &physics.Body{Category: physics.CategoryEnemy, Size: core.V(1, 1)}
	e := NewPatroller(1, core.V(0, 0.5), body, cfg)
	e.Initialize()
	e.Resume()

	e.Kill()
	e.Kill()

	if !e.Killed() || !e.IsPaused() {
		t.Error("killed enemy should be marked and paused")
	}
	if e.ScaleY() != 0.5 {
		t.Errorf("scaleY = %v, want 0.5", e.ScaleY())
	}
	if e.Position().Y != 0.25 {
		t.Errorf("squashed y = %v, want 0.25", e.Position().Y)
	}
	if body.Enabled {
		t.Error("killed enemy's collider should be off")
	}
	if got := e.KillScorePosition(); got != core.V(0, 0.75) {
		t.Errorf("KillScorePosition() = %v", got)
	}
}
