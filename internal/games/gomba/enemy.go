package gomba

import (
	"github.com/vovakirdan/gomba/internal/config"
	"github.com/vovakirdan/gomba/internal/core"
	"github.com/vovakirdan/gomba/internal/physics"
)

// Kind is the closed set of enemy variants.
type Kind int

const (
	KindPatroller Kind = iota
	KindAxePatroller
)

// String returns the config name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPatroller:
		return "patroller"
	case KindAxePatroller:
		return "axe_patroller"
	default:
		return "unknown"
	}
}

// ParseKind maps a layout name to a kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "patroller":
		return KindPatroller, true
	case "axe_patroller":
		return KindAxePatroller, true
	default:
		return 0, false
	}
}

// KillScore returns the points awarded for killing an enemy of the given
// kind. Unknown kinds are worth nothing and report false.
func KillScore(k Kind) (int, bool) {
	switch k {
	case KindPatroller:
		return 100, true
	case KindAxePatroller:
		return 200, true
	default:
		return 0, false
	}
}

// EnemyID is a stable per-game enemy handle.
type EnemyID uint32

// Enemy is the behaviour shared by every enemy kind.
type Enemy interface {
	Actor

	ID() EnemyID
	Kind() Kind
	Position() core.Vec2
	FacingRight() bool
	Killed() bool
	ScaleY() float64
	Body() *physics.Body

	// Update advances movement and timers by dt. It does nothing while paused.
	Update(dt float64)

	// KillCheck reports whether the player killed the enemy (true) or the
	// enemy killed the player (false).
	KillCheck(p *Player) bool

	// KillEffect applies the kill reaction to the player.
	KillEffect(p *Player)

	// Kill freezes and squashes the enemy. It is terminal.
	Kill()

	// KillScorePosition is where the score popup appears.
	KillScorePosition() core.Vec2
}

// enemyBase holds the state and kill policy shared by both kinds.
type enemyBase struct {
	lifecycle

	id          EnemyID
	kind        Kind
	spawn       core.Vec2
	body        *physics.Body
	kill        config.KillConfig
	facingRight bool
	killed      bool
	scaleY      float64
}

func newEnemyBase(id EnemyID, kind Kind, spawn core.Vec2, body *physics.Body, kill config.KillConfig) enemyBase {
	return enemyBase{
		id:     id,
		kind:   kind,
		spawn:  spawn,
		body:   body,
		kill:   kill,
		scaleY: 1,
	}
}

func (e *enemyBase) ID() EnemyID           { return e.id }
func (e *enemyBase) Kind() Kind            { return e.kind }
func (e *enemyBase) Position() core.Vec2   { return e.body.Pos }
func (e *enemyBase) FacingRight() bool     { return e.facingRight }
func (e *enemyBase) Killed() bool          { return e.killed }
func (e *enemyBase) ScaleY() float64       { return e.scaleY }
func (e *enemyBase) Body() *physics.Body   { return e.body }
func (e *enemyBase) Spawn() core.Vec2      { return e.spawn }
func (e *enemyBase) setX(x float64)        { e.body.Pos.X = x }
func (e *enemyBase) resetTo(pos core.Vec2) { e.body.Teleport(pos) }
func (e *enemyBase) setCollidable(on bool) { e.body.Enabled = on }

// KillCheck passes when the player's bottom is at or above the enemy anchor.
func (e *enemyBase) KillCheck(p *Player) bool {
	return p.Bottom()-e.body.Pos.Y >= 0
}

// KillEffect bounces the player upward.
func (e *enemyBase) KillEffect(p *Player) {
	p.Bounce(e.kill.BounceFactor)
}

// Kill pauses the enemy and squashes it in place.
func (e *enemyBase) Kill() {
	if e.killed {
		return
	}
	e.killed = true
	e.Pause()
	e.scaleY = e.kill.SquashScale
	e.body.Pos.Y -= e.kill.SquashDrop
}

// KillScorePosition is just above the enemy.
func (e *enemyBase) KillScorePosition() core.Vec2 {
	return e.body.Pos.Add(core.V(0, e.kill.PopupOffset))
}
