package gomba

import (
	"math"

	"github.com/vovakirdan/gomba/internal/config"
	"github.com/vovakirdan/gomba/internal/core"
	"github.com/vovakirdan/gomba/internal/physics"
)

// EnemyLookup resolves the enemy owning a physics body.
type EnemyLookup interface {
	EnemyByBody(id physics.BodyID) (Enemy, bool)
}

// Player is the controllable character. Horizontal movement is driven by
// input; vertical movement is left to the physics world apart from the jump
// impulse.
type Player struct {
	lifecycle

	cfg      config.PlayerConfig
	jumpOver config.PatrollerConfig
	body     *physics.Body
	referee  Referee

	spawn       core.Vec2
	savedVel    core.Vec2
	canJump     bool
	facingRight bool
	jumpedOver  map[EnemyID]struct{}
}

// NewPlayer creates an uninitialized player. Verdicts go to referee.
func NewPlayer(cfg config.GombaConfig, body *physics.Body, referee Referee) *Player {
	p := &Player{
		cfg:         cfg.Player,
		jumpOver:    cfg.Patroller,
		body:        body,
		referee:     referee,
		spawn:       core.V(cfg.Player.Spawn.X, cfg.Player.Spawn.Y),
		facingRight: true,
		jumpedOver:  make(map[EnemyID]struct{}),
	}
	p.hooks = p
	return p
}

func (p *Player) onInitialize() {
	p.body.Enabled = false
	p.body.Kinematic = true
	p.body.Teleport(p.spawn)
	p.savedVel = core.Vec2{}
	p.canJump = false
	p.facingRight = true
	p.jumpedOver = make(map[EnemyID]struct{})
}

func (p *Player) onPause() {
	p.body.Enabled = false
	p.body.Kinematic = true
	p.savedVel = p.body.Vel
	p.body.Vel = core.Vec2{}
}

func (p *Player) onResume() {
	p.body.Enabled = true
	p.body.Kinematic = false
	p.body.Vel = p.savedVel
}

// HorizontalSign is -1, 0 or 1 from the movement keys; 0 when both or
// neither are held.
func HorizontalSign(in core.InputFrame) float64 {
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left == right:
		return 0
	case right:
		return 1
	default:
		return -1
	}
}

// Update moves the player horizontally and fires a jump when allowed.
func (p *Player) Update(dt float64, in core.InputFrame) {
	if p.IsPaused() {
		return
	}
	sign := HorizontalSign(in)
	p.body.Pos.X += sign * p.cfg.HorizontalSpeed * dt
	if sign != 0 {
		p.facingRight = sign > 0
	}

	if in.Has(core.ActionJump) && p.canJump {
		p.canJump = false
		p.body.Vel.Y += p.cfg.VerticalSpeed
	}
}

// CheckJumpOvers credits patrollers cleared during the current jump arc.
// Each patroller is credited at most once until the player lands.
func (p *Player) CheckJumpOvers(enemies []Enemy) {
	if p.IsPaused() {
		return
	}
	pos := p.body.Pos
	for _, e := range enemies {
		if e.Kind() != KindPatroller || e.IsPaused() {
			continue
		}
		ep := e.Position()
		dx := math.Abs(pos.X - ep.X)
		if dx >= p.jumpOver.JumpOverX || pos.Y <= ep.Y+p.jumpOver.JumpOverY {
			continue
		}
		if p.tryAddJumpedOver(e.ID()) {
			p.referee.SubmitJumpOverCredit()
		}
	}
}

func (p *Player) tryAddJumpedOver(id EnemyID) bool {
	if _, ok := p.jumpedOver[id]; ok {
		return false
	}
	p.jumpedOver[id] = struct{}{}
	return true
}

// HandleContact resolves a contact that began between the player and
// another body.
func (p *Player) HandleContact(c physics.Contact, enemies EnemyLookup) {
	switch c.OtherCategory {
	case physics.CategoryGround:
		p.canJump = true
		clear(p.jumpedOver)
	case physics.CategoryEnemy:
		e, ok := enemies.EnemyByBody(c.Other)
		if !ok {
			return
		}
		if e.KillCheck(p) {
			// The bounce is applied now even if an earlier verdict this tick
			// ends the round; the next StartGame reinitializes the player.
			e.KillEffect(p)
			p.referee.SubmitKill(e)
		} else {
			p.referee.SubmitGameOver()
		}
	case physics.CategoryEnemyWeapon:
		if p.IsPaused() {
			return
		}
		p.referee.SubmitGameOver()
	}
}

// Bounce sets the vertical velocity to factor times the jump speed.
func (p *Player) Bounce(factor float64) {
	p.body.Vel.Y = p.cfg.VerticalSpeed * factor
}

// Bottom returns the y of the bottom edge of the player's collider.
func (p *Player) Bottom() float64 {
	return p.body.Box().Bottom()
}

// Position returns the player's center.
func (p *Player) Position() core.Vec2 { return p.body.Pos }

// Velocity returns the player's current velocity.
func (p *Player) Velocity() core.Vec2 { return p.body.Vel }

// CanJump reports whether the next jump press fires.
func (p *Player) CanJump() bool { return p.canJump }

// FacingRight reports the direction of the last horizontal input.
func (p *Player) FacingRight() bool { return p.facingRight }

// JumpedOver reports whether the patroller was credited this arc.
func (p *Player) JumpedOver(id EnemyID) bool {
	_, ok := p.jumpedOver[id]
	return ok
}

// Body returns the player's physics body.
func (p *Player) Body() *physics.Body { return p.body }
