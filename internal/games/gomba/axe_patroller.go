package gomba

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/gomba/internal/config"
	"github.com/vovakirdan/gomba/internal/core"
	"github.com/vovakirdan/gomba/internal/physics"
)

// AxePatroller chases the player horizontally and swings its axe when the
// player comes over it.
type AxePatroller struct {
	enemyBase

	cfg    config.AxePatrollerConfig
	axe    *Axe
	target *Player
	rng    *rand.Rand

	speed       float64
	movingRight bool
	armed       bool // direction switch allowed once the player was close
	reload      float64
}

// NewAxePatroller creates an uninitialized axe patroller that hunts target.
func NewAxePatroller(id EnemyID, spawn core.Vec2, body *physics.Body, axe *Axe, target *Player, rng *rand.Rand, cfg config.GombaConfig) *AxePatroller {
	a := &AxePatroller{
		enemyBase: newEnemyBase(id, KindAxePatroller, spawn, body, cfg.Kill),
		cfg:       cfg.AxePatroller,
		axe:       axe,
		target:    target,
		rng:       rng,
	}
	a.hooks = a
	return a
}

func (a *AxePatroller) onInitialize() {
	a.setCollidable(false)
	a.resetTo(a.spawn)
	a.axe.Initialize()
	a.axe.Follow(a.body.Pos)
	a.reload = 0
	a.armed = false
	a.movingRight = a.target.Position().X > a.body.Pos.X
	a.facingRight = a.movingRight
	a.speed = a.cfg.BaseSpeed + (a.rng.Float64()-0.5)*a.cfg.SpeedVariation
}

func (a *AxePatroller) onPause() {
	a.setCollidable(false)
	a.axe.Pause()
}

func (a *AxePatroller) onResume() {
	a.setCollidable(true)
	a.axe.Resume()
}

// Update moves toward the player, ticks the reload timer and the swing.
func (a *AxePatroller) Update(dt float64) {
	if a.IsPaused() {
		return
	}
	a.move(dt)
	a.checkAxeTrigger(dt)
	a.axe.Tick(dt)
	a.axe.Follow(a.body.Pos)
}

func (a *AxePatroller) direction() float64 {
	if a.movingRight {
		return 1
	}
	return -1
}

// move applies the chase policy. Coming within SwitchableDistance arms a
// turn; the turn fires once the enemy has run more than SwitchDistance past
// the player, and the next approach re-arms it.
func (a *AxePatroller) move(dt float64) {
	dx := a.body.Pos.X - a.target.Position().X
	if math.Abs(dx) <= a.cfg.SwitchableDistance {
		a.armed = true
	}
	if a.armed && dx*a.direction() > a.cfg.SwitchDistance {
		a.movingRight = !a.movingRight
		a.armed = false
	}
	a.facingRight = a.movingRight
	a.setX(a.body.Pos.X + a.speed*dt*a.direction())
}

// checkAxeTrigger swings at a player hovering over the enemy.
func (a *AxePatroller) checkAxeTrigger(dt float64) {
	if !expired(a.reload) {
		a.reload -= dt
	}
	if !expired(a.reload) {
		return
	}
	pos, target := a.body.Pos, a.target.Position()
	inRange := math.Abs(pos.X-target.X) <= a.cfg.ActivateXRange &&
		pos.Y < target.Y &&
		target.Y-pos.Y < a.cfg.ActivateYRange
	if !inRange {
		return
	}
	if a.axe.Activate(target.X > pos.X) {
		a.reload = a.cfg.ReloadTime
	}
}

// Axe returns the carried weapon.
func (a *AxePatroller) Axe() *Axe { return a.axe }

// Speed returns the per-instance movement speed.
func (a *AxePatroller) Speed() float64 { return a.speed }

// MovingRight reports the current chase direction.
func (a *AxePatroller) MovingRight() bool { return a.movingRight }

// Reloading reports whether the axe is still on cooldown.
func (a *AxePatroller) Reloading() bool { return !expired(a.reload) }
