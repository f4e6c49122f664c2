package gomba

import (
	"github.com/vovakirdan/gomba/internal/config"
	"github.com/vovakirdan/gomba/internal/core"
	"github.com/vovakirdan/gomba/internal/physics"
)

// Patroller walks a fixed triangle-wave path around its spawn point.
// Jump-over credit for patrollers is tracked by the Player.
type Patroller struct {
	enemyBase
	wave PatrolWave
}

// NewPatroller creates an uninitialized patroller anchored at spawn.
func NewPatroller(id EnemyID, spawn core.Vec2, body *physics.Body, cfg config.GombaConfig) *Patroller {
	p := &Patroller{
		enemyBase: newEnemyBase(id, KindPatroller, spawn, body, cfg.Kill),
		wave:      NewPatrolWave(cfg.Patroller.Period, cfg.Patroller.Amplitude),
	}
	p.hooks = p
	return p
}

func (p *Patroller) onInitialize() {
	p.setCollidable(false)
	p.wave.Reset()
	p.resetTo(p.spawn)
	p.facingRight = true
}

func (p *Patroller) onPause()  { p.setCollidable(false) }
func (p *Patroller) onResume() { p.setCollidable(true) }

// Update advances the patrol.
func (p *Patroller) Update(dt float64) {
	if p.IsPaused() {
		return
	}
	p.wave.Advance(dt)
	p.setX(p.spawn.X + p.wave.Offset())
	p.facingRight = p.wave.MovingRight()
}

// Wave exposes the patrol phase.
func (p *Patroller) Wave() PatrolWave { return p.wave }
