package gomba

import (
	"math/rand"

	"github.com/vovakirdan/gomba/internal/config"
	"github.com/vovakirdan/gomba/internal/core"
	"github.com/vovakirdan/gomba/internal/physics"
)

// WorldSpawner builds enemies backed by bodies in a physics world and keeps
// the body-to-enemy index used to resolve contacts.
type WorldSpawner struct {
	world  *physics.World
	cfg    config.GombaConfig
	target *Player
	rng    *rand.Rand

	nextID EnemyID
	byBody map[physics.BodyID]Enemy
}

// NewWorldSpawner creates a spawner. Axe patrollers hunt target and draw
// their speed from rng.
func NewWorldSpawner(world *physics.World, cfg config.GombaConfig, target *Player, rng *rand.Rand) *WorldSpawner {
	return &WorldSpawner{
		world:  world,
		cfg:    cfg,
		target: target,
		rng:    rng,
		byBody: make(map[physics.BodyID]Enemy),
	}
}

// Spawn creates an uninitialized enemy of the given kind at pos.
func (s *WorldSpawner) Spawn(kind Kind, pos core.Vec2) (Enemy, bool) {
	s.nextID++
	id := s.nextID

	switch kind {
	case KindPatroller:
		body := s.enemyBody(pos, s.cfg.Patroller.Width, s.cfg.Patroller.Height)
		e := NewPatroller(id, pos, body, s.cfg)
		s.byBody[body.ID] = e
		return e, true
	case KindAxePatroller:
		body := s.enemyBody(pos, s.cfg.AxePatroller.Width, s.cfg.AxePatroller.Height)
		hitbox := &physics.Body{
			Category: physics.CategoryEnemyWeapon,
			Pos:      pos,
			Size:     core.V(s.cfg.Axe.Width, s.cfg.Axe.Height),
			Trigger:  true,
		}
		s.world.Add(hitbox)
		e := NewAxePatroller(id, pos, body, NewAxe(s.cfg.Axe, hitbox), s.target, s.rng, s.cfg)
		s.byBody[body.ID] = e
		return e, true
	default:
		return nil, false
	}
}

func (s *WorldSpawner) enemyBody(pos core.Vec2, w, h float64) *physics.Body {
	body := &physics.Body{
		Category: physics.CategoryEnemy,
		Pos:      pos,
		Size:     core.V(w, h),
	}
	s.world.Add(body)
	return body
}

// Destroy removes the enemy's bodies from the world.
func (s *WorldSpawner) Destroy(e Enemy) {
	if e == nil {
		return
	}
	body := e.Body()
	delete(s.byBody, body.ID)
	s.world.Remove(body.ID)
	if a, ok := e.(*AxePatroller); ok {
		s.world.Remove(a.Axe().Body().ID)
	}
}

// EnemyByBody resolves the enemy owning a body.
func (s *WorldSpawner) EnemyByBody(id physics.BodyID) (Enemy, bool) {
	e, ok := s.byBody[id]
	return e, ok
}
