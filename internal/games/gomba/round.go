package gomba

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gomba/internal/config"
	"github.com/vovakirdan/gomba/internal/core"
)

// Phase is the round state machine: Idle -> Playing -> GameOver -> Playing.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "idle"
	}
}

// RoundStats summarizes one round.
type RoundStats struct {
	Score             int
	PatrollerKills    int
	AxePatrollerKills int
	JumpOvers         int
	Spawned           int
	Duration          float64 // simulated seconds
}

type layoutSlot struct {
	kind Kind
	pos  core.Vec2
}

type dyingEnemy struct {
	enemy     Enemy
	remaining float64
}

// Coordinator owns the live-enemy set and the score. It is the only writer
// of either and resolves every verdict at most once.
type Coordinator struct {
	cfg     config.RoundConfig
	kill    config.KillConfig
	player  *Player
	spawner Spawner
	ui      UI
	rng     *rand.Rand
	log     *log.Logger

	layout []layoutSlot

	phase     Phase
	suspended bool
	score     int
	countdown float64

	live  map[EnemyID]Enemy
	order []EnemyID
	dying []dyingEnemy
	stats RoundStats
}

// NewCoordinator wires a coordinator. Layout entries with unknown kinds are
// logged and skipped. A nil logger discards output.
func NewCoordinator(cfg config.GombaConfig, player *Player, spawner Spawner, ui UI, rng *rand.Rand, logger *log.Logger) *Coordinator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Coordinator{
		cfg:     cfg.Round,
		kill:    cfg.Kill,
		player:  player,
		spawner: spawner,
		ui:      ui,
		rng:     rng,
		log:     logger,
		live:    make(map[EnemyID]Enemy),
	}
	for _, entry := range cfg.Layout {
		kind, ok := ParseKind(entry.Kind)
		if !ok {
			logger.Warn("skipping layout entry", "kind", entry.Kind, "x", entry.X, "y", entry.Y)
			continue
		}
		c.layout = append(c.layout, layoutSlot{kind: kind, pos: core.V(entry.X, entry.Y)})
	}
	return c
}

// StartGame tears down every enemy, rebuilds the initial layout and starts
// a fresh round.
func (c *Coordinator) StartGame() {
	c.phase = PhasePlaying
	c.suspended = false
	c.score = 0
	c.countdown = c.cfg.CheckoffTime
	c.stats = RoundStats{}

	for _, id := range c.order {
		c.spawner.Destroy(c.live[id])
	}
	for _, d := range c.dying {
		c.spawner.Destroy(d.enemy)
	}
	c.live = make(map[EnemyID]Enemy)
	c.order = nil
	c.dying = nil

	for _, slot := range c.layout {
		e, ok := c.spawner.Spawn(slot.kind, slot.pos)
		if !ok {
			c.log.Warn("spawner rejected layout enemy", "kind", slot.kind)
			continue
		}
		c.add(e)
	}

	c.player.Initialize()
	c.player.Resume()
	for _, id := range c.order {
		e := c.live[id]
		e.Initialize()
		e.Resume()
	}

	c.ui.StartGameUI()
	c.log.Debug("round started", "enemies", len(c.order))
}

// SubmitGameOver freezes the player and every live enemy.
func (c *Coordinator) SubmitGameOver() {
	if c.phase != PhasePlaying {
		return
	}
	c.player.Pause()
	for _, id := range c.order {
		c.live[id].Pause()
	}
	c.phase = PhaseGameOver
	c.stats.Score = c.score
	c.ui.EndGameUI()
	c.log.Debug("game over", "score", c.score, "duration", c.stats.Duration)
}

// SubmitKill removes e from the live set, runs its kill sequence and credits
// its kind's score. Enemies no longer live are ignored.
func (c *Coordinator) SubmitKill(e Enemy) {
	if c.phase != PhasePlaying || e == nil {
		return
	}
	if _, ok := c.live[e.ID()]; !ok {
		return
	}
	c.remove(e.ID())

	pos := e.KillScorePosition()
	e.Kill()
	c.dying = append(c.dying, dyingEnemy{enemy: e, remaining: c.kill.RemovalDelay})

	switch e.Kind() {
	case KindPatroller:
		c.stats.PatrollerKills++
	case KindAxePatroller:
		c.stats.AxePatrollerKills++
	}

	points, ok := KillScore(e.Kind())
	if !ok {
		c.log.Warn("no kill score for enemy kind", "kind", e.Kind(), "id", e.ID())
		return
	}
	c.addScore(points)
	c.ui.SpawnScorePopup(pos, points)
	c.log.Debug("enemy killed", "id", e.ID(), "kind", e.Kind(), "points", points)
}

// SubmitJumpOverCredit awards the jump-over bonus.
func (c *Coordinator) SubmitJumpOverCredit() {
	if c.phase != PhasePlaying {
		return
	}
	c.stats.JumpOvers++
	c.addScore(c.cfg.JumpOverPoints)
}

func (c *Coordinator) addScore(points int) {
	c.score += points
	c.stats.Score = c.score
	c.ui.UpdateScore(c.score)
}

// Tick removes squashed enemies whose delay ran out and, while playing,
// drives the spawn cadence.
func (c *Coordinator) Tick(dt float64) {
	if c.suspended {
		return
	}
	c.reapDying(dt)

	if c.phase != PhasePlaying {
		return
	}
	c.stats.Duration += dt
	c.countdown -= dt
	if !expired(c.countdown) {
		return
	}
	c.countdown = c.cfg.SpawnInterval
	c.spawnRecurring()
}

func (c *Coordinator) reapDying(dt float64) {
	kept := c.dying[:0]
	for _, d := range c.dying {
		d.remaining -= dt
		if expired(d.remaining) {
			c.spawner.Destroy(d.enemy)
			continue
		}
		kept = append(kept, d)
	}
	c.dying = kept
}

func (c *Coordinator) spawnRecurring() {
	if len(c.cfg.SpawnLocations) == 0 {
		c.log.Warn("no spawn locations configured")
		return
	}
	loc := c.cfg.SpawnLocations[c.rng.Intn(len(c.cfg.SpawnLocations))]
	e, ok := c.spawner.Spawn(KindAxePatroller, core.V(loc.X, loc.Y))
	if !ok {
		return
	}
	c.add(e)
	e.Initialize()
	e.Resume()
	c.stats.Spawned++
	c.log.Debug("enemy spawned", "id", e.ID(), "x", loc.X, "y", loc.Y)
}

func (c *Coordinator) add(e Enemy) {
	c.live[e.ID()] = e
	c.order = append(c.order, e.ID())
}

func (c *Coordinator) remove(id EnemyID) {
	delete(c.live, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// SetPaused suspends or resumes a round in progress. Every actor is paused
// through its lifecycle, so resuming restores the exact pre-pause state.
func (c *Coordinator) SetPaused(paused bool) {
	if c.phase != PhasePlaying || paused == c.suspended {
		return
	}
	c.suspended = paused
	if paused {
		c.player.Pause()
		for _, id := range c.order {
			c.live[id].Pause()
		}
		return
	}
	c.player.Resume()
	for _, id := range c.order {
		c.live[id].Resume()
	}
}

// Enemies returns the live enemies in spawn order. The slice is a copy.
func (c *Coordinator) Enemies() []Enemy {
	out := make([]Enemy, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.live[id])
	}
	return out
}

// Dying returns killed enemies waiting for removal.
func (c *Coordinator) Dying() []Enemy {
	out := make([]Enemy, 0, len(c.dying))
	for _, d := range c.dying {
		out = append(out, d.enemy)
	}
	return out
}

// IsLive reports whether id is in the live set.
func (c *Coordinator) IsLive(id EnemyID) bool {
	_, ok := c.live[id]
	return ok
}

func (c *Coordinator) Phase() Phase            { return c.phase }
func (c *Coordinator) Playing() bool           { return c.phase == PhasePlaying }
func (c *Coordinator) Paused() bool            { return c.suspended }
func (c *Coordinator) Score() int              { return c.score }
func (c *Coordinator) SpawnCountdown() float64 { return c.countdown }
func (c *Coordinator) Stats() RoundStats       { return c.stats }
func (c *Coordinator) LiveCount() int          { return len(c.order) }
