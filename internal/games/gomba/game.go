package gomba

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gomba/internal/config"
	"github.com/vovakirdan/gomba/internal/core"
	"github.com/vovakirdan/gomba/internal/physics"
)

// Game adapts the gameplay core to the platform's fixed-tick loop.
type Game struct {
	cfg     config.GombaConfig
	log     *log.Logger
	runtime core.RuntimeConfig

	world   *physics.World
	player  *Player
	spawner *WorldSpawner
	queue   *VerdictQueue
	hud     *HUD
	round   *Coordinator

	tick    uint64
	rounds  int
	cameraX float64
}

// New creates a game using cfg. A nil logger discards output.
func New(cfg config.GombaConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, log: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "gomba"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Gomba"
}

// Reset rebuilds the world and returns to the title panel.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	rng := rand.New(rand.NewSource(runtime.Seed))

	phys := g.cfg.Physics
	g.world = physics.NewWorld(physics.Config{
		Gravity:      phys.Gravity,
		MaxFallSpeed: phys.MaxFallSpeed,
		MinX:         phys.MinX,
		MaxX:         phys.MaxX,
	})
	g.world.Add(&physics.Body{
		Category: physics.CategoryGround,
		Pos:      core.V((phys.MinX+phys.MaxX)/2, phys.GroundY-0.5),
		Size:     core.V(phys.MaxX-phys.MinX, 1),
		Enabled:  true,
	})

	playerBody := &physics.Body{
		Category: physics.CategoryPlayer,
		Size:     core.V(g.cfg.Player.Width, g.cfg.Player.Height),
		Dynamic:  true,
	}
	g.world.Add(playerBody)

	g.queue = NewVerdictQueue()
	g.player = NewPlayer(g.cfg, playerBody, g.queue)
	g.player.Initialize()
	g.spawner = NewWorldSpawner(g.world, g.cfg, g.player, rng)
	g.hud = NewHUD(g.cfg.Kill.PopupDuration)
	g.round = NewCoordinator(g.cfg, g.player, g.spawner, g.hud, rng, g.log)

	g.tick = 0
	g.rounds = 0
	g.cameraX = g.player.Position().X
}

// Start begins a new round, exactly like the start button.
func (g *Game) Start() {
	g.round.StartGame()
	g.rounds++
	g.tick = 0
	g.log.Info("round started", "round", g.rounds, "seed", g.runtime.Seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	dt := g.runtime.TickDelta()

	if !g.round.Playing() {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.Start()
		}
		g.round.Tick(dt)
		g.hud.Tick(dt)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.round.SetPaused(!g.round.Paused())
	}
	if g.round.Paused() {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	enemies := g.round.Enemies()

	// 1. enemy motion and timers
	for _, e := range enemies {
		e.Update(dt)
	}

	// 2. player motion and jump-over bookkeeping
	g.player.Update(dt, in)
	g.player.CheckJumpOvers(enemies)

	// 3. contacts
	playerID := g.player.Body().ID
	for _, c := range g.world.Step(dt) {
		if c.Subject == playerID {
			g.player.HandleContact(c, g.spawner)
		}
	}

	// 4. verdicts
	g.queue.Flush(g.round)
	if !g.round.Playing() {
		stats := g.round.Stats()
		g.log.Info("round over", "round", g.rounds, "score", stats.Score,
			"kills", stats.PatrollerKills+stats.AxePatrollerKills, "duration", stats.Duration)
	}

	// 5. spawn cadence
	g.round.Tick(dt)
	g.hud.Tick(dt)

	g.cameraX = g.player.Position().X
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.round.Score(),
		Playing:  g.round.Playing(),
		GameOver: g.round.Phase() == PhaseGameOver,
		Paused:   g.round.Paused(),
	}
}

// Stats returns the statistics of the current or last round.
func (g *Game) Stats() RoundStats {
	return g.round.Stats()
}

// Round exposes the coordinator.
func (g *Game) Round() *Coordinator { return g.round }

// Player exposes the player.
func (g *Game) Player() *Player { return g.player }

// HUD exposes the in-game UI.
func (g *Game) HUD() *HUD { return g.hud }

// Tick returns the number of simulated ticks in the current round.
func (g *Game) Tick() uint64 { return g.tick }
