package gomba

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/gomba/internal/config"
	"github.com/vovakirdan/gomba/internal/core"
	"github.com/vovakirdan/gomba/internal/physics"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// recordingReferee remembers every verdict it receives.
type recordingReferee struct {
	kills     []Enemy
	gameOvers int
	jumpOvers int
}

func (r *recordingReferee) SubmitKill(e Enemy)    { r.kills = append(r.kills, e) }
func (r *recordingReferee) SubmitGameOver()       { r.gameOvers++ }
func (r *recordingReferee) SubmitJumpOverCredit() { r.jumpOvers++ }

// recordingUI remembers every UI call it receives.
type recordingUI struct {
	scores []int
	starts int
	ends   int
	popups []Popup
}

func (u *recordingUI) UpdateScore(score int) { u.scores = append(u.scores, score) }
func (u *recordingUI) StartGameUI()          { u.starts++ }
func (u *recordingUI) EndGameUI()            { u.ends++ }
func (u *recordingUI) SpawnScorePopup(pos core.Vec2, amount int) {
	u.popups = append(u.popups, Popup{Pos: pos, Amount: amount})
}

func newPlayerBody(cfg config.GombaConfig) *physics.Body {
	return &physics.Body{
		Category: physics.CategoryPlayer,
		Size:     core.V(cfg.Player.Width, cfg.Player.Height),
		Dynamic:  true,
	}
}

// newRunningPlayer returns an initialized, resumed player outside any world.
func newRunningPlayer(cfg config.GombaConfig, ref Referee) *Player {
	p := NewPlayer(cfg, newPlayerBody(cfg), ref)
	p.Initialize()
	p.Resume()
	return p
}

// testRound is a coordinator wired to a real world and spawner.
type testRound struct {
	cfg     config.GombaConfig
	world   *physics.World
	player  *Player
	queue   *VerdictQueue
	spawner *WorldSpawner
	ui      *recordingUI
	round   *Coordinator
}

func newTestRound(cfg config.GombaConfig) *testRound {
	rng := rand.New(rand.NewSource(1))
	world := physics.NewWorld(physics.Config{Gravity: cfg.Physics.Gravity, MinX: cfg.Physics.MinX, MaxX: cfg.Physics.MaxX})
	body := newPlayerBody(cfg)
	world.Add(body)

	tr := &testRound{cfg: cfg, world: world, queue: NewVerdictQueue(), ui: &recordingUI{}}
	tr.player = NewPlayer(cfg, body, tr.queue)
	tr.spawner = NewWorldSpawner(world, cfg, tr.player, rng)
	tr.round = NewCoordinator(cfg, tr.player, tr.spawner, tr.ui, rng, nil)
	return tr
}

// singlePatrollerConfig has one patroller anchored at the origin.
func singlePatrollerConfig() config.GombaConfig {
	cfg := config.DefaultGombaConfig()
	cfg.Layout = []config.LayoutEntry{{Kind: "patroller", X: 0, Y: 0}}
	return cfg
}
