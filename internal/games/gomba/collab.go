package gomba

import "github.com/vovakirdan/gomba/internal/core"

// UI is the rendering side of the round: the coordinator pushes score and
// panel changes and never reads anything back.
type UI interface {
	UpdateScore(score int)
	StartGameUI()
	EndGameUI()
	SpawnScorePopup(pos core.Vec2, amount int)
}

// Spawner instantiates enemies and tears them down. Returned enemies are
// uninitialized.
type Spawner interface {
	Spawn(kind Kind, pos core.Vec2) (Enemy, bool)
	Destroy(e Enemy)
}
