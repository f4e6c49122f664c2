package gomba

import "math"

// Snapshot captures the game state for determinism testing.
// Positions are fixed-point (thousandths of a unit) so runs compare exactly.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Paused    bool
	Score     int
	PlayerX   int
	PlayerY   int
	CanJump   bool
	Countdown int
	Live      int
	Dying     int

	// Each live enemy is 5 ints: ID, Kind, X, Y, FacingRight
	EnemyData []int
}

func fixed(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	enemies := g.round.Enemies()
	data := make([]int, 0, len(enemies)*5)
	for _, e := range enemies {
		facing := 0
		if e.FacingRight() {
			facing = 1
		}
		pos := e.Position()
		data = append(data, int(e.ID()), int(e.Kind()), fixed(pos.X), fixed(pos.Y), facing)
	}

	pos := g.player.Position()
	return Snapshot{
		Tick:      g.tick,
		Phase:     g.round.Phase(),
		Paused:    g.round.Paused(),
		Score:     g.round.Score(),
		PlayerX:   fixed(pos.X),
		PlayerY:   fixed(pos.Y),
		CanJump:   g.player.CanJump(),
		Countdown: fixed(g.round.SpawnCountdown()),
		Live:      len(enemies),
		Dying:     len(g.round.Dying()),
		EnemyData: data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)     //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)   //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.CanJump)
	h = h*31 + uint64(snap.Countdown) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Live)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Dying)     //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
