package gomba

import (
	"math"

	"github.com/vovakirdan/gomba/internal/config"
	"github.com/vovakirdan/gomba/internal/core"
)

// Autopilot is a scripted player for headless runs. It walks between the
// walls and jumps when an enemy is close ahead.
type Autopilot struct {
	minX, maxX float64
	lookahead  float64
	right      bool
	frame      core.InputFrame
}

// NewAutopilot creates an autopilot for a world with the given bounds.
func NewAutopilot(phys config.PhysicsConfig) *Autopilot {
	return &Autopilot{
		minX:      phys.MinX,
		maxX:      phys.MaxX,
		lookahead: 2.5,
		right:     true,
		frame:     core.NewInputFrame(),
	}
}

// Next returns the input for the next tick of g. The returned frame is
// reused by later calls.
func (a *Autopilot) Next(g *Game) core.InputFrame {
	a.frame.Clear()

	if !g.Round().Playing() {
		a.frame.Set(core.ActionConfirm)
		return a.frame
	}

	pos := g.Player().Position()
	switch {
	case a.right && pos.X > a.maxX-2:
		a.right = false
	case !a.right && pos.X < a.minX+2:
		a.right = true
	}

	if a.right {
		a.frame.Set(core.ActionRight)
	} else {
		a.frame.Set(core.ActionLeft)
	}

	for _, e := range g.Round().Enemies() {
		ahead := e.Position().X - pos.X
		if !a.right {
			ahead = -ahead
		}
		if ahead > 0 && ahead < a.lookahead && math.Abs(e.Position().Y-pos.Y) < 1.5 {
			a.frame.Set(core.ActionJump)
			break
		}
	}

	return a.frame
}
