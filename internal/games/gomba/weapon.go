package gomba

import (
	"math"

	"github.com/vovakirdan/gomba/internal/config"
	"github.com/vovakirdan/gomba/internal/core"
	"github.com/vovakirdan/gomba/internal/physics"
)

// Axe is the swinging weapon carried by an AxePatroller. A swing is a timed
// one-shot: it starts at one extreme, sweeps through upright to the other
// and deactivates itself once the swing period has elapsed.
type Axe struct {
	lifecycle

	cfg  config.AxeConfig
	body *physics.Body

	pivot       core.Vec2
	active      bool
	clockwise   bool
	elapsed     float64
	rotation    float64 // degrees, positive tilts the head to the left
	activations int
}

// NewAxe creates an axe whose hitbox is the given trigger body.
func NewAxe(cfg config.AxeConfig, body *physics.Body) *Axe {
	a := &Axe{cfg: cfg, body: body}
	a.hooks = a
	return a
}

func (a *Axe) onInitialize() {
	a.active = false
	a.clockwise = false
	a.elapsed = 0
	a.rotation = 0
	a.body.Enabled = false
	a.place()
}

// Pausing hides the hitbox but keeps swing progress.
func (a *Axe) onPause() {
	a.body.Enabled = false
}

func (a *Axe) onResume() {
	a.body.Enabled = a.active
}

// Activate starts a swing. It is rejected while paused or mid-swing.
func (a *Axe) Activate(clockwise bool) bool {
	if a.IsPaused() || a.active {
		return false
	}
	a.active = true
	a.clockwise = clockwise
	a.elapsed = 0
	a.rotation = SwingAngle(0, a.cfg.SwingPeriod, a.cfg.SwingAmplitude, clockwise)
	a.activations++
	a.body.Enabled = true
	a.place()
	return true
}

// Tick advances an active swing by dt.
func (a *Axe) Tick(dt float64) {
	if a.IsPaused() || !a.active {
		return
	}
	a.elapsed += dt
	if expired(a.cfg.SwingPeriod - a.elapsed) {
		a.deactivate()
		return
	}
	a.rotation = SwingAngle(a.elapsed, a.cfg.SwingPeriod, a.cfg.SwingAmplitude, a.clockwise)
	a.place()
}

func (a *Axe) deactivate() {
	a.active = false
	a.body.Enabled = false
}

// Follow moves the pivot with the carrier.
func (a *Axe) Follow(pivot core.Vec2) {
	a.pivot = pivot
	a.place()
}

// place puts the hitbox at the axe head.
func (a *Axe) place() {
	rad := a.rotation * math.Pi / 180
	a.body.Pos = a.pivot.Add(core.V(-math.Sin(rad)*a.cfg.Reach, math.Cos(rad)*a.cfg.Reach))
}

// Active reports whether a swing is in progress.
func (a *Axe) Active() bool { return a.active }

// Clockwise reports the direction of the current or last swing.
func (a *Axe) Clockwise() bool { return a.clockwise }

// Elapsed returns the time into the current swing.
func (a *Axe) Elapsed() float64 { return a.elapsed }

// Rotation returns the current angle in degrees.
func (a *Axe) Rotation() float64 { return a.rotation }

// Activations counts accepted swings since construction.
func (a *Axe) Activations() int { return a.activations }

// HitboxEnabled reports whether the weapon can currently hit anything.
func (a *Axe) HitboxEnabled() bool { return a.body.Enabled }

// Body returns the hitbox body.
func (a *Axe) Body() *physics.Body { return a.body }
