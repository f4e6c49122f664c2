package gomba

import "math"

// timeEpsilon absorbs the rounding left by summing fixed ticks such as 1/60.
// A timer within timeEpsilon of its deadline counts as expired.
const timeEpsilon = 1e-9

// expired reports whether a countdown has run out.
func expired(remaining float64) bool {
	return remaining <= timeEpsilon
}

// PatrolWave is a triangle-wave oscillation around an anchor:
// 0 -> +A -> 0 -> -A -> 0 over one period.
type PatrolWave struct {
	Period    float64
	Amplitude float64
	elapsed   float64
}

// NewPatrolWave creates a wave at phase zero.
func NewPatrolWave(period, amplitude float64) PatrolWave {
	return PatrolWave{Period: period, Amplitude: amplitude}
}

// Reset rewinds the wave to phase zero.
func (w *PatrolWave) Reset() {
	w.elapsed = 0
}

// Advance moves the wave forward by dt, wrapping elapsed time into [0, Period).
func (w *PatrolWave) Advance(dt float64) {
	if w.Period <= 0 {
		return
	}
	w.elapsed = math.Mod(w.elapsed+dt, w.Period)
}

// Elapsed returns the time into the current period.
func (w PatrolWave) Elapsed() float64 {
	return w.elapsed
}

// Offset returns the displacement from the anchor at the current phase.
func (w PatrolWave) Offset() float64 {
	return TriangleOffset(w.elapsed, w.Period, w.Amplitude)
}

// MovingRight reports whether the wave is currently heading in +x.
func (w PatrolWave) MovingRight() bool {
	q := w.Period / 4
	return w.elapsed < q || w.elapsed >= w.Period-q
}

// TriangleOffset evaluates the patrol wave at time t in [0, period).
func TriangleOffset(t, period, amplitude float64) float64 {
	if period <= 0 {
		return 0
	}
	q := period / 4
	switch {
	case t < q:
		return t / q * amplitude
	case t < period-q:
		return -(t - 2*q) / q * amplitude
	default:
		return -(period - t) / q * amplitude
	}
}

// SwingAngle returns the weapon rotation in degrees after elapsed seconds of
// a swing. A clockwise swing starts at +amplitude and ends at -amplitude.
func SwingAngle(elapsed, period, amplitude float64, clockwise bool) float64 {
	dir := -1.0
	if clockwise {
		dir = 1.0
	}
	return amplitude * (0.5 - elapsed/period) * 2 * dir
}
