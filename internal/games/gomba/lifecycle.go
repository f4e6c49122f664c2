// Package gomba implements the gameplay core of a side-scrolling platformer:
// a player, two enemy kinds and the round coordinator that resolves kills,
// deaths and score exactly once per event.
//
// Every actor shares the same lifecycle: it is initialized into the paused
// state, resumed when a round starts and paused when the round ends. No
// gameplay update runs while an actor is paused.
package gomba

// LifecycleState is the pause/run state shared by every actor.
type LifecycleState int

const (
	StateUninitialized LifecycleState = iota
	StatePaused
	StateRunning
)

// String returns a human-readable name for the state.
func (s LifecycleState) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateRunning:
		return "running"
	default:
		return "uninitialized"
	}
}

// Actor is the capability every game-world object implements.
type Actor interface {
	Initialize()
	Pause()
	Resume()
	IsPaused() bool
}

// hooks are the per-actor reactions to lifecycle transitions.
type hooks interface {
	onInitialize()
	onPause()
	onResume()
}

// lifecycle is embedded by concrete actors. The owner must set hooks to
// itself before the first transition.
type lifecycle struct {
	state LifecycleState
	hooks hooks
}

// Initialize pauses the actor and then resets it. The actor ends up paused.
func (l *lifecycle) Initialize() {
	l.Pause()
	l.hooks.onInitialize()
}

// Pause stops the actor. The pause hook runs only on Running -> Paused.
func (l *lifecycle) Pause() {
	if l.state == StateRunning {
		l.hooks.onPause()
	}
	l.state = StatePaused
}

// Resume restarts a paused actor. The resume hook runs only on
// Paused -> Running; an uninitialized actor cannot be resumed.
func (l *lifecycle) Resume() {
	if l.state != StatePaused {
		return
	}
	l.hooks.onResume()
	l.state = StateRunning
}

// IsPaused reports whether gameplay updates are suspended.
func (l *lifecycle) IsPaused() bool {
	return l.state != StateRunning
}

// State returns the current lifecycle state.
func (l *lifecycle) State() LifecycleState {
	return l.state
}
