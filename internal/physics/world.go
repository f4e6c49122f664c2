// Package physics is the minimal physics collaborator the gameplay core runs
// against. It integrates gravity for dynamic bodies, lands them on ground
// bodies, clamps them to the level walls and reports contact-begin events.
// It does not resolve collisions between non-ground bodies: the core decides
// what a contact means.
package physics

import (
	"sort"

	"github.com/vovakirdan/gomba/internal/core"
)

// Category classifies the other party of a contact.
type Category int

const (
	CategoryOther Category = iota
	CategoryGround
	CategoryEnemy
	CategoryEnemyWeapon
	CategoryWall
	CategoryPlayer
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryGround:
		return "ground"
	case CategoryEnemy:
		return "enemy"
	case CategoryEnemyWeapon:
		return "enemy_weapon"
	case CategoryWall:
		return "wall"
	case CategoryPlayer:
		return "player"
	default:
		return "other"
	}
}

// BodyID identifies a body within a World.
type BodyID uint32

// Body is a box collider owned by a game actor. Actors mutate Pos and Vel
// directly; the world only reads them and applies gravity to dynamic bodies.
type Body struct {
	ID       BodyID
	Category Category
	Pos      core.Vec2 // center
	Size     core.Vec2
	Vel      core.Vec2

	// Dynamic bodies are subject to gravity unless Kinematic is set.
	Dynamic   bool
	Kinematic bool

	// Disabled colliders produce no contacts.
	Enabled bool

	// Trigger colliders only report overlap; they never land anything.
	Trigger bool

	teleported bool
}

// Box returns the body's bounding box.
func (b *Body) Box() core.Box {
	return core.NewBox(b.Pos, b.Size)
}

// Teleport moves the body, zeroes its velocity and breaks contact continuity:
// contacts that still hold after the move begin again on the next step.
func (b *Body) Teleport(pos core.Vec2) {
	b.Pos = pos
	b.Vel = core.Vec2{}
	b.teleported = true
}

// Contact is a contact-begin event between a dynamic subject and another body.
type Contact struct {
	Subject       BodyID
	Other         BodyID
	OtherCategory Category
}

// Config holds world-wide parameters.
type Config struct {
	Gravity      float64
	MaxFallSpeed float64
	MinX, MaxX   float64 // level walls
}

// groundTolerance absorbs rounding when a body rests exactly on a ground top.
const groundTolerance = 1e-9

type pair struct {
	a, b BodyID
}

// World owns the set of registered bodies.
type World struct {
	cfg      Config
	nextID   BodyID
	bodies   map[BodyID]*Body
	touching map[pair]bool
	walled   map[BodyID]bool
	grounded map[BodyID]BodyID
}

// NewWorld creates an empty world.
func NewWorld(cfg Config) *World {
	return &World{
		cfg:      cfg,
		bodies:   make(map[BodyID]*Body),
		touching: make(map[pair]bool),
		walled:   make(map[BodyID]bool),
		grounded: make(map[BodyID]BodyID),
	}
}

// Add registers a body and assigns its ID.
func (w *World) Add(b *Body) BodyID {
	w.nextID++
	b.ID = w.nextID
	w.bodies[b.ID] = b
	return b.ID
}

// Remove unregisters a body. Removing an unknown ID is a no-op.
func (w *World) Remove(id BodyID) {
	delete(w.bodies, id)
	w.forget(id)
}

// forget drops all contact state involving id.
func (w *World) forget(id BodyID) {
	delete(w.walled, id)
	delete(w.grounded, id)
	for p := range w.touching {
		if p.a == id || p.b == id {
			delete(w.touching, p)
		}
	}
}

// Body returns a registered body by ID.
func (w *World) Body(id BodyID) (*Body, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

// Len returns the number of registered bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Step integrates dynamic bodies by dt seconds and returns the contacts that
// began during this step, ordered by subject then other body ID.
func (w *World) Step(dt float64) []Contact {
	ids := w.sortedIDs()
	var contacts []Contact

	for _, id := range ids {
		b := w.bodies[id]
		if b.teleported || !b.Enabled {
			w.forget(id)
			b.teleported = false
		}
	}

	for _, id := range ids {
		b := w.bodies[id]
		if !b.Dynamic || b.Kinematic {
			continue
		}
		prevBottom := b.Box().Bottom()

		b.Vel.Y -= w.cfg.Gravity * dt
		if w.cfg.MaxFallSpeed > 0 && b.Vel.Y < -w.cfg.MaxFallSpeed {
			b.Vel.Y = -w.cfg.MaxFallSpeed
		}
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))

		if c, ok := w.land(b, prevBottom); ok {
			contacts = append(contacts, c)
		}
		if c, ok := w.clampToWalls(b); ok {
			contacts = append(contacts, c)
		}
	}

	for _, id := range ids {
		b := w.bodies[id]
		if !b.Dynamic || !b.Enabled {
			continue
		}
		contacts = append(contacts, w.overlaps(b, ids)...)
	}

	return contacts
}

// land puts a falling body on top of the first ground body it crossed.
// A ground contact begins when the body was not resting on that ground
// during the previous step.
func (w *World) land(b *Body, prevBottom float64) (Contact, bool) {
	prev := w.grounded[b.ID]
	delete(w.grounded, b.ID)
	if b.Vel.Y > 0 {
		return Contact{}, false
	}
	for _, id := range w.sortedIDs() {
		g := w.bodies[id]
		if g.Category != CategoryGround || g.ID == b.ID {
			continue
		}
		gb := g.Box()
		bb := b.Box()
		if bb.Max().X <= gb.Min().X || bb.Min().X >= gb.Max().X {
			continue
		}
		top := gb.Top()
		if prevBottom >= top-groundTolerance && bb.Bottom() <= top {
			b.Pos.Y = top + b.Size.Y/2
			b.Vel.Y = 0
			w.grounded[b.ID] = g.ID
			if prev == g.ID || !b.Enabled {
				return Contact{}, false
			}
			return Contact{Subject: b.ID, Other: g.ID, OtherCategory: CategoryGround}, true
		}
	}
	return Contact{}, false
}

// clampToWalls keeps a body inside the level and reports the first touch.
func (w *World) clampToWalls(b *Body) (Contact, bool) {
	if w.cfg.MaxX <= w.cfg.MinX {
		return Contact{}, false
	}
	half := b.Size.X / 2
	hit := false
	if b.Pos.X-half < w.cfg.MinX {
		b.Pos.X = w.cfg.MinX + half
		hit = true
	} else if b.Pos.X+half > w.cfg.MaxX {
		b.Pos.X = w.cfg.MaxX - half
		hit = true
	}

	was := w.walled[b.ID]
	w.walled[b.ID] = hit
	if !hit || was || !b.Enabled {
		return Contact{}, false
	}
	return Contact{Subject: b.ID, OtherCategory: CategoryWall}, true
}

// overlaps reports overlap-begin events for subject against every other
// enabled non-ground body and forgets pairs that stopped overlapping.
func (w *World) overlaps(subject *Body, ids []BodyID) []Contact {
	var contacts []Contact
	sb := subject.Box()
	for _, id := range ids {
		o := w.bodies[id]
		if o.ID == subject.ID || o.Category == CategoryGround {
			continue
		}
		p := pair{a: subject.ID, b: o.ID}
		if !o.Enabled || !sb.Intersects(o.Box()) {
			delete(w.touching, p)
			continue
		}
		if w.touching[p] {
			continue
		}
		w.touching[p] = true
		contacts = append(contacts, Contact{Subject: subject.ID, Other: o.ID, OtherCategory: o.Category})
	}
	return contacts
}

func (w *World) sortedIDs() []BodyID {
	ids := make([]BodyID, 0, len(w.bodies))
	for id := range w.bodies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
