// Package physicstest provides a scripted physics.World for tests.
// Bodies move by explicit Euler integration with optional gravity and
// contacts are whatever the test queued before the step.
package physicstest

import (
	"sort"

	"github.com/younwookim/slingshot/internal/domain/geom"
	"github.com/younwookim/slingshot/internal/physics"
)

// Body is the fake's record of a body
type Body struct {
	Def      physics.BodyDef
	Box      bool
	Static   bool
	Pos      geom.Point2D
	Vel      geom.Point2D
	Angle    float64
	Impulses []geom.Point2D // world-space impulses applied, in order
}

// World is an in-memory physics.World
type World struct {
	Gravity geom.Point2D

	nextID  physics.BodyID
	bodies  map[physics.BodyID]*Body
	pending []physics.Contact
	steps   int
	removed []physics.BodyID
}

var _ physics.World = (*World)(nil)

// New creates an empty world without gravity
func New() *World {
	return &World{
		nextID: 1,
		bodies: make(map[physics.BodyID]*Body),
	}
}

func (w *World) add(b *Body) physics.BodyID {
	id := w.nextID
	w.nextID++
	w.bodies[id] = b
	return id
}

func (w *World) AddCircle(def physics.BodyDef) physics.BodyID {
	return w.add(&Body{Def: def, Pos: def.Position})
}

func (w *World) AddBox(def physics.BodyDef) physics.BodyID {
	return w.add(&Body{Def: def, Box: true, Pos: def.Position})
}

func (w *World) AddGround(a, b geom.Point2D, friction float64) physics.BodyID {
	return w.add(&Body{
		Def:    physics.BodyDef{Position: a, Friction: friction},
		Static: true,
		Pos:    a,
	})
}

func (w *World) Remove(id physics.BodyID) {
	if _, ok := w.bodies[id]; !ok {
		return
	}
	delete(w.bodies, id)
	w.removed = append(w.removed, id)
}

func (w *World) Contains(id physics.BodyID) bool {
	_, ok := w.bodies[id]
	return ok
}

func (w *World) Position(id physics.BodyID) geom.Point2D {
	if b, ok := w.bodies[id]; ok {
		return b.Pos
	}
	return geom.Point2D{}
}

func (w *World) Velocity(id physics.BodyID) geom.Point2D {
	if b, ok := w.bodies[id]; ok {
		return b.Vel
	}
	return geom.Point2D{}
}

func (w *World) SetVelocity(id physics.BodyID, v geom.Point2D) {
	if b, ok := w.bodies[id]; ok && !b.Static {
		b.Vel = v
	}
}

func (w *World) Angle(id physics.BodyID) float64 {
	if b, ok := w.bodies[id]; ok {
		return b.Angle
	}
	return 0
}

func (w *World) ApplyImpulseLocal(id physics.BodyID, impulse geom.Point2D) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}
	w.applyImpulse(b, impulse.Rotate(b.Angle))
}

func (w *World) ApplyImpulseWorld(id physics.BodyID, impulse, _ geom.Point2D) {
	if b, ok := w.bodies[id]; ok {
		w.applyImpulse(b, impulse)
	}
}

func (w *World) applyImpulse(b *Body, impulse geom.Point2D) {
	if b.Static {
		return
	}
	b.Impulses = append(b.Impulses, impulse)
	if b.Def.Mass > 0 {
		b.Vel = b.Vel.Add(impulse.Scale(1 / b.Def.Mass))
	}
}

// Step integrates every dynamic body and returns the queued contacts
// whose bodies are both still present.
func (w *World) Step(dt float64) []physics.Contact {
	w.steps++
	for _, id := range w.DynamicBodies() {
		b := w.bodies[id]
		b.Vel = b.Vel.Add(w.Gravity.Scale(dt))
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	}

	var out []physics.Contact
	for _, c := range w.pending {
		if w.Contains(c.A) && w.Contains(c.B) {
			out = append(out, c)
		}
	}
	w.pending = nil
	return out
}

func (w *World) DynamicBodies() []physics.BodyID {
	ids := make([]physics.BodyID, 0, len(w.bodies))
	for id, b := range w.bodies {
		if !b.Static {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// QueueContact schedules a contact to be reported by the next Step
func (w *World) QueueContact(a, b physics.BodyID, impulse float64) {
	w.pending = append(w.pending, physics.Contact{A: a, B: b, Impulse: impulse})
}

// SetPosition teleports a body
func (w *World) SetPosition(id physics.BodyID, p geom.Point2D) {
	if b, ok := w.bodies[id]; ok {
		b.Pos = p
	}
}

// Body returns the record for id, or nil
func (w *World) Body(id physics.BodyID) *Body {
	return w.bodies[id]
}

// Steps returns how many times Step was called
func (w *World) Steps() int { return w.steps }

// Removed returns every id passed to a successful Remove, in order
func (w *World) Removed() []physics.BodyID { return w.removed }

// Len returns the number of live bodies, static ones included
func (w *World) Len() int { return len(w.bodies) }
