// Package chipmunk implements physics.World on top of the cp rigid-body engine.
package chipmunk

import (
	"sort"

	"github.com/jakecoffman/cp"

	"github.com/younwookim/slingshot/internal/domain/geom"
	"github.com/younwookim/slingshot/internal/physics"
)

// collisionType is shared by every shape so one handler sees all pairs
const collisionType cp.CollisionType = 1

// Solver defaults
const (
	DefaultIterations = 10
	groundRadius      = 0.0
	boxCornerRadius   = 0.0
)

type handle struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

// World wraps a cp.Space
type World struct {
	space   *cp.Space
	nextID  physics.BodyID
	handles map[physics.BodyID]*handle
	owners  map[*cp.Shape]physics.BodyID

	// contacts raised by the post-solve handler during the current step
	contacts []physics.Contact
}

var _ physics.World = (*World)(nil)

// NewWorld creates a space with gravity (y-up, e.g. (0, -900))
func NewWorld(gravity geom.Point2D) *World {
	w := &World{
		space:   cp.NewSpace(),
		nextID:  1,
		handles: make(map[physics.BodyID]*handle),
		owners:  make(map[*cp.Shape]physics.BodyID),
	}
	w.space.Iterations = DefaultIterations
	w.space.SetGravity(vec(gravity))

	h := w.space.NewCollisionHandler(collisionType, collisionType)
	h.PostSolveFunc = w.postSolve
	return w
}

func (w *World) postSolve(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
	sa, sb := arb.Shapes()
	a, okA := w.owners[sa]
	b, okB := w.owners[sb]
	if !okA || !okB {
		return
	}
	w.contacts = append(w.contacts, physics.Contact{
		A:       a,
		B:       b,
		Impulse: arb.TotalImpulse().Length(),
	})
}

func vec(p geom.Point2D) cp.Vector { return cp.Vector{X: p.X, Y: p.Y} }

func point(v cp.Vector) geom.Point2D { return geom.Point2D{X: v.X, Y: v.Y} }

func filterFor(g physics.Group) cp.ShapeFilter {
	return cp.NewShapeFilter(uint(g), cp.ALL_CATEGORIES, cp.ALL_CATEGORIES)
}

func (w *World) attach(body *cp.Body, shape *cp.Shape, def physics.BodyDef) physics.BodyID {
	shape.SetElasticity(def.Elasticity)
	shape.SetFriction(def.Friction)
	shape.SetCollisionType(collisionType)
	shape.SetFilter(filterFor(def.Group))

	w.space.AddBody(body)
	w.space.AddShape(shape)

	id := w.nextID
	w.nextID++
	body.UserData = id
	shape.UserData = id
	w.handles[id] = &handle{body: body, shape: shape}
	w.owners[shape] = id
	return id
}

func (w *World) AddCircle(def physics.BodyDef) physics.BodyID {
	moment := cp.MomentForCircle(def.Mass, 0, def.Radius, cp.Vector{})
	body := cp.NewBody(def.Mass, moment)
	body.SetPosition(vec(def.Position))
	shape := cp.NewCircle(body, def.Radius, cp.Vector{})
	return w.attach(body, shape, def)
}

func (w *World) AddBox(def physics.BodyDef) physics.BodyID {
	moment := cp.MomentForBox(def.Mass, def.Width, def.Height)
	body := cp.NewBody(def.Mass, moment)
	body.SetPosition(vec(def.Position))
	shape := cp.NewBox(body, def.Width, def.Height, boxCornerRadius)
	return w.attach(body, shape, def)
}

func (w *World) AddGround(a, b geom.Point2D, friction float64) physics.BodyID {
	shape := cp.NewSegment(w.space.StaticBody, vec(a), vec(b), groundRadius)
	shape.SetFriction(friction)
	shape.SetCollisionType(collisionType)
	w.space.AddShape(shape)

	id := w.nextID
	w.nextID++
	shape.UserData = id
	w.handles[id] = &handle{body: w.space.StaticBody, shape: shape, static: true}
	w.owners[shape] = id
	return id
}

// Remove must not be called from inside Step.
func (w *World) Remove(id physics.BodyID) {
	h, ok := w.handles[id]
	if !ok {
		return
	}
	if w.space.ContainsShape(h.shape) {
		w.space.RemoveShape(h.shape)
	}
	if !h.static && w.space.ContainsBody(h.body) {
		w.space.RemoveBody(h.body)
	}
	delete(w.owners, h.shape)
	delete(w.handles, id)
}

func (w *World) Contains(id physics.BodyID) bool {
	_, ok := w.handles[id]
	return ok
}

func (w *World) Position(id physics.BodyID) geom.Point2D {
	h, ok := w.handles[id]
	if !ok {
		return geom.Point2D{}
	}
	return point(h.body.Position())
}

func (w *World) Velocity(id physics.BodyID) geom.Point2D {
	h, ok := w.handles[id]
	if !ok || h.static {
		return geom.Point2D{}
	}
	return point(h.body.Velocity())
}

func (w *World) SetVelocity(id physics.BodyID, v geom.Point2D) {
	if h, ok := w.handles[id]; ok && !h.static {
		h.body.SetVelocityVector(vec(v))
	}
}

func (w *World) Angle(id physics.BodyID) float64 {
	h, ok := w.handles[id]
	if !ok || h.static {
		return 0
	}
	return h.body.Angle()
}

func (w *World) ApplyImpulseLocal(id physics.BodyID, impulse geom.Point2D) {
	if h, ok := w.handles[id]; ok && !h.static {
		h.body.ApplyImpulseAtLocalPoint(vec(impulse), cp.Vector{})
	}
}

func (w *World) ApplyImpulseWorld(id physics.BodyID, impulse, at geom.Point2D) {
	if h, ok := w.handles[id]; ok && !h.static {
		h.body.ApplyImpulseAtWorldPoint(vec(impulse), vec(at))
	}
}

// Step advances the space by dt and returns the contacts solved during it.
func (w *World) Step(dt float64) []physics.Contact {
	w.contacts = w.contacts[:0]
	w.space.Step(dt)

	out := make([]physics.Contact, len(w.contacts))
	copy(out, w.contacts)
	return out
}

func (w *World) DynamicBodies() []physics.BodyID {
	ids := make([]physics.BodyID, 0, len(w.handles))
	for id, h := range w.handles {
		if !h.static && h.body.GetType() == cp.BODY_DYNAMIC {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
