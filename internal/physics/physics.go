// Package physics defines the rigid-body contract the game logic runs on.
// The engine behind it reports contacts with their impulse magnitude and
// never lets callers touch its objects directly.
package physics

import "github.com/younwookim/slingshot/internal/domain/geom"

// BodyID is an opaque handle to a body (0 is "nil")
type BodyID uint64

// Group selects which bodies collide with each other.
// Bodies sharing a non-zero group pass through one another.
type Group uint

const (
	GroupNone  Group = 0
	GroupBirds Group = 1
)

// BodyDef describes a dynamic body to create
type BodyDef struct {
	Position   geom.Point2D
	Mass       float64
	Radius     float64 // circles
	Width      float64 // boxes
	Height     float64 // boxes
	Elasticity float64
	Friction   float64
	Group      Group
}

// Contact is a resolved collision between two bodies during a step
type Contact struct {
	A, B    BodyID
	Impulse float64 // magnitude of the total impulse
}

// Other returns the body on the opposite side from id, or 0 if id is not involved
func (c Contact) Other(id BodyID) BodyID {
	switch id {
	case c.A:
		return c.B
	case c.B:
		return c.A
	}
	return 0
}

// Involves reports whether id is one of the contact's bodies
func (c Contact) Involves(id BodyID) bool {
	return c.A == id || c.B == id
}

// World is a 2D rigid-body simulation with y pointing up.
// Step is the only operation that advances time; contacts are returned
// only after the step completes so callers can mutate the world safely.
type World interface {
	AddCircle(def BodyDef) BodyID
	AddBox(def BodyDef) BodyID
	AddGround(a, b geom.Point2D, friction float64) BodyID

	// Remove detaches the body and its shape. Unknown ids are ignored.
	Remove(id BodyID)
	Contains(id BodyID) bool

	Position(id BodyID) geom.Point2D
	Velocity(id BodyID) geom.Point2D
	SetVelocity(id BodyID, v geom.Point2D)
	Angle(id BodyID) float64

	// ApplyImpulseLocal applies impulse in body-local coordinates at the body origin.
	ApplyImpulseLocal(id BodyID, impulse geom.Point2D)
	// ApplyImpulseWorld applies impulse in world coordinates at a world point.
	ApplyImpulseWorld(id BodyID, impulse, point geom.Point2D)

	Step(dt float64) []Contact

	// DynamicBodies returns every dynamic body in ascending id order.
	DynamicBodies() []BodyID
}
