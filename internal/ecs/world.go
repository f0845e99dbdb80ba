package ecs

import (
	"sort"

	"github.com/younwookim/slingshot/internal/domain/entity"
	"github.com/younwookim/slingshot/internal/domain/geom"
	"github.com/younwookim/slingshot/internal/physics"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps, the next entity ID and the physics
// world the bodies live in. Destroy is the only removal path, so an
// entity and its body always go away together.
type World struct {
	nextID  EntityID
	physics physics.World

	// Components
	Sprite   map[EntityID]Sprite
	Body     map[EntityID]Body
	BirdData map[EntityID]entity.Bird
	Effect   map[EntityID]Effect

	// Tags
	IsPig    map[EntityID]struct{}
	IsColumn map[EntityID]struct{}

	owners map[physics.BodyID]EntityID
}

// NewWorld creates a new empty world backed by pw
func NewWorld(pw physics.World) *World {
	return &World{
		nextID:   1, // 0 is "nil"
		physics:  pw,
		Sprite:   make(map[EntityID]Sprite),
		Body:     make(map[EntityID]Body),
		BirdData: make(map[EntityID]entity.Bird),
		Effect:   make(map[EntityID]Effect),
		IsPig:    make(map[EntityID]struct{}),
		IsColumn: make(map[EntityID]struct{}),
		owners:   make(map[physics.BodyID]EntityID),
	}
}

// Physics returns the backing physics world
func (w *World) Physics() physics.World {
	return w.physics
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

func (w *World) attach(id EntityID, body physics.BodyID) {
	w.Body[id] = Body{ID: body}
	w.owners[body] = id
}

// Destroy removes every component of id and its physics body.
// Destroying an unknown or already destroyed entity does nothing.
func (w *World) Destroy(id EntityID) {
	if b, ok := w.Body[id]; ok {
		w.physics.Remove(b.ID)
		delete(w.owners, b.ID)
	}
	delete(w.Sprite, id)
	delete(w.Body, id)
	delete(w.BirdData, id)
	delete(w.Effect, id)
	delete(w.IsPig, id)
	delete(w.IsColumn, id)
}

// Exists checks if an entity has a Sprite component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Sprite[id]
	return ok
}

// EntityForBody returns the entity owning body
func (w *World) EntityForBody(body physics.BodyID) (EntityID, bool) {
	id, ok := w.owners[body]
	return id, ok
}

// Position returns the body position of id, or the effect position for bodiless effects
func (w *World) Position(id EntityID) geom.Point2D {
	if b, ok := w.Body[id]; ok {
		return w.physics.Position(b.ID)
	}
	if e, ok := w.Effect[id]; ok {
		return geom.Pt(e.X, e.Y)
	}
	return geom.Point2D{}
}

// Angle returns the body rotation of id
func (w *World) Angle(id EntityID) float64 {
	if b, ok := w.Body[id]; ok {
		return w.physics.Angle(b.ID)
	}
	return 0
}

// CreateBird creates an active bird with a dynamic circle body at pos
func (w *World) CreateBird(spec entity.BirdSpec, pos geom.Point2D) EntityID {
	return w.createBird(spec, entity.NewBird(spec), spec.Mass, spec.Radius, pos)
}

// CreateChildBird creates a split fragment of spec scaled by massScale and radiusScale
func (w *World) CreateChildBird(spec entity.BirdSpec, pos geom.Point2D, massScale, radiusScale float64) EntityID {
	return w.createBird(spec, entity.NewChildBird(spec.Kind), spec.Mass*massScale, spec.Radius*radiusScale, pos)
}

func (w *World) createBird(spec entity.BirdSpec, bird entity.Bird, mass, radius float64, pos geom.Point2D) EntityID {
	id := w.NewEntity()
	body := w.physics.AddCircle(physics.BodyDef{
		Position:   pos,
		Mass:       mass,
		Radius:     radius,
		Elasticity: spec.Elasticity,
		Friction:   spec.Friction,
		Group:      physics.GroupBirds,
	})
	w.attach(id, body)
	w.Sprite[id] = BirdSprite(spec, radius)
	w.BirdData[id] = bird
	return id
}

// CreatePig creates a target entity
func (w *World) CreatePig(spec entity.PigSpec, pos geom.Point2D) EntityID {
	id := w.NewEntity()
	body := w.physics.AddCircle(physics.BodyDef{
		Position:   pos,
		Mass:       spec.Mass,
		Radius:     spec.Radius,
		Elasticity: spec.Elasticity,
		Friction:   spec.Friction,
	})
	w.attach(id, body)
	w.Sprite[id] = Sprite{Shape: SpriteCircle, Radius: spec.Radius, Color: PigColor}
	w.IsPig[id] = struct{}{}
	return id
}

// CreateColumn creates an obstacle entity
func (w *World) CreateColumn(spec entity.ColumnSpec, pos geom.Point2D) EntityID {
	id := w.NewEntity()
	body := w.physics.AddBox(physics.BodyDef{
		Position:   pos,
		Mass:       spec.Mass,
		Width:      spec.Width,
		Height:     spec.Height,
		Elasticity: spec.Elasticity,
		Friction:   spec.Friction,
	})
	w.attach(id, body)
	w.Sprite[id] = Sprite{Shape: SpriteBox, Width: spec.Width, Height: spec.Height, Color: ColumnColor}
	w.IsColumn[id] = struct{}{}
	return id
}

// CreateEffect creates a bodiless explosion burst
func (w *World) CreateEffect(pos geom.Point2D, radius, duration float64) EntityID {
	id := w.NewEntity()
	w.Sprite[id] = Sprite{Shape: SpriteBurst, Radius: radius, Color: BurstColor}
	w.Effect[id] = Effect{X: pos.X, Y: pos.Y, Remaining: duration, Duration: duration}
	return id
}

func sortedKeys[V any](m map[EntityID]V) []EntityID {
	ids := make([]EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Birds returns a sorted snapshot of active bird IDs
func (w *World) Birds() []EntityID { return sortedKeys(w.BirdData) }

// Pigs returns a sorted snapshot of pig IDs
func (w *World) Pigs() []EntityID { return sortedKeys(w.IsPig) }

// Columns returns a sorted snapshot of column IDs
func (w *World) Columns() []EntityID { return sortedKeys(w.IsColumn) }

// Effects returns a sorted snapshot of effect IDs
func (w *World) Effects() []EntityID { return sortedKeys(w.Effect) }

// Renderables returns a sorted snapshot of everything with a sprite
func (w *World) Renderables() []EntityID { return sortedKeys(w.Sprite) }

// Destructibles returns a sorted snapshot of pigs and columns
func (w *World) Destructibles() []EntityID {
	ids := append(w.Pigs(), w.Columns()...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CountPigs returns the number of remaining targets
func (w *World) CountPigs() int {
	return len(w.IsPig)
}

// CountBirds returns the number of active birds
func (w *World) CountBirds() int {
	return len(w.BirdData)
}
