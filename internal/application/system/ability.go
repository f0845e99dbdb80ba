package system

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/younwookim/slingshot/internal/domain/entity"
	"github.com/younwookim/slingshot/internal/domain/geom"
	"github.com/younwookim/slingshot/internal/ecs"
	"github.com/younwookim/slingshot/internal/infrastructure/config"
)

// AbilityContext is what an ability may touch
type AbilityContext struct {
	World   *ecs.World
	Catalog entity.Catalog
	Config  config.AbilityConfig
	Bird    ecs.EntityID
}

// Ability is a one-shot special move of a bird kind
type Ability interface {
	Apply(ctx AbilityContext) AbilityEvent
}

// AbilityEvent reports what an ability did
type AbilityEvent struct {
	Bird     ecs.EntityID
	Kind     entity.BirdKind
	Position geom.Point2D
	Spawned  []ecs.EntityID // split children, explosion effect
	Pushed   int            // bodies hit by an explosion
	Removed  bool           // the bird itself left the world
}

// SplitAbility replaces the bird with three smaller ones fanned out
type SplitAbility struct{}

func (SplitAbility) Apply(ctx AbilityContext) AbilityEvent {
	w := ctx.World
	pw := w.Physics()
	bird := w.BirdData[ctx.Bird]
	pos := w.Position(ctx.Bird)
	vel := pw.Velocity(w.Body[ctx.Bird].ID)
	spec := ctx.Catalog.Spec(bird.Kind)

	ev := AbilityEvent{Bird: ctx.Bird, Kind: bird.Kind, Position: pos, Removed: true}
	w.Destroy(ctx.Bird)

	spread := ctx.Config.SplitSpreadDeg * math.Pi / 180
	for _, angle := range []float64{-spread, 0, spread} {
		child := w.CreateChildBird(spec, pos, ctx.Config.SplitMassScale, ctx.Config.SplitRadiusScale)
		pw.SetVelocity(w.Body[child].ID, vel.Rotate(angle).Scale(ctx.Config.SplitSpeedScale))
		ev.Spawned = append(ev.Spawned, child)
	}
	return ev
}

// SpeedAbility multiplies the current velocity
type SpeedAbility struct{}

func (SpeedAbility) Apply(ctx AbilityContext) AbilityEvent {
	w := ctx.World
	body := w.Body[ctx.Bird].ID
	w.Physics().SetVelocity(body, w.Physics().Velocity(body).Scale(ctx.Config.SpeedBoost))
	return AbilityEvent{Bird: ctx.Bird, Kind: w.BirdData[ctx.Bird].Kind, Position: w.Position(ctx.Bird)}
}

// ExplodeAbility pushes every nearby dynamic body away and removes the bird
type ExplodeAbility struct{}

func (ExplodeAbility) Apply(ctx AbilityContext) AbilityEvent {
	w := ctx.World
	pw := w.Physics()
	self := w.Body[ctx.Bird].ID
	center := w.Position(ctx.Bird)
	radius := ctx.Config.ExplosionRadius

	ev := AbilityEvent{Bird: ctx.Bird, Kind: w.BirdData[ctx.Bird].Kind, Position: center, Removed: true}
	for _, body := range pw.DynamicBodies() {
		if body == self {
			continue
		}
		p := pw.Position(body)
		d := geom.DistanceBetween(center, p)
		if d == 0 || d >= radius {
			continue
		}
		dir := p.Sub(center).Normalize()
		pw.ApplyImpulseWorld(body, dir.Scale((radius-d)*ctx.Config.ExplosionForce), p)
		ev.Pushed++
	}

	w.Destroy(ctx.Bird)
	ev.Spawned = append(ev.Spawned, w.CreateEffect(center, radius, ctx.Config.ExplosionEffectDuration))
	return ev
}

// DefaultAbilities maps kinds to their abilities. Kinds without an entry have none.
func DefaultAbilities() map[entity.BirdKind]Ability {
	return map[entity.BirdKind]Ability{
		entity.KindBlue:  SplitAbility{},
		entity.KindChuck: SpeedAbility{},
		entity.KindBomb:  ExplodeAbility{},
	}
}

// AbilitySystem dispatches special abilities of launched birds
type AbilitySystem struct {
	cfg       config.AbilityConfig
	catalog   entity.Catalog
	world     *ecs.World
	abilities map[entity.BirdKind]Ability

	// Event callbacks
	OnAbility func(ev AbilityEvent)
}

// NewAbilitySystem creates a dispatcher with the default ability table
func NewAbilitySystem(cfg config.AbilityConfig, catalog entity.Catalog, world *ecs.World) *AbilitySystem {
	return &AbilitySystem{
		cfg:       cfg,
		catalog:   catalog,
		world:     world,
		abilities: DefaultAbilities(),
	}
}

// Trigger fires the ability of every live launched bird that still has one.
// Birds spawned by an ability are not visited in the same call.
func (s *AbilitySystem) Trigger() []AbilityEvent {
	var events []AbilityEvent
	for _, id := range s.world.Birds() {
		bird, ok := s.world.BirdData[id]
		if !ok || !bird.CanUseAbility() {
			continue
		}
		ability, ok := s.abilities[bird.Kind]
		if !ok {
			continue
		}
		bird.MarkAbilityUsed()
		s.world.BirdData[id] = bird

		ev := ability.Apply(AbilityContext{
			World:   s.world,
			Catalog: s.catalog,
			Config:  s.cfg,
			Bird:    id,
		})
		log.Debug("ability used", "kind", ev.Kind, "position", ev.Position, "spawned", len(ev.Spawned), "pushed", ev.Pushed)
		if s.OnAbility != nil {
			s.OnAbility(ev)
		}
		events = append(events, ev)
	}
	return events
}
