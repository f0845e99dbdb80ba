package system

import (
	"github.com/charmbracelet/log"

	"github.com/younwookim/slingshot/internal/ecs"
	"github.com/younwookim/slingshot/internal/infrastructure/config"
	"github.com/younwookim/slingshot/internal/physics"
)

// ResolveResult summarizes one collision pass
type ResolveResult struct {
	Destroyed     []ecs.EntityID
	PigsDestroyed int
	Points        int
}

// CollisionResolver destroys pigs and columns hit hard enough
type CollisionResolver struct {
	cfg   config.CollisionConfig
	world *ecs.World

	// Event callbacks
	OnDestroyed func(id ecs.EntityID, pig bool)
}

// NewCollisionResolver creates a resolver
func NewCollisionResolver(cfg config.CollisionConfig, world *ecs.World) *CollisionResolver {
	return &CollisionResolver{cfg: cfg, world: world}
}

// Resolve applies the contacts of one step. Impulses below IgnoreBelow are
// dropped, those strictly above DestroyAbove destroy every pig or column
// involved, and anything between does nothing.
func (r *CollisionResolver) Resolve(contacts []physics.Contact) ResolveResult {
	var res ResolveResult
	for _, c := range contacts {
		if c.Impulse < r.cfg.IgnoreBelow {
			continue
		}
		log.Debug("contact", "a", c.A, "b", c.B, "impulse", c.Impulse)
		if c.Impulse <= r.cfg.DestroyAbove {
			continue
		}

		for _, id := range r.world.Destructibles() {
			b, ok := r.world.Body[id]
			if !ok || !c.Involves(b.ID) {
				continue
			}
			_, pig := r.world.IsPig[id]
			r.world.Destroy(id)

			res.Destroyed = append(res.Destroyed, id)
			if pig {
				res.PigsDestroyed++
				res.Points += r.cfg.PointsPerPig
			}
			log.Debug("destroyed", "entity", id, "pig", pig, "impulse", c.Impulse)
			if r.OnDestroyed != nil {
				r.OnDestroyed(id, pig)
			}
		}
	}
	return res
}
