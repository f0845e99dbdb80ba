package system

import (
	"github.com/charmbracelet/log"

	"github.com/younwookim/slingshot/internal/ecs"
	"github.com/younwookim/slingshot/internal/infrastructure/config"
)

// SettleTracker removes birds that have rested near the ground long enough
// and expires explosion effects
type SettleTracker struct {
	cfg   config.SettleConfig
	world *ecs.World
}

// NewSettleTracker creates a tracker
func NewSettleTracker(cfg config.SettleConfig, world *ecs.World) *SettleTracker {
	return &SettleTracker{cfg: cfg, world: world}
}

// Update advances every grace timer by dt and removes expired birds and
// effects in a single pass after the sweep. It returns the removed birds.
func (s *SettleTracker) Update(dt float64) []ecs.EntityID {
	var expired []ecs.EntityID
	for _, id := range s.world.Birds() {
		bird := s.world.BirdData[id]
		y := s.world.Position(id).Y
		if bird.Settle(y, s.cfg.GroundThreshold, dt, s.cfg.Grace) {
			expired = append(expired, id)
		}
		s.world.BirdData[id] = bird
	}
	for _, id := range expired {
		s.world.Destroy(id)
		log.Debug("bird settled", "entity", id)
	}

	var done []ecs.EntityID
	for _, id := range s.world.Effects() {
		e := s.world.Effect[id]
		e.Remaining -= dt
		if e.Remaining <= 0 {
			done = append(done, id)
			continue
		}
		s.world.Effect[id] = e
	}
	for _, id := range done {
		s.world.Destroy(id)
	}

	return expired
}
