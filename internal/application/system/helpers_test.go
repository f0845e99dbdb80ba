package system

import (
	"math/rand"

	"github.com/younwookim/slingshot/internal/domain/entity"
	"github.com/younwookim/slingshot/internal/ecs"
	"github.com/younwookim/slingshot/internal/infrastructure/config"
	"github.com/younwookim/slingshot/internal/physics/physicstest"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestConfig() *config.PhysicsConfig {
	return config.DefaultPhysicsConfig()
}

func newTestWorld() (*ecs.World, *physicstest.World) {
	pw := physicstest.New()
	return ecs.NewWorld(pw), pw
}

func newTestController() (*LaunchController, *ecs.World, *physicstest.World, *entity.BirdQueue) {
	w, pw := newTestWorld()
	q := entity.NewBirdQueue(testRNG(), entity.DefaultQueueSize)
	c := NewLaunchController(createTestConfig().Launch, entity.DefaultCatalog(), w, q)
	return c, w, pw, q
}
