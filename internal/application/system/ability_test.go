package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/slingshot/internal/domain/entity"
	"github.com/younwookim/slingshot/internal/domain/geom"
	"github.com/younwookim/slingshot/internal/ecs"
	"github.com/younwookim/slingshot/internal/physics/physicstest"
)

func newAbilityFixture() (*AbilitySystem, *ecs.World, *physicstest.World) {
	w, pw := newTestWorld()
	s := NewAbilitySystem(createTestConfig().Abilities, entity.DefaultCatalog(), w)
	return s, w, pw
}

func launchBird(w *ecs.World, pw *physicstest.World, kind entity.BirdKind, pos, vel geom.Point2D) ecs.EntityID {
	id := w.CreateBird(entity.DefaultCatalog()[kind], pos)
	pw.SetVelocity(w.Body[id].ID, vel)
	return id
}

func TestAbility_Split(t *testing.T) {
	s, w, pw := newAbilityFixture()
	pos := geom.Pt(500, 300)
	vel := geom.Pt(400, 100)
	parent := launchBird(w, pw, entity.KindBlue, pos, vel)
	parentBody := w.Body[parent].ID

	events := s.Trigger()
	require.Len(t, events, 1)
	ev := events[0]
	assert.True(t, ev.Removed)
	require.Len(t, ev.Spawned, 3)

	assert.False(t, w.Exists(parent), "parent leaves the render set")
	assert.False(t, pw.Contains(parentBody), "parent leaves the physics world")
	assert.Equal(t, 3, w.CountBirds())

	spread := 45 * math.Pi / 180
	for i, angle := range []float64{-spread, 0, spread} {
		child := ev.Spawned[i]
		bird := w.BirdData[child]
		assert.True(t, bird.Child)
		assert.False(t, bird.CanUseAbility())
		assert.Equal(t, pos, w.Position(child))

		got := pw.Velocity(w.Body[child].ID)
		want := vel.Rotate(angle).Scale(1.2)
		assert.InDelta(t, want.X, got.X, 1e-9)
		assert.InDelta(t, want.Y, got.Y, 1e-9)
	}

	assert.Empty(t, s.Trigger(), "children never split again")
}

func TestAbility_SpeedBoost(t *testing.T) {
	s, w, pw := newAbilityFixture()
	id := launchBird(w, pw, entity.KindChuck, geom.Pt(500, 300), geom.Pt(300, -40))

	events := s.Trigger()
	require.Len(t, events, 1)
	assert.False(t, events[0].Removed)

	v := pw.Velocity(w.Body[id].ID)
	assert.InDelta(t, 450.0, v.X, 1e-9)
	assert.InDelta(t, -60.0, v.Y, 1e-9)
	assert.Equal(t, geom.Pt(500, 300), w.Position(id), "position unchanged")
	assert.True(t, w.BirdData[id].AbilityUsed)

	// second trigger is a no-op
	assert.Empty(t, s.Trigger())
	assert.InDelta(t, 450.0, pw.Velocity(w.Body[id].ID).X, 1e-9)
}

func TestAbility_Explode(t *testing.T) {
	s, w, pw := newAbilityFixture()
	center := geom.Pt(1000, 100)
	bomb := launchBird(w, pw, entity.KindBomb, center, geom.Pt(200, 0))
	bombBody := w.Body[bomb].ID

	near := w.CreatePig(entity.DefaultPigSpec(), geom.Pt(1100, 100))      // d = 100
	edge := w.CreatePig(entity.DefaultPigSpec(), geom.Pt(1150, 100))      // d = 150, excluded
	far := w.CreateColumn(entity.DefaultColumnSpec(), geom.Pt(1000, 400)) // d = 300
	diag := w.CreateColumn(entity.DefaultColumnSpec(), geom.Pt(970, 60))  // d = 50

	events := s.Trigger()
	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, 2, ev.Pushed)
	assert.True(t, ev.Removed)
	require.Len(t, ev.Spawned, 1)

	nearImp := pw.Body(w.Body[near].ID).Impulses
	require.Len(t, nearImp, 1)
	assert.InDelta(t, (150-100)*500.0, nearImp[0].X, 1e-6)
	assert.InDelta(t, 0.0, nearImp[0].Y, 1e-6)

	diagImp := pw.Body(w.Body[diag].ID).Impulses
	require.Len(t, diagImp, 1)
	assert.InDelta(t, (150-50)*500.0, diagImp[0].Len(), 1e-6)
	assert.InDelta(t, math.Atan2(-40, -30), math.Atan2(diagImp[0].Y, diagImp[0].X), 1e-9)

	assert.Empty(t, pw.Body(w.Body[edge].ID).Impulses, "bodies at exactly the radius are untouched")
	assert.Empty(t, pw.Body(w.Body[far].ID).Impulses)

	assert.False(t, w.Exists(bomb))
	assert.False(t, pw.Contains(bombBody))

	effect := ev.Spawned[0]
	require.Contains(t, w.Effect, effect)
	assert.Equal(t, center, w.Position(effect))
	assert.InDelta(t, 0.5, w.Effect[effect].Remaining, 1e-9)
}

func TestAbility_ExplodeSkipsCoincidentBodies(t *testing.T) {
	s, w, pw := newAbilityFixture()
	center := geom.Pt(600, 200)
	launchBird(w, pw, entity.KindBomb, center, geom.Point2D{})
	pig := w.CreatePig(entity.DefaultPigSpec(), center)

	events := s.Trigger()
	require.Len(t, events, 1)
	assert.Equal(t, 0, events[0].Pushed)
	assert.Empty(t, pw.Body(w.Body[pig].ID).Impulses)
}

func TestAbility_RedHasNone(t *testing.T) {
	s, w, pw := newAbilityFixture()
	id := launchBird(w, pw, entity.KindRed, geom.Pt(300, 300), geom.Pt(100, 0))

	assert.Empty(t, s.Trigger())
	assert.False(t, w.BirdData[id].AbilityUsed)
	assert.InDelta(t, 100.0, pw.Velocity(w.Body[id].ID).X, 1e-9)
}

func TestAbility_TriggerVisitsAllEligible(t *testing.T) {
	s, w, pw := newAbilityFixture()
	chuck := launchBird(w, pw, entity.KindChuck, geom.Pt(300, 300), geom.Pt(100, 0))
	blue := launchBird(w, pw, entity.KindBlue, geom.Pt(600, 300), geom.Pt(100, 0))

	var seen []entity.BirdKind
	s.OnAbility = func(ev AbilityEvent) { seen = append(seen, ev.Kind) }

	events := s.Trigger()
	require.Len(t, events, 2)
	assert.Equal(t, chuck, events[0].Bird)
	assert.Equal(t, blue, events[1].Bird)
	assert.Equal(t, []entity.BirdKind{entity.KindChuck, entity.KindBlue}, seen)
	assert.Equal(t, 4, w.CountBirds(), "chuck plus three children")
}
