package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/slingshot/internal/domain/entity"
	"github.com/younwookim/slingshot/internal/domain/geom"
)

const frame = 1.0 / 60.0

func TestSettleTracker_RemovesAfterGrace(t *testing.T) {
	w, pw := newTestWorld()
	s := NewSettleTracker(createTestConfig().Settle, w)
	id := w.CreateBird(entity.DefaultCatalog()[entity.KindRed], geom.Pt(500, 20))
	body := w.Body[id].ID

	// 2 s of frames minus one: still present
	for i := 0; i < 119; i++ {
		assert.Empty(t, s.Update(frame))
	}
	require.True(t, w.Exists(id))

	removed := s.Update(frame)
	assert.Equal(t, 1, len(removed))
	assert.False(t, w.Exists(id))
	assert.False(t, pw.Contains(body))
}

func TestSettleTracker_FlyingBirdKeepsTimer(t *testing.T) {
	w, pw := newTestWorld()
	s := NewSettleTracker(createTestConfig().Settle, w)
	id := w.CreateBird(entity.DefaultCatalog()[entity.KindRed], geom.Pt(500, 300))

	for i := 0; i < 300; i++ {
		s.Update(frame)
	}
	assert.True(t, w.Exists(id))
	assert.Equal(t, 0.0, w.BirdData[id].SettleTimer)

	// 1 s on the ground, a bounce, then 1 s more
	pw.SetPosition(w.Body[id].ID, geom.Pt(500, 25))
	for i := 0; i < 60; i++ {
		s.Update(frame)
	}
	pw.SetPosition(w.Body[id].ID, geom.Pt(500, 200))
	for i := 0; i < 30; i++ {
		s.Update(frame)
	}
	assert.InDelta(t, 1.0, w.BirdData[id].SettleTimer, 1e-9, "timer is not reset")

	pw.SetPosition(w.Body[id].ID, geom.Pt(500, 30))
	for i := 0; i < 59; i++ {
		s.Update(frame)
	}
	require.True(t, w.Exists(id))
	s.Update(frame)
	assert.False(t, w.Exists(id))
}

func TestSettleTracker_IgnoresPigs(t *testing.T) {
	w, _ := newTestWorld()
	s := NewSettleTracker(createTestConfig().Settle, w)
	pig := w.CreatePig(entity.DefaultPigSpec(), geom.Pt(800, 20))

	for i := 0; i < 600; i++ {
		s.Update(frame)
	}
	assert.True(t, w.Exists(pig))
}

func TestSettleTracker_ExpiresEffects(t *testing.T) {
	w, _ := newTestWorld()
	s := NewSettleTracker(createTestConfig().Settle, w)
	id := w.CreateEffect(geom.Pt(10, 10), 150, 0.5)

	for i := 0; i < 29; i++ {
		s.Update(frame)
	}
	require.True(t, w.Exists(id))
	s.Update(frame)
	s.Update(frame)
	assert.False(t, w.Exists(id))
}
