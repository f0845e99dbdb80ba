package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Point2D
		expected float64
	}{
		{"right", Pt(0, 0), Pt(10, 0), 0},
		{"up", Pt(0, 0), Pt(0, 10), math.Pi / 2},
		{"left", Pt(5, 5), Pt(-5, 5), math.Pi},
		{"down", Pt(0, 0), Pt(0, -3), -math.Pi / 2},
		{"coincident", Pt(7, 7), Pt(7, 7), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, AngleBetween(tt.a, tt.b), 1e-9)
		})
	}
}

func TestDistanceBetween(t *testing.T) {
	assert.Equal(t, 5.0, DistanceBetween(Pt(0, 0), Pt(3, 4)))
	assert.Equal(t, 5.0, DistanceBetween(Pt(3, 4), Pt(0, 0)))
	assert.Equal(t, 0.0, DistanceBetween(Pt(1, 1), Pt(1, 1)))
}

func TestComputeImpulse_AngleMatchesAtan2(t *testing.T) {
	pairs := [][2]Point2D{
		{Pt(0, 0), Pt(50, 20)},
		{Pt(100, 100), Pt(20, 180)},
		{Pt(-4, 9), Pt(-300, -250)},
		{Pt(200, 150), Pt(200.5, 10)},
	}

	for _, p := range pairs {
		iv := ComputeImpulse(p[0], p[1])
		assert.Equal(t, math.Atan2(p[1].Y-p[0].Y, p[1].X-p[0].X), iv.Angle)
	}
}

func TestComputeImpulse_MonotonicUpToMaxDrag(t *testing.T) {
	start := Pt(0, 0)
	prev := -1.0
	for d := 0.0; d <= MaxDragDistance; d += 5 {
		iv := ComputeImpulse(start, Pt(d, 0))
		assert.GreaterOrEqual(t, iv.Impulse, prev, "distance %v", d)
		prev = iv.Impulse
	}
	assert.InDelta(t, ImpulseScale, prev, 1e-9)
}

func TestComputeImpulse_ConstantBeyondMaxDrag(t *testing.T) {
	atMax := ComputeImpulse(Pt(0, 0), Pt(0, MaxDragDistance))

	for _, d := range []float64{MaxDragDistance + 1, 350, 1000, 1e6} {
		iv := ComputeImpulse(Pt(0, 0), Pt(0, d))
		assert.Equal(t, atMax.Impulse, iv.Impulse, "distance %v", d)
	}
}

func TestComputeImpulse_HalfDrag(t *testing.T) {
	iv := ComputeImpulse(Pt(10, 10), Pt(110, 10))

	assert.InDelta(t, 50.0, iv.Impulse, 1e-9)
	assert.InDelta(t, 0.0, iv.Angle, 1e-9)
}

func TestComputeImpulseWith_CustomTuning(t *testing.T) {
	iv := ComputeImpulseWith(Pt(0, 0), Pt(30, 40), 100, 10)

	assert.InDelta(t, 5.0, iv.Impulse, 1e-9)
}

func TestImpulseVector_Vector(t *testing.T) {
	iv := ImpulseVector{Angle: math.Pi / 2, Impulse: 10}
	v := iv.Vector(3)

	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 30, v.Y, 1e-9)

	assert.Equal(t, Point2D{}, ImpulseVector{}.Vector(50))
}

func TestClampOffset(t *testing.T) {
	anchor := Pt(100, 100)

	t.Run("inside radius unchanged", func(t *testing.T) {
		assert.Equal(t, Pt(130, 100), ClampOffset(anchor, Pt(130, 100), 120))
	})

	t.Run("outside radius scaled down", func(t *testing.T) {
		p := ClampOffset(anchor, Pt(100, -200), 120)
		assert.InDelta(t, 100, p.X, 1e-9)
		assert.InDelta(t, -20, p.Y, 1e-9)
		assert.InDelta(t, 120, DistanceBetween(anchor, p), 1e-9)
	})

	t.Run("at anchor", func(t *testing.T) {
		assert.Equal(t, anchor, ClampOffset(anchor, anchor, 120))
	})
}

func TestPoint2D_Rotate(t *testing.T) {
	v := Pt(10, 0).Rotate(math.Pi / 4)

	assert.InDelta(t, 10/math.Sqrt2, v.X, 1e-9)
	assert.InDelta(t, 10/math.Sqrt2, v.Y, 1e-9)
	assert.InDelta(t, 10, v.Len(), 1e-9)
}

func TestPoint2D_Normalize(t *testing.T) {
	assert.InDelta(t, 1.0, Pt(3, 4).Normalize().Len(), 1e-9)
	assert.Equal(t, Point2D{}, Point2D{}.Normalize())
}
