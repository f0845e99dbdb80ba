// Package geom provides the 2D point math used for aiming and launching.
package geom

import "math"

const (
	// MaxDragDistance caps how far a drag gesture contributes to launch power.
	MaxDragDistance = 200.0
	// ImpulseScale maps a fully stretched drag to an impulse magnitude.
	ImpulseScale = 100.0
)

// Point2D is a position or vector in world space (y axis up).
type Point2D struct {
	X, Y float64
}

// Pt is shorthand for Point2D{x, y}.
func Pt(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Add returns p+q.
func (p Point2D) Add(q Point2D) Point2D { return Point2D{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point2D) Sub(q Point2D) Point2D { return Point2D{p.X - q.X, p.Y - q.Y} }

// Scale returns p*s.
func (p Point2D) Scale(s float64) Point2D { return Point2D{p.X * s, p.Y * s} }

// Len returns the length of p as a vector.
func (p Point2D) Len() float64 { return math.Hypot(p.X, p.Y) }

// Normalize returns p scaled to unit length. The zero vector stays zero.
func (p Point2D) Normalize() Point2D {
	l := p.Len()
	if l == 0 {
		return Point2D{}
	}
	return p.Scale(1 / l)
}

// Rotate returns p rotated counter-clockwise by angle radians.
func (p Point2D) Rotate(angle float64) Point2D {
	sin, cos := math.Sincos(angle)
	return Point2D{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// ImpulseVector is a launch impulse in polar form.
// The zero value is the "no impulse" sentinel used for preview birds.
type ImpulseVector struct {
	Angle   float64 // radians
	Impulse float64 // magnitude, unscaled
}

// Vector converts the impulse to cartesian form, scaled by mult.
func (v ImpulseVector) Vector(mult float64) Point2D {
	return Point2D{X: v.Impulse * mult, Y: 0}.Rotate(v.Angle)
}

// AngleBetween returns the angle of the a->b direction.
func AngleBetween(a, b Point2D) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// DistanceBetween returns the Euclidean distance between a and b.
func DistanceBetween(a, b Point2D) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// ComputeImpulse converts a drag from start to end into an impulse using
// MaxDragDistance and ImpulseScale.
func ComputeImpulse(start, end Point2D) ImpulseVector {
	return ComputeImpulseWith(start, end, MaxDragDistance, ImpulseScale)
}

// ComputeImpulseWith is ComputeImpulse with explicit tuning. Drags longer than
// maxDrag produce the same impulse as maxDrag.
func ComputeImpulseWith(start, end Point2D, maxDrag, scale float64) ImpulseVector {
	dist := DistanceBetween(start, end)
	normalized := math.Min(dist, maxDrag) / maxDrag
	return ImpulseVector{
		Angle:   AngleBetween(start, end),
		Impulse: normalized * scale,
	}
}

// ClampOffset returns p moved toward anchor so that it lies at most radius away.
func ClampOffset(anchor, p Point2D, radius float64) Point2D {
	offset := p.Sub(anchor)
	l := offset.Len()
	if l <= radius || l == 0 {
		return p
	}
	return anchor.Add(offset.Scale(radius / l))
}
