package system

import (
	"github.com/younwookim/slingshot/internal/domain/entity"
	"github.com/younwookim/slingshot/internal/domain/geom"
)

// PredictTrajectory returns n points of the ballistic path a bird of spec
// would follow from start after a launch with impulse, sampled every step
// seconds. Drag and collisions are ignored.
func PredictTrajectory(spec entity.BirdSpec, start geom.Point2D, impulse geom.ImpulseVector, gravity float64, n int, step float64) []geom.Point2D {
	if n <= 0 || spec.Mass <= 0 {
		return nil
	}
	applied := spec.LaunchImpulse(impulse.Impulse)
	v0 := geom.ImpulseVector{Angle: impulse.Angle, Impulse: applied}.Vector(1 / spec.Mass)

	points := make([]geom.Point2D, n)
	for i := range points {
		t := float64(i) * step
		points[i] = geom.Point2D{
			X: start.X + v0.X*t,
			Y: start.Y + v0.Y*t + 0.5*gravity*t*t,
		}
	}
	return points
}
