// Package angle computes unsigned and signed angles between vectors, in degrees.
package angle

import (
	"math"

	"github.com/akmonengine/geoquery/vector"
	"github.com/go-gl/mathgl/mgl64"
)

// Between returns the angle between from and to in degrees, in [0, 180].
// Degenerate inputs normalize to the zero vector, which yields 90.
func Between(from, to mgl64.Vec3) float64 {
	from = vector.SafeNormalize(from, vector.Zero)
	to = vector.SafeNormalize(to, vector.Zero)

	// acos is NaN outside [-1, 1] and rounding can push the dot just past it
	dot := mgl64.Clamp(from.Dot(to), -1, 1)
	return mgl64.RadToDeg(math.Acos(dot))
}

// SignedBetween returns Between(from, to) signed by the handedness of the
// rotation around axis: positive when from×to points along axis.
// When from×to is perpendicular to axis the result is positive.
func SignedBetween(from, to, axis mgl64.Vec3) float64 {
	unsigned := Between(from, to)
	if axis.Dot(from.Cross(to)) < 0 {
		return -unsigned
	}
	return unsigned
}

// Normalize folds angle into (-180, 180].
func Normalize(angle float64) float64 {
	for angle > 180 {
		angle -= 360
	}
	for angle <= -180 {
		angle += 360
	}
	return angle
}

// InFieldOfView reports whether target is inside a cone of fov degrees centred
// on forward, seen from observer.
func InFieldOfView(observer, forward, target mgl64.Vec3, fov float64) bool {
	return Between(forward, target.Sub(observer)) < fov/2
}
