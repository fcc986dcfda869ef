// Package plane implements point-to-plane distance and projection, and the
// intersection of rays and segments with a plane.
//
// A plane is given implicitly by a point on it and a normal. The normal does
// not need to be unit length; a near-zero normal falls back to vector.Up
// instead of dividing by its magnitude.
package plane

import (
	"math"

	"github.com/akmonengine/geoquery/shape"
	"github.com/akmonengine/geoquery/vector"
	"github.com/go-gl/mathgl/mgl64"
)

// Side classifies a point against a plane.
type Side int

const (
	SideOn Side = iota
	SideFront
	SideBack
)

func (s Side) String() string {
	switch s {
	case SideFront:
		return "front"
	case SideBack:
		return "back"
	default:
		return "on"
	}
}

// Hit is a successful intersection: the point and its distance along the query.
type Hit struct {
	Point    mgl64.Vec3
	Distance float64
}

// SignedDistance returns the distance from point to the plane, positive on the
// side the normal points toward.
func SignedDistance(point, planePoint, planeNormal mgl64.Vec3) float64 {
	return SignedDistanceThreshold(point, planePoint, planeNormal, vector.Epsilon)
}

// SignedDistanceThreshold is SignedDistance with a caller supplied tolerance
// for the degenerate normal check.
func SignedDistanceThreshold(point, planePoint, planeNormal mgl64.Vec3, epsilon float64) float64 {
	normal := vector.SafeNormalizeThreshold(planeNormal, vector.Up, epsilon)
	return point.Sub(planePoint).Dot(normal)
}

// ProjectPoint returns the orthogonal projection of point on the plane.
func ProjectPoint(point, planePoint, planeNormal mgl64.Vec3) mgl64.Vec3 {
	return ProjectPointThreshold(point, planePoint, planeNormal, vector.Epsilon)
}

// ProjectPointThreshold is ProjectPoint with a caller supplied tolerance.
func ProjectPointThreshold(point, planePoint, planeNormal mgl64.Vec3, epsilon float64) mgl64.Vec3 {
	// move along the same unit normal SignedDistance measured with
	normal := vector.SafeNormalizeThreshold(planeNormal, vector.Up, epsilon)
	distance := point.Sub(planePoint).Dot(normal)
	return point.Sub(normal.Mul(distance))
}

// Classify reports on which side of the plane point lies. Points closer than
// vector.Epsilon are on the plane.
func Classify(point, planePoint, planeNormal mgl64.Vec3) Side {
	switch vector.Sign(SignedDistance(point, planePoint, planeNormal), vector.Epsilon) {
	case 1:
		return SideFront
	case -1:
		return SideBack
	default:
		return SideOn
	}
}

// RayIntersection intersects ray with the plane.
// It returns false when the ray is parallel to the plane or when the plane is
// behind the ray origin. Hit.Distance is measured in units of ray.Direction,
// so ray.At(hit.Distance) == hit.Point.
func RayIntersection(ray shape.Ray, planePoint, planeNormal mgl64.Vec3) (Hit, bool) {
	return RayIntersectionThreshold(ray, planePoint, planeNormal, vector.Epsilon)
}

// RayIntersectionThreshold is RayIntersection with a caller supplied tolerance
// for the parallel check.
func RayIntersectionThreshold(ray shape.Ray, planePoint, planeNormal mgl64.Vec3, epsilon float64) (Hit, bool) {
	denom := ray.Direction.Dot(planeNormal)
	if math.Abs(denom) < epsilon {
		return Hit{}, false
	}

	distance := planePoint.Sub(ray.Origin).Dot(planeNormal) / denom
	if distance < 0 {
		return Hit{}, false
	}

	return Hit{Point: ray.At(distance), Distance: distance}, true
}

// SegmentIntersection intersects segment start→end with the plane.
// It returns false when both endpoints lie strictly on the same side, or when
// the segment lies in the plane. Hit.Distance is measured from start.
func SegmentIntersection(start, end, planePoint, planeNormal mgl64.Vec3) (Hit, bool) {
	normal := vector.SafeNormalize(planeNormal, vector.Up)

	startDist := start.Sub(planePoint).Dot(normal)
	endDist := end.Sub(planePoint).Dot(normal)

	if startDist*endDist > 0 {
		return Hit{}, false
	}

	dir := end.Sub(start)
	denom := dir.Dot(normal)
	if math.Abs(denom) < vector.Epsilon {
		return Hit{}, false // segment parallel to plane
	}

	t := vector.Clamp01(-startDist / denom)
	point := start.Add(dir.Mul(t))

	return Hit{Point: point, Distance: point.Sub(start).Len()}, true
}
