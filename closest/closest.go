// Package closest answers closest-point queries against lines and segments.
//
// A line is infinite and its queries never clamp. A segment is bounded and its
// queries clamp the projection parameter to the segment, which is the only
// difference between the two families.
//
// Degenerate segments (shorter than the tolerance) behave as a single point.
package closest

import (
	"github.com/akmonengine/geoquery/shape"
	"github.com/akmonengine/geoquery/vector"
	"github.com/go-gl/mathgl/mgl64"
)

// PointOnLine returns the point of the infinite line through linePoint along
// lineDirection closest to point. A degenerate direction collapses the line to linePoint.
func PointOnLine(point, linePoint, lineDirection mgl64.Vec3) mgl64.Vec3 {
	lineDirection = vector.SafeNormalize(lineDirection, vector.Zero)
	projectionLength := point.Sub(linePoint).Dot(lineDirection)
	return linePoint.Add(lineDirection.Mul(projectionLength))
}

// PointOnSegment returns the point of segment start→end closest to point.
func PointOnSegment(point, start, end mgl64.Vec3) mgl64.Vec3 {
	return PointOnSegmentThreshold(point, start, end, vector.Epsilon)
}

// PointOnSegmentThreshold is PointOnSegment with a caller supplied tolerance.
// A segment shorter than epsilon returns start.
func PointOnSegmentThreshold(point, start, end mgl64.Vec3, epsilon float64) mgl64.Vec3 {
	direction, length, ok := unitDirection(start, end, epsilon)
	if !ok {
		return start
	}

	projectionLength := mgl64.Clamp(point.Sub(start).Dot(direction), 0, length)
	return start.Add(direction.Mul(projectionLength))
}

// SegmentParameter returns where PointOnSegment lands, as a fraction of the
// segment in [0, 1]. It is 0 for a degenerate segment.
func SegmentParameter(point, start, end mgl64.Vec3) float64 {
	return SegmentParameterThreshold(point, start, end, vector.Epsilon)
}

// SegmentParameterThreshold is SegmentParameter with a caller supplied tolerance.
func SegmentParameterThreshold(point, start, end mgl64.Vec3, epsilon float64) float64 {
	direction, length, ok := unitDirection(start, end, epsilon)
	if !ok {
		return 0
	}

	return mgl64.Clamp(point.Sub(start).Dot(direction), 0, length) / length
}

// DistanceToSegment returns the Euclidean distance from point to segment start→end.
func DistanceToSegment(point, start, end mgl64.Vec3) float64 {
	return DistanceToSegmentThreshold(point, start, end, vector.Epsilon)
}

// DistanceToSegmentThreshold is DistanceToSegment with a caller supplied tolerance.
func DistanceToSegmentThreshold(point, start, end mgl64.Vec3, epsilon float64) float64 {
	return point.Sub(PointOnSegmentThreshold(point, start, end, epsilon)).Len()
}

// DistanceToSegmentShape is DistanceToSegment for a shape.Segment.
func DistanceToSegmentShape(point mgl64.Vec3, segment shape.Segment) float64 {
	return DistanceToSegment(point, segment.Start, segment.End)
}

func unitDirection(start, end mgl64.Vec3, epsilon float64) (mgl64.Vec3, float64, bool) {
	direction := end.Sub(start)
	length := direction.Len()
	if length < epsilon {
		return vector.Zero, 0, false
	}
	return direction.Mul(1.0 / length), length, true
}
