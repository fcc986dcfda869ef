package scenario

import (
	"github.com/akmonengine/geoquery/angle"
	"github.com/akmonengine/geoquery/closest"
	"github.com/akmonengine/geoquery/plane"
	"github.com/akmonengine/geoquery/projection"
	"github.com/go-gl/mathgl/mgl64"
)

// Result is the outcome of one query.
//
// Point is the primary point answer and Other the secondary one (the second
// closest point, the rejection, the round-tripped point). Scalar carries a
// distance or an angle in degrees. Hit is false only when an intersection
// query found nothing.
type Result struct {
	ID     string
	Kind   Kind
	Point  mgl64.Vec3
	Other  mgl64.Vec3
	Scalar float64
	Hit    bool
}

// Evaluate runs q with the given tolerance. q must have passed validation.
func Evaluate(q Query, epsilon float64) Result {
	res := Result{ID: q.ID, Kind: q.Kind, Hit: true}

	switch q.Kind {
	case KindProject:
		res.Point = projection.ProjectThreshold(*q.Vector, *q.Onto, epsilon)
		res.Other = projection.RejectThreshold(*q.Vector, *q.Onto, epsilon)
		res.Scalar = projection.Scalar(*q.Vector, *q.Onto)

	case KindReject:
		rejection := projection.RejectThreshold(*q.Vector, *q.Onto, epsilon)
		res.Point = rejection
		res.Other = projection.ProjectThreshold(*q.Vector, *q.Onto, epsilon)
		res.Scalar = rejection.Len()

	case KindAngle:
		res.Scalar = angle.Between(*q.From, *q.To)

	case KindSignedAngle:
		res.Scalar = angle.SignedBetween(*q.From, *q.To, *q.Axis)

	case KindClosestOnLine:
		p := closest.PointOnLine(*q.Point, q.Ray.Origin, q.Ray.Direction)
		res.Point = p
		res.Scalar = q.Point.Sub(p).Len()

	case KindClosestOnSegment:
		seg := *q.Segment
		res.Point = closest.PointOnSegmentThreshold(*q.Point, seg.Start, seg.End, epsilon)
		res.Scalar = closest.DistanceToSegmentThreshold(*q.Point, seg.Start, seg.End, epsilon)

	case KindSegmentSegment:
		a, b := *q.Segment, *q.OtherSegment
		pair := closest.BetweenSegmentsThreshold(a.Start, a.End, b.Start, b.End, epsilon)
		res.Point = pair.OnFirst
		res.Other = pair.OnSecond
		res.Scalar = pair.Distance()

	case KindRayRay:
		pair := closest.BetweenLines(*q.Ray, *q.OtherRay)
		res.Point = pair.OnFirst
		res.Other = pair.OnSecond
		res.Scalar = pair.Distance()

	case KindPlaneDistance:
		res.Scalar = plane.SignedDistanceThreshold(*q.Point, q.Plane.Point, q.Plane.Normal, epsilon)

	case KindPlaneProject:
		projected := plane.ProjectPointThreshold(*q.Point, q.Plane.Point, q.Plane.Normal, epsilon)
		res.Point = projected
		res.Scalar = q.Point.Sub(projected).Len()

	case KindRayPlane:
		hit, ok := plane.RayIntersectionThreshold(*q.Ray, q.Plane.Point, q.Plane.Normal, epsilon)
		res.Hit = ok
		res.Point = hit.Point
		res.Scalar = hit.Distance

	case KindSegmentPlane:
		hit, ok := plane.SegmentIntersection(q.Segment.Start, q.Segment.End, q.Plane.Point, q.Plane.Normal)
		res.Hit = ok
		res.Point = hit.Point
		res.Scalar = hit.Distance

	case KindWorldToLocal:
		tr := q.Frame.Transform()
		local := tr.WorldToLocal(*q.Point)
		res.Point = local
		res.Other = tr.LocalToWorld(local)
		res.Scalar = local.Len()
	}

	return res
}
