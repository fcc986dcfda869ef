package closest

import (
	"github.com/akmonengine/geoquery/shape"
	"github.com/akmonengine/geoquery/vector"
	"github.com/go-gl/mathgl/mgl64"
)

// Pair holds the two mutually closest points found by a two-shape query.
// S and T are the parameters of OnFirst and OnSecond along their shapes.
type Pair struct {
	OnFirst  mgl64.Vec3
	OnSecond mgl64.Vec3
	S        float64
	T        float64
}

// Distance returns |OnFirst - OnSecond|.
func (p Pair) Distance() float64 {
	return p.OnFirst.Sub(p.OnSecond).Len()
}

// Swap returns the pair as seen with the two inputs exchanged.
func (p Pair) Swap() Pair {
	return Pair{OnFirst: p.OnSecond, OnSecond: p.OnFirst, S: p.T, T: p.S}
}

// BetweenSegments finds the points of segments p1→p2 and p3→p4 closest to each other.
func BetweenSegments(p1, p2, p3, p4 mgl64.Vec3) Pair {
	return BetweenSegmentsThreshold(p1, p2, p3, p4, vector.Epsilon)
}

// BetweenSegmentPair is BetweenSegments for two shape.Segment values.
func BetweenSegmentPair(first, second shape.Segment) Pair {
	return BetweenSegments(first.Start, first.End, second.Start, second.End)
}

// BetweenSegmentsThreshold finds the points of segments p1→p2 and p3→p4 closest
// to each other, treating squared lengths <= epsilon as degenerate.
//
// The segments are parametrized as p1 + d1*s and p3 + d2*t with s, t in [0, 1]:
//   - Both degenerate: the endpoints p1 and p3.
//   - First degenerate: s = 0, t is p1 projected on the second segment.
//   - Second degenerate: t = 0, s is p3 projected on the first segment.
//   - General: solve for s on the infinite lines and clamp it, derive t from s;
//     when t leaves [0, 1] it is clamped and s is solved again against the
//     fixed endpoint. Skipping that second pass returns a wrong pair near the
//     segment ends.
//
// Parallel segments (denom exactly 0) take s = 0 instead of minimizing over s,
// and rely on the second pass to move s off the start. This tie-break is an
// approximation: callers must not treat the returned pair as canonical when the
// segments are parallel.
//
// Reference: Ericson, "Real-Time Collision Detection" (2005), 5.1.9.
func BetweenSegmentsThreshold(p1, p2, p3, p4 mgl64.Vec3, epsilon float64) Pair {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	r := p1.Sub(p3)

	a := d1.Dot(d1) // squared length of the first segment
	e := d2.Dot(d2) // squared length of the second segment
	f := d2.Dot(r)

	var s, t float64

	switch {
	case a <= epsilon && e <= epsilon:
		return Pair{OnFirst: p1, OnSecond: p3}
	case a <= epsilon:
		s = 0
		t = vector.Clamp01(f / e)
	default:
		c := d1.Dot(r)
		if e <= epsilon {
			t = 0
			s = vector.Clamp01(-c / a)
			break
		}

		b := d1.Dot(d2)
		denom := a*e - b*b

		if denom != 0 {
			s = vector.Clamp01((b*f - c*e) / denom)
		} else {
			s = 0
		}

		t = (b*s + f) / e

		if t < 0 {
			t = 0
			s = vector.Clamp01(-c / a)
		} else if t > 1 {
			t = 1
			s = vector.Clamp01((b - c) / a)
		}
	}

	return Pair{
		OnFirst:  p1.Add(d1.Mul(s)),
		OnSecond: p3.Add(d2.Mul(t)),
		S:        s,
		T:        t,
	}
}

// BetweenLines finds the closest points of the infinite lines through two rays.
// Directions are normalized, so S and T are distances from each origin and may
// be negative. Parallel lines (denominator below epsilon) keep the first origin
// and project it onto the second line.
func BetweenLines(first, second shape.Ray) Pair {
	d1 := vector.SafeNormalize(first.Direction, vector.Zero)
	d2 := vector.SafeNormalize(second.Direction, vector.Zero)
	w0 := first.Origin.Sub(second.Origin)

	a := d1.Dot(d1)
	b := d1.Dot(d2)
	c := d2.Dot(d2)
	d := d1.Dot(w0)
	e := d2.Dot(w0)

	denom := a*c - b*b

	var s, t float64
	if denom < vector.Epsilon {
		s = 0
		if c >= vector.Epsilon {
			t = e / c
		}
	} else {
		s = (b*e - c*d) / denom
		t = (a*e - b*d) / denom
	}

	return Pair{
		OnFirst:  first.Origin.Add(d1.Mul(s)),
		OnSecond: second.Origin.Add(d2.Mul(t)),
		S:        s,
		T:        t,
	}
}
