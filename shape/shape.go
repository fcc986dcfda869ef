// Package shape defines the value types the query packages exchange:
// segments, rays and planes. None of them has identity or mutable state.
package shape

import (
	"github.com/akmonengine/geoquery/vector"
	"github.com/go-gl/mathgl/mgl64"
)

// Segment is the bounded path from Start to End.
// It degenerates to a point when Start and End coincide.
type Segment struct {
	Start mgl64.Vec3 `yaml:"start"`
	End   mgl64.Vec3 `yaml:"end"`
}

// NewSegment creates a segment from start to end
func NewSegment(start, end mgl64.Vec3) Segment {
	return Segment{Start: start, End: end}
}

// Direction returns End - Start, not normalized.
func (s Segment) Direction() mgl64.Vec3 {
	return s.End.Sub(s.Start)
}

func (s Segment) Length() float64 {
	return s.Direction().Len()
}

// At returns Start + (End-Start)*t.
func (s Segment) At(t float64) mgl64.Vec3 {
	return s.Start.Add(s.Direction().Mul(t))
}

// Reversed returns the same segment traversed from End to Start.
func (s Segment) Reversed() Segment {
	return Segment{Start: s.End, End: s.Start}
}

// IsDegenerate reports whether the segment is shorter than epsilon.
func (s Segment) IsDegenerate(epsilon float64) bool {
	return s.Length() < epsilon
}

// Ray is a half-line from Origin along Direction.
// Direction does not need to be unit length.
type Ray struct {
	Origin    mgl64.Vec3 `yaml:"origin"`
	Direction mgl64.Vec3 `yaml:"direction"`
}

// At returns Origin + Direction*distance.
// distance is in units of Direction's length.
func (r Ray) At(distance float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(distance))
}

// Plane is the infinite plane through Point with the given Normal.
type Plane struct {
	Point  mgl64.Vec3 `yaml:"point"`
	Normal mgl64.Vec3 `yaml:"normal"`
}

// UnitNormal returns the normalized normal, or vector.Up when it is degenerate.
func (p Plane) UnitNormal() mgl64.Vec3 {
	return vector.SafeNormalize(p.Normal, vector.Up)
}

// Flipped returns the same plane with the normal reversed.
func (p Plane) Flipped() Plane {
	return Plane{Point: p.Point, Normal: p.Normal.Mul(-1)}
}
