// Package projection splits a vector into its component along another vector
// (the projection) and its perpendicular remainder (the rejection).
//
// For any onto with |onto|² >= epsilon, Project(v, onto) + Reject(v, onto) == v.
package projection

import (
	"github.com/akmonengine/geoquery/vector"
	"github.com/go-gl/mathgl/mgl64"
)

// Project returns the orthogonal projection of v onto onto.
// A near-zero onto has no direction; the zero vector is returned.
func Project(v, onto mgl64.Vec3) mgl64.Vec3 {
	return ProjectThreshold(v, onto, vector.Epsilon)
}

// ProjectThreshold is Project with a caller supplied tolerance.
func ProjectThreshold(v, onto mgl64.Vec3, epsilon float64) mgl64.Vec3 {
	lenSqr := onto.LenSqr()
	if lenSqr < epsilon {
		return vector.Zero
	}
	return onto.Mul(v.Dot(onto) / lenSqr)
}

// Scalar returns the signed length of v along the direction of onto.
// It is 0 when onto is degenerate.
func Scalar(v, onto mgl64.Vec3) float64 {
	return v.Dot(vector.SafeNormalize(onto, vector.Zero))
}

// Reject returns the component of v perpendicular to onto.
func Reject(v, onto mgl64.Vec3) mgl64.Vec3 {
	return RejectThreshold(v, onto, vector.Epsilon)
}

// RejectThreshold is Reject with a caller supplied tolerance.
func RejectThreshold(v, onto mgl64.Vec3, epsilon float64) mgl64.Vec3 {
	return v.Sub(ProjectThreshold(v, onto, epsilon))
}

// Decompose returns the projection and the rejection of v with respect to onto.
func Decompose(v, onto mgl64.Vec3) (along, perpendicular mgl64.Vec3) {
	along = Project(v, onto)
	return along, v.Sub(along)
}
