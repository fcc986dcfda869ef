package vector

import "github.com/go-gl/mathgl/mgl64"

// TriangleArea returns the area of triangle abc.
func TriangleArea(a, b, c mgl64.Vec3) float64 {
	return b.Sub(a).Cross(c.Sub(a)).Len() * 0.5
}

// IsLeft reports whether point lies to the left of the directed line start→end
// when seen from above, with Y as the up axis.
func IsLeft(start, end, point mgl64.Vec3) bool {
	return end.Sub(start).Cross(point.Sub(start)).Y() > 0
}

// IsInFront reports whether target lies in front of an observer looking along forward.
// threshold is the minimum cosine between forward and the direction to target;
// 0 means anywhere in the forward half-space.
func IsInFront(observer, forward, target mgl64.Vec3, threshold float64) bool {
	toTarget := SafeNormalize(target.Sub(observer), Zero)
	return SafeNormalize(forward, Zero).Dot(toTarget) > threshold
}
