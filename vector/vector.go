// Package vector holds the shared vector algebra used by every query package.
//
// Vectors are mgl64.Vec3 values. The library does not distinguish points from
// directions; callers track which is which.
//
// Every "is this zero" decision goes through a tolerance. Functions come in two
// forms, following mgl64's ApproxEqual / ApproxEqualThreshold pair: the plain
// form uses Epsilon, the Threshold form takes the tolerance from the caller.
package vector

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the default tolerance below which a magnitude or difference is treated as zero.
const Epsilon = 0.0001

var (
	// Zero is the zero vector, also the fallback for directions that have none.
	Zero = mgl64.Vec3{0, 0, 0}
	// Up is the canonical fallback for degenerate plane normals.
	Up = mgl64.Vec3{0, 1, 0}
)

// Dot returns a·b.
func Dot(a, b mgl64.Vec3) float64 {
	return a.Dot(b)
}

// Cross returns a×b using the right-handed convention: Cross(X, Y) = Z.
func Cross(a, b mgl64.Vec3) mgl64.Vec3 {
	return a.Cross(b)
}

// SafeNormalize returns v scaled to unit length, or fallback when |v|² <= Epsilon.
func SafeNormalize(v, fallback mgl64.Vec3) mgl64.Vec3 {
	return SafeNormalizeThreshold(v, fallback, Epsilon)
}

// SafeNormalizeThreshold is SafeNormalize with a caller supplied tolerance.
// It never divides by a near-zero magnitude.
func SafeNormalizeThreshold(v, fallback mgl64.Vec3, epsilon float64) mgl64.Vec3 {
	lenSqr := v.LenSqr()
	if lenSqr > epsilon {
		return v.Mul(1.0 / math.Sqrt(lenSqr))
	}
	return fallback
}

// IsZero reports whether |v|² is within epsilon of zero.
func IsZero(v mgl64.Vec3, epsilon float64) bool {
	return v.LenSqr() <= epsilon
}

// Approximately reports whether a and b are closer than Epsilon.
func Approximately(a, b mgl64.Vec3) bool {
	return ApproximatelyThreshold(a, b, Epsilon)
}

// ApproximatelyThreshold reports whether |a-b|² < epsilon².
func ApproximatelyThreshold(a, b mgl64.Vec3, epsilon float64) bool {
	return a.Sub(b).LenSqr() < epsilon*epsilon
}

// ApproximatelyScalar reports whether |a-b| < Epsilon.
func ApproximatelyScalar(a, b float64) bool {
	return ApproximatelyScalarThreshold(a, b, Epsilon)
}

// ApproximatelyScalarThreshold reports whether |a-b| < epsilon.
func ApproximatelyScalarThreshold(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// Clamp01 clamps x into [0, 1].
func Clamp01(x float64) float64 {
	return mgl64.Clamp(x, 0, 1)
}

// Sign returns 1, -1 or 0, treating |x| <= epsilon as zero.
func Sign(x, epsilon float64) int {
	if x > epsilon {
		return 1
	}
	if x < -epsilon {
		return -1
	}
	return 0
}
