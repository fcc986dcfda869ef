package angle

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to mgl64.Vec3
		expected float64
	}{
		{"x to y", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}, 90},
		{"same direction", mgl64.Vec3{2, 3, 4}, mgl64.Vec3{2, 3, 4}, 0},
		{"scaled same direction", mgl64.Vec3{1, 1, 0}, mgl64.Vec3{10, 10, 0}, 0},
		{"opposite", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{-3, 0, 0}, 180},
		{"45 degrees", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 1, 0}, 45},
		{"zero input", mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Between(tt.from, tt.to)
			require.InDelta(t, tt.expected, got, 1e-5)
			require.False(t, math.IsNaN(got), "Between returned NaN")
		})
	}
}

func TestBetweenNearlyParallelDoesNotNaN(t *testing.T) {
	// dot of the normalized vectors can round to slightly above 1
	v := mgl64.Vec3{0.1, 0.2, 0.3}
	for i := 0; i < 100; i++ {
		scaled := v.Mul(float64(i) + 0.7)
		got := Between(v, scaled)
		require.False(t, math.IsNaN(got), "Between(%v, %v) returned NaN", v, scaled)
		require.InDelta(t, 0.0, got, 1e-4)
	}
}

func TestSignedBetween(t *testing.T) {
	x := mgl64.Vec3{1, 0, 0}
	y := mgl64.Vec3{0, 1, 0}
	z := mgl64.Vec3{0, 0, 1}

	t.Run("counter clockwise around z", func(t *testing.T) {
		require.InDelta(t, 90.0, SignedBetween(x, y, z), 1e-6)
	})

	t.Run("swapping from and to flips sign", func(t *testing.T) {
		require.InDelta(t, -90.0, SignedBetween(y, x, z), 1e-6)
	})

	t.Run("flipping the axis flips sign", func(t *testing.T) {
		require.InDelta(t, -90.0, SignedBetween(x, y, z.Mul(-1)), 1e-6)
	})

	t.Run("arbitrary vectors flip sign on swap", func(t *testing.T) {
		a := mgl64.Vec3{1, 2, 0.5}
		b := mgl64.Vec3{-2, 0.3, 1}
		axis := a.Cross(b)
		forward := SignedBetween(a, b, axis)
		backward := SignedBetween(b, a, axis)
		assert.Greater(t, forward, 0.0)
		assert.InDelta(t, forward, -backward, 1e-9)
	})

	t.Run("perpendicular axis is positive", func(t *testing.T) {
		require.InDelta(t, 90.0, SignedBetween(x, y, x), 1e-6)
	})
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{90, 90},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{540, 180},
		{725, 5},
		{-725, -5},
	}

	for _, tt := range tests {
		got := Normalize(tt.in)
		assert.InDelta(t, tt.expected, got, 1e-9, "Normalize(%v)", tt.in)
		assert.True(t, got > -180 && got <= 180, "Normalize(%v) = %v out of range", tt.in, got)
	}
}

func TestInFieldOfView(t *testing.T) {
	observer := mgl64.Vec3{0, 0, 0}
	forward := mgl64.Vec3{0, 0, 1}

	assert.True(t, InFieldOfView(observer, forward, mgl64.Vec3{0, 0, 10}, 60))
	assert.True(t, InFieldOfView(observer, forward, mgl64.Vec3{1, 0, 10}, 60))
	assert.False(t, InFieldOfView(observer, forward, mgl64.Vec3{10, 0, 1}, 60))
	assert.False(t, InFieldOfView(observer, forward, mgl64.Vec3{0, 0, -10}, 300))
}
