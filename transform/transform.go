// Package transform converts points and directions between world space and
// the local space of a positioned, rotated frame.
package transform

import "github.com/go-gl/mathgl/mgl64"

// Transform represents a position and orientation in 3D space
type Transform struct {
	Position        mgl64.Vec3
	Rotation        mgl64.Quat
	InverseRotation mgl64.Quat
}

// New creates a transform and caches the inverse of rotation.
func New(position mgl64.Vec3, rotation mgl64.Quat) Transform {
	rotation = rotation.Normalize()
	return Transform{
		Position:        position,
		Rotation:        rotation,
		InverseRotation: rotation.Inverse(),
	}
}

// Identity creates an identity transform
func Identity() Transform {
	return New(mgl64.Vec3{0, 0, 0}, mgl64.QuatIdent())
}

// WorldToLocal expresses a world space point in the transform's local space.
func (t Transform) WorldToLocal(world mgl64.Vec3) mgl64.Vec3 {
	return t.InverseRotation.Rotate(world.Sub(t.Position))
}

// LocalToWorld expresses a local space point in world space.
func (t Transform) LocalToWorld(local mgl64.Vec3) mgl64.Vec3 {
	return t.Position.Add(t.Rotation.Rotate(local))
}

// Direction rotates a local direction into world space, ignoring Position.
func (t Transform) Direction(local mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(local)
}
