package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Euler builds a rotation from pitch and yaw in degrees. Yaw turns around
// the world up axis, positive pitch looks down.
func Euler(pitch, yaw float64) mgl64.Quat {
	yawQ := mgl64.QuatRotate(mgl64.DegToRad(yaw), Up)
	pitchQ := mgl64.QuatRotate(mgl64.DegToRad(pitch), Right)
	return yawQ.Mul(pitchQ)
}

// LookRotation returns the rotation whose forward axis points along dir.
// A zero direction yields the identity.
func LookRotation(dir mgl64.Vec3) mgl64.Quat {
	dir = SafeNormalize(dir)
	if dir.LenSqr() == 0 {
		return mgl64.QuatIdent()
	}
	yaw := math.Atan2(dir.X(), dir.Z())
	pitch := -math.Asin(Clamp(dir.Y(), -1, 1))
	return mgl64.QuatRotate(yaw, Up).Mul(mgl64.QuatRotate(pitch, Right))
}

// Yaw returns the heading of q in degrees, measured from +Z toward +X.
func Yaw(q mgl64.Quat) float64 {
	f := q.Rotate(Forward)
	if math.Abs(f.X()) < epsilon && math.Abs(f.Z()) < epsilon {
		u := q.Rotate(Up)
		f = mgl64.Vec3{-u.X(), 0, -u.Z()}
	}
	return mgl64.RadToDeg(math.Atan2(f.X(), f.Z()))
}

// Slerp interpolates rotations with t clamped to [0, 1].
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	return mgl64.QuatSlerp(a, b, Clamp01(t)).Normalize()
}

// SlerpSharp eases a toward b at the given sharpness per second.
func SlerpSharp(a, b mgl64.Quat, sharpness, dt float64) mgl64.Quat {
	return Slerp(a, b, 1-math.Exp(-sharpness*dt))
}

// Transform is a position and orientation in world space.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform returns a transform at position with identity rotation.
func NewTransform(position mgl64.Vec3) Transform {
	return Transform{Position: position, Rotation: mgl64.QuatIdent()}
}

func (t Transform) Forward() mgl64.Vec3 { return t.Rotation.Rotate(Forward) }
func (t Transform) Right() mgl64.Vec3   { return t.Rotation.Rotate(Right) }
func (t Transform) Up() mgl64.Vec3      { return t.Rotation.Rotate(Up) }

// TransformDirection maps a direction from local to world space.
func (t Transform) TransformDirection(local mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(local)
}
