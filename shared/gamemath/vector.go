package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World axes. +Y is up, +Z is forward, +X is right.
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Down    = mgl64.Vec3{0, -1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
	Right   = mgl64.Vec3{1, 0, 0}
)

const epsilon = 1e-9

// SafeNormalize returns v scaled to unit length, or the zero vector when v
// is too short to have a direction.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// ClampMagnitude shortens v to at most max.
func ClampMagnitude(v mgl64.Vec3, max float64) mgl64.Vec3 {
	if max <= 0 {
		return mgl64.Vec3{}
	}
	l := v.Len()
	if l <= max {
		return v
	}
	return v.Mul(max / l)
}

// ClampMagnitude2 is ClampMagnitude for stick and look vectors.
func ClampMagnitude2(v mgl64.Vec2, max float64) mgl64.Vec2 {
	if max <= 0 {
		return mgl64.Vec2{}
	}
	l := v.Len()
	if l <= max {
		return v
	}
	return v.Mul(max / l)
}

// LerpVec3 interpolates component-wise from a to b. t is clamped to [0, 1].
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = Clamp01(t)
	return a.Add(b.Sub(a).Mul(t))
}

// Horizontal drops the vertical component.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// WithY returns v with its vertical component replaced.
func WithY(v mgl64.Vec3, y float64) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), y, v.Z()}
}

// ProjectOnPlane removes the part of v along the plane normal n.
func ProjectOnPlane(v, n mgl64.Vec3) mgl64.Vec3 {
	n = SafeNormalize(n)
	return v.Sub(n.Mul(v.Dot(n)))
}

// DirectionTangentToSurface bends dir so that it runs along the surface with
// the given normal, keeping its heading relative to up.
func DirectionTangentToSurface(dir, surfaceNormal, up mgl64.Vec3) mgl64.Vec3 {
	right := dir.Cross(up)
	return SafeNormalize(surfaceNormal.Cross(right))
}

// ApproxZero reports whether every component of v is within tolerance of 0.
func ApproxZero(v mgl64.Vec3, tolerance float64) bool {
	return math.Abs(v.X()) <= tolerance && math.Abs(v.Y()) <= tolerance && math.Abs(v.Z()) <= tolerance
}
