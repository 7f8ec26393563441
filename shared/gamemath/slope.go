package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SlopeAxis names the horizontal axis along which a ramp rises.
type SlopeAxis string

const (
	SlopeNone    SlopeAxis = ""
	SlopeUpEast  SlopeAxis = "up_east"  // rises toward +X
	SlopeUpWest  SlopeAxis = "up_west"  // rises toward -X
	SlopeUpNorth SlopeAxis = "up_north" // rises toward +Z
	SlopeUpSouth SlopeAxis = "up_south" // rises toward -Z
)

// Box is an axis-aligned block. Min and Max are opposite corners.
type Box struct {
	Min, Max mgl64.Vec3
	Slope    SlopeAxis
}

// ContainsXZ reports whether the point lies over the box footprint.
func (b Box) ContainsXZ(x, z float64) bool {
	return x >= b.Min.X() && x <= b.Max.X() && z >= b.Min.Z() && z <= b.Max.Z()
}

// SurfaceHeight returns the top surface height of the box at (x, z). Flat
// boxes return Max.Y everywhere; ramps rise linearly from Min.Y to Max.Y.
func (b Box) SurfaceHeight(x, z float64) float64 {
	var t float64
	switch b.Slope {
	case SlopeUpEast:
		t = InverseLerp(b.Min.X(), b.Max.X(), x)
	case SlopeUpWest:
		t = 1 - InverseLerp(b.Min.X(), b.Max.X(), x)
	case SlopeUpNorth:
		t = InverseLerp(b.Min.Z(), b.Max.Z(), z)
	case SlopeUpSouth:
		t = 1 - InverseLerp(b.Min.Z(), b.Max.Z(), z)
	default:
		return b.Max.Y()
	}
	return b.Min.Y() + (b.Max.Y()-b.Min.Y())*t
}

// SurfaceNormal returns the unit normal of the top surface.
func (b Box) SurfaceNormal() mgl64.Vec3 {
	rise := b.Max.Y() - b.Min.Y()
	switch b.Slope {
	case SlopeUpEast:
		return SafeNormalize(mgl64.Vec3{-rise, b.Max.X() - b.Min.X(), 0})
	case SlopeUpWest:
		return SafeNormalize(mgl64.Vec3{rise, b.Max.X() - b.Min.X(), 0})
	case SlopeUpNorth:
		return SafeNormalize(mgl64.Vec3{0, b.Max.Z() - b.Min.Z(), -rise})
	case SlopeUpSouth:
		return SafeNormalize(mgl64.Vec3{0, b.Max.Z() - b.Min.Z(), rise})
	}
	return Up
}

// SlopeAngle returns the angle between the surface normal and up, in degrees.
func (b Box) SlopeAngle() float64 {
	return mgl64.RadToDeg(math.Acos(Clamp(b.SurfaceNormal().Dot(Up), -1, 1)))
}
