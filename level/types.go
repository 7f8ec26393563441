// Package level turns Tiled maps into arenas: collision boxes, spawn points
// and the trigger volumes that teleport or push the character. One tile is
// one meter; object X maps to world X and object Y to world Z.
package level

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/shared/gamemath"
)

// Arena holds everything parsed from one map.
type Arena struct {
	Name        string
	Platforms   []gamemath.Box
	Spawn       Spawn            // the spawn named "player", else the first one
	Spawns      map[string]Spawn // every spawn by name
	Teleporters []Teleporter
	DeathPlanes []DeathPlane
	ForcePads   []ForcePad
}

// Volume is an axis-aligned trigger box.
type Volume struct {
	Min, Max mgl64.Vec3
}

func (v Volume) Contains(p mgl64.Vec3) bool {
	return p.X() >= v.Min.X() && p.X() <= v.Max.X() &&
		p.Y() >= v.Min.Y() && p.Y() <= v.Max.Y() &&
		p.Z() >= v.Min.Z() && p.Z() <= v.Max.Z()
}

// Floor is the center of the bottom face.
func (v Volume) Floor() mgl64.Vec3 {
	return mgl64.Vec3{(v.Min.X() + v.Max.X()) / 2, v.Min.Y(), (v.Min.Z() + v.Max.Z()) / 2}
}

// Spawn is a position and a facing.
type Spawn struct {
	Name     string
	Position mgl64.Vec3
	Yaw      float64 // degrees
}

func (s Spawn) Rotation() mgl64.Quat {
	return gamemath.Euler(0, s.Yaw)
}

// Teleporter sends the character to the floor of its destination.
type Teleporter struct {
	Name             string
	Volume           Volume
	Yaw              float64
	Destination      int  // index into Arena.Teleporters, -1 when destination only
	DestinationOnly  bool // never triggers, only receives
	OverrideRotation bool // arrivals take this teleporter's yaw
}

// DeathPlane returns the character to Respawn when entered.
type DeathPlane struct {
	Name    string
	Volume  Volume
	Respawn Spawn
}

// ForcePad emits Force at its floor when the character enters it, at most
// once per Cooldown seconds.
type ForcePad struct {
	Name     string
	Volume   Volume
	Force    config.ForceSettings
	Cooldown float64
}
