// Package force applies point forces and expanding shockwaves to registered
// receivers.
package force

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/shared/broadphase"
	"github.com/automoto/momentum/shared/gamemath"
	"github.com/automoto/momentum/tags"
	"github.com/solarlune/resolv"
)

// Receiver is anything that can be pushed around.
type Receiver interface {
	CenterOfGravity() mgl64.Vec3
	AddForce(force mgl64.Vec3, flags config.ForceFlags)
}

type shockwave struct {
	center   mgl64.Vec3
	settings config.ForceSettings
	distance float64
}

// System owns the receivers and the shockwaves still expanding. It belongs
// to one world and is not safe for concurrent use.
type System struct {
	grid       *broadphase.Grid
	receivers  map[Receiver]*resolv.Object
	shockwaves []*shockwave
}

// New covers the given XZ bounds with the broad phase grid.
func New(minX, minZ, maxX, maxZ float64) *System {
	return &System{
		grid:      broadphase.New(minX, minZ, maxX, maxZ, 4),
		receivers: make(map[Receiver]*resolv.Object),
	}
}

func (s *System) Register(r Receiver) {
	if _, ok := s.receivers[r]; ok {
		return
	}
	p := r.CenterOfGravity()
	s.receivers[r] = s.grid.Insert(p.X(), p.Z(), p.X(), p.Z(), r, tags.ResolvForceReceiver)
}

func (s *System) Unregister(r Receiver) {
	if obj, ok := s.receivers[r]; ok {
		s.grid.Remove(obj)
		delete(s.receivers, r)
	}
}

// Pending returns how many shockwaves are still expanding.
func (s *System) Pending() int {
	return len(s.shockwaves)
}

// AddForceAtPosition resolves an immediate force right away and registers a
// shockwave for Update to expand.
func (s *System) AddForceAtPosition(position mgl64.Vec3, settings config.ForceSettings) {
	center := position.Add(settings.ExplosionOffset)
	switch settings.Type {
	case config.ForceImmediate:
		s.apply(center, settings, settings.Radius, 1)
	case config.ForceShockwave:
		s.shockwaves = append(s.shockwaves, &shockwave{center: center, settings: settings})
	default:
		panic("force: unknown force type " + settings.Type.String())
	}
}

// Update grows every shockwave by its speed and pushes whatever it covers.
func (s *System) Update(dt float64) {
	kept := s.shockwaves[:0]
	for _, w := range s.shockwaves {
		if w.settings.ShockwaveSpeed <= 0 {
			w.distance = w.settings.Radius
		} else {
			w.distance += w.settings.ShockwaveSpeed * dt
		}
		s.apply(w.center, w.settings, min(w.distance, w.settings.Radius), dt)
		if w.distance < w.settings.Radius {
			kept = append(kept, w)
		}
	}
	clear(s.shockwaves[len(kept):])
	s.shockwaves = kept
}

// ForceAt is the force a receiver at point gets from a force centered at
// center, before any time scaling. It pushes away from the center.
func ForceAt(center, point mgl64.Vec3, settings config.ForceSettings) mgl64.Vec3 {
	dir := point.Sub(center)
	falloff := settings.Curve.Evaluate(gamemath.InverseLerp(0, settings.Radius, dir.Len()))
	return gamemath.SafeNormalize(dir).Mul(settings.Force * falloff)
}

func (s *System) apply(center mgl64.Vec3, settings config.ForceSettings, reach, scale float64) {
	if reach <= 0 {
		return
	}
	s.sync()
	for _, hit := range s.grid.QueryRadius(center.X(), center.Z(), reach, tags.ResolvForceReceiver) {
		r := hit.(Receiver)
		point := r.CenterOfGravity()
		if point.Sub(center).Len() > reach {
			continue
		}
		r.AddForce(ForceAt(center, point, settings).Mul(scale), settings.Flags)
	}
}

func (s *System) sync() {
	for r, obj := range s.receivers {
		p := r.CenterOfGravity()
		s.grid.Move(obj, p.X(), p.Z(), p.X(), p.Z())
	}
}
