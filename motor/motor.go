// Package motor moves a kinematic capsule through static geometry and
// reports ground contact to the character controller driving it.
package motor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/shared/gamemath"
	"github.com/automoto/momentum/shared/simtime"
)

// Contact is the grounding report of the last step.
type Contact struct {
	FoundAnyGround    bool
	IsStableOnGround  bool
	SnappingPrevented bool // standing past a ledge, the normals below differ
	GroundNormal      mgl64.Vec3
	OuterGroundNormal mgl64.Vec3
	InnerGroundNormal mgl64.Vec3
	GroundPoint       mgl64.Vec3
}

// CharacterController receives the motor callbacks, in this order, once
// per step: BeforeCharacterUpdate, UpdateVelocity, UpdateRotation, then
// after the move PostGroundingUpdate, OnGroundHit when stable ground was
// found and AfterCharacterUpdate.
type CharacterController interface {
	BeforeCharacterUpdate(dt float64)
	UpdateVelocity(velocity mgl64.Vec3, dt float64) mgl64.Vec3
	UpdateRotation(rotation mgl64.Quat, dt float64) mgl64.Quat
	PostGroundingUpdate(dt float64)
	OnGroundHit(normal, point mgl64.Vec3)
	AfterCharacterUpdate(dt float64)
}

// Motor is a vertical capsule. Position is the bottom of the capsule.
type Motor struct {
	settings   config.MotorConfig
	clock      *simtime.Clock
	geometry   *Geometry
	controller CharacterController

	position mgl64.Vec3
	previous mgl64.Vec3
	rotation mgl64.Quat
	velocity mgl64.Vec3
	contact  Contact
	unground simtime.Timer
}

func New(settings config.MotorConfig, clock *simtime.Clock, geometry *Geometry, position mgl64.Vec3) *Motor {
	if clock == nil || geometry == nil {
		panic("motor: nil clock or geometry")
	}
	m := &Motor{
		settings: settings,
		clock:    clock,
		geometry: geometry,
		position: position,
		previous: position,
		rotation: mgl64.QuatIdent(),
	}
	m.probe(position.Y())
	return m
}

func (m *Motor) SetController(c CharacterController) {
	m.controller = c
}

func (m *Motor) SetSettings(settings config.MotorConfig) {
	m.settings = settings
}

func (m *Motor) Contact() Contact              { return m.contact }
func (m *Motor) Position() mgl64.Vec3          { return m.position }
func (m *Motor) TransientPosition() mgl64.Vec3 { return m.position }
func (m *Motor) Rotation() mgl64.Quat          { return m.rotation }
func (m *Motor) Velocity() mgl64.Vec3          { return m.velocity }
func (m *Motor) Radius() float64               { return m.settings.Radius }
func (m *Motor) Height() float64               { return m.settings.Height }
func (m *Motor) CharacterUp() mgl64.Vec3       { return m.rotation.Rotate(gamemath.Up) }
func (m *Motor) CharacterForward() mgl64.Vec3  { return m.rotation.Rotate(gamemath.Forward) }
func (m *Motor) CharacterRight() mgl64.Vec3    { return m.rotation.Rotate(gamemath.Right) }

// Interpolated blends the positions before and after the last step.
func (m *Motor) Interpolated(alpha float64) mgl64.Vec3 {
	return gamemath.LerpVec3(m.previous, m.position, alpha)
}

// ForceUnground stops ground snapping for duration seconds, or for the
// configured default when duration is not positive.
func (m *Motor) ForceUnground(duration float64) {
	if duration <= 0 {
		duration = m.settings.UngroundDuration
	}
	m.unground = m.clock.Timer(duration)
}

// SetPositionAndRotation moves the capsule without sweeping. With
// bypassInterpolation the previous position jumps as well.
func (m *Motor) SetPositionAndRotation(position mgl64.Vec3, rotation mgl64.Quat, bypassInterpolation bool) {
	m.position = position
	m.rotation = rotation
	if bypassInterpolation {
		m.previous = position
	}
	m.contact = Contact{}
	m.probe(position.Y())
}

// GroundDistance casts straight down from the capsule bottom, ignoring the
// snapped grounding state. It returns +Inf over the void.
func (m *Motor) GroundDistance() float64 {
	origin := m.position.Add(mgl64.Vec3{0, m.settings.StepOffset, 0})
	d := m.geometry.Raycast(origin) - m.settings.StepOffset
	return math.Max(d, 0)
}

// Step runs one fixed update.
func (m *Motor) Step(dt float64) {
	c := m.controller
	if c == nil || dt <= 0 {
		return
	}
	m.previous = m.position

	c.BeforeCharacterUpdate(dt)
	m.velocity = c.UpdateVelocity(m.velocity, dt)
	m.rotation = c.UpdateRotation(m.rotation, dt)

	prevY := m.position.Y()
	m.move(dt)
	m.probe(prevY)

	c.PostGroundingUpdate(dt)
	if m.contact.IsStableOnGround {
		c.OnGroundHit(m.contact.GroundNormal, m.contact.GroundPoint)
	}
	c.AfterCharacterUpdate(dt)
}

func (m *Motor) move(dt float64) {
	delta := m.velocity.Mul(dt)
	p := m.position

	p[0] += delta.X()
	if m.blocked(p) {
		p[0] = m.position.X()
		m.velocity[0] = 0
	}
	p[2] += delta.Z()
	if m.blocked(p) {
		p[2] = m.position.Z()
		m.velocity[2] = 0
	}
	p[1] += delta.Y()
	m.position = p
}

// blocked reports whether a box rises more than a step above the feet
// inside the capsule footprint at p.
func (m *Motor) blocked(p mgl64.Vec3) bool {
	for _, b := range m.geometry.Near(p.X(), p.Z(), m.settings.Radius) {
		if b.Min.Y() >= p.Y()+m.settings.Height {
			continue
		}
		cx := gamemath.Clamp(p.X(), b.Min.X(), b.Max.X())
		cz := gamemath.Clamp(p.Z(), b.Min.Z(), b.Max.Z())
		if b.SurfaceHeight(cx, cz) > p.Y()+m.settings.StepOffset {
			return true
		}
	}
	return false
}

func (m *Motor) probe(prevY float64) {
	wasStable := m.contact.IsStableOnGround
	m.contact = Contact{}

	p := m.position
	limit := math.Max(prevY, p.Y()) + m.settings.StepOffset
	var best *gamemath.Box
	bestHeight := math.Inf(-1)
	var bestPoint mgl64.Vec3
	for _, b := range m.geometry.Near(p.X(), p.Z(), m.settings.Radius) {
		cx := gamemath.Clamp(p.X(), b.Min.X(), b.Max.X())
		cz := gamemath.Clamp(p.Z(), b.Min.Z(), b.Max.Z())
		s := b.SurfaceHeight(cx, cz)
		if s > limit || s <= bestHeight {
			continue
		}
		best, bestHeight = b, s
		bestPoint = mgl64.Vec3{cx, s, cz}
	}
	if best == nil {
		return
	}

	gap := p.Y() - bestHeight
	if m.unground.IsRunning() {
		if gap < 0 {
			m.position[1] = bestHeight
		}
		return
	}
	snap := 1e-4
	if wasStable {
		snap = m.settings.MaxSnapDistance
	}
	if gap > snap || (gap > 1e-4 && m.velocity.Y() > 0) {
		return
	}

	m.position[1] = bestHeight
	normal := best.SurfaceNormal()
	m.contact = Contact{
		FoundAnyGround:    true,
		IsStableOnGround:  best.SlopeAngle() <= m.settings.MaxStableSlopeAngle,
		GroundNormal:      normal,
		OuterGroundNormal: normal,
		InnerGroundNormal: normal,
		GroundPoint:       mgl64.Vec3{p.X(), bestHeight, p.Z()},
	}
	if !best.ContainsXZ(p.X(), p.Z()) {
		m.contact.SnappingPrevented = true
		m.contact.GroundPoint = bestPoint
		edge := gamemath.Horizontal(p.Sub(bestPoint))
		m.contact.OuterGroundNormal = gamemath.SafeNormalize(gamemath.SafeNormalize(edge).Add(gamemath.Up))
	}
	if !m.contact.IsStableOnGround && m.velocity.Dot(normal) < 0 {
		m.velocity = gamemath.ProjectOnPlane(m.velocity, normal)
	}
}
