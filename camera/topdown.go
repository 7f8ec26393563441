package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/locomotion"
	"github.com/automoto/momentum/shared/gamemath"
)

// Topdown looks down on the character from a fixed pitch and height. The
// rotate input orbits it around the character; movement is relative to its
// yaw.
type Topdown struct {
	settings  config.TopdownConfig
	target    Target
	yaw       float64
	targetYaw float64
	view      gamemath.Transform
}

func NewTopdown(settings config.TopdownConfig, target Target) *Topdown {
	return &Topdown{
		settings: settings,
		target:   target,
		view:     gamemath.NewTransform(target.Position()),
	}
}

func (c *Topdown) Kind() Kind { return KindTopdown }

func (c *Topdown) SetSettings(settings config.TopdownConfig) {
	c.settings = settings
}

func (c *Topdown) OnEnter(Controller) {}
func (c *Topdown) OnExit(Controller)  {}
func (c *Topdown) OnEnabled()         {}

// OnDisabled keeps the orbit where it is so re-enabling resumes it.
func (c *Topdown) OnDisabled() {
	c.targetYaw = c.yaw
}

func (c *Topdown) LateUpdate(f Frame) locomotion.Inputs {
	s := c.settings
	c.targetYaw += f.Rotate * s.RotationSpeed * f.UnscaledDt
	c.yaw = gamemath.Approach(c.yaw, c.targetYaw, s.RotationSharpness, f.UnscaledDt)

	heading := gamemath.Euler(0, c.yaw)
	back := s.Height / math.Tan(mgl64.DegToRad(s.Pitch))
	offset := gamemath.Up.Mul(s.Height).Sub(heading.Rotate(gamemath.Forward).Mul(back))
	c.view = gamemath.Transform{
		Position: c.target.Position().Add(offset),
		Rotation: gamemath.Euler(s.Pitch, c.yaw),
	}
	return snapshot(f, locomotion.ThirdPerson, heading, c.view)
}

func (c *Topdown) Transform() gamemath.Transform { return c.view }

// Yaw is the current orbit angle in degrees.
func (c *Topdown) Yaw() float64 { return c.yaw }

// ResetAngles orbits behind the character.
func (c *Topdown) ResetAngles() {
	c.targetYaw = gamemath.Yaw(c.target.Rotation())
}
