package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/locomotion"
	"github.com/automoto/momentum/shared/gamemath"
)

// ThirdPerson orbits a shoulder pivot behind the character. The target
// angles move instantly with input; the rotations follow them smoothly on
// unscaled time.
type ThirdPerson struct {
	lookScale
	settings   config.ThirdPersonConfig
	target     Target
	horizontal float64
	vertical   float64
	yawRot     mgl64.Quat
	pitchRot   mgl64.Quat
	view       gamemath.Transform
}

func NewThirdPerson(settings config.ThirdPersonConfig, target Target) *ThirdPerson {
	c := &ThirdPerson{
		lookScale: lookScale{sensitivity: Sensitivity{Desktop: 1, Gamepad: 1}},
		settings:  settings,
		target:    target,
		view:      gamemath.NewTransform(target.Position()),
	}
	c.ResetAngles()
	c.yawRot = gamemath.Euler(0, c.horizontal)
	c.pitchRot = gamemath.Euler(c.vertical, 0)
	return c
}

func (c *ThirdPerson) Kind() Kind { return KindThirdPerson }

func (c *ThirdPerson) SetSettings(settings config.ThirdPersonConfig) {
	c.settings = settings
}

func (c *ThirdPerson) OnEnter(prev Controller) {
	if _, ok := prev.(*FirstPerson); ok {
		c.ResetAngles()
	}
}

func (c *ThirdPerson) OnExit(Controller) {}
func (c *ThirdPerson) OnEnabled()        {}
func (c *ThirdPerson) OnDisabled()       {}

func (c *ThirdPerson) LateUpdate(f Frame) locomotion.Inputs {
	s := c.settings
	look := c.scale(f).Mul(s.LookSensitivity)

	c.horizontal += look.X()
	c.vertical = gamemath.Clamp(c.vertical-look.Y(), s.MinVerticalAngle, s.MaxVerticalAngle)

	t := f.UnscaledDt * s.LookSharpness
	c.yawRot = gamemath.Slerp(c.yawRot, gamemath.Euler(0, c.horizontal), t)
	c.pitchRot = gamemath.Slerp(c.pitchRot, gamemath.Euler(c.vertical, 0), t)

	rotation := c.yawRot.Mul(c.pitchRot).Normalize()
	pivot := c.target.Position().Add(gamemath.Up.Mul(s.ShoulderHeight))
	c.view = gamemath.Transform{
		Position: pivot.Sub(rotation.Rotate(gamemath.Forward).Mul(s.Distance)),
		Rotation: rotation,
	}
	return snapshot(f, locomotion.ThirdPerson, c.yawRot, c.view)
}

func (c *ThirdPerson) Transform() gamemath.Transform { return c.view }

// Angles returns the target horizontal and vertical angles in degrees.
func (c *ThirdPerson) Angles() (horizontal, vertical float64) {
	return c.horizontal, c.vertical
}

// ResetAngles puts the camera behind the character at the reset pitch.
func (c *ThirdPerson) ResetAngles() {
	c.vertical = c.settings.ResetAngle
	c.horizontal = gamemath.Yaw(c.target.Rotation())
}
