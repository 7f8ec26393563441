package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/locomotion"
	"github.com/automoto/momentum/shared/gamemath"
)

// Free is a detached fly camera. The character receives no movement while
// it is active.
type Free struct {
	settings config.FreeCameraConfig
	speed    float64
	current  float64 // speed after brake and sprint
	yaw      float64
	pitchX   float64 // positive looks up
	velocity mgl64.Vec3
	frames   int
	view     gamemath.Transform
}

func NewFree(settings config.FreeCameraConfig) *Free {
	return &Free{
		settings: settings,
		speed:    settings.StartSpeed,
		view:     gamemath.NewTransform(mgl64.Vec3{}),
	}
}

func (c *Free) Kind() Kind { return KindFree }

func (c *Free) SetSettings(settings config.FreeCameraConfig) {
	c.settings = settings
}

// OnEnter starts from wherever the previous camera was looking.
func (c *Free) OnEnter(prev Controller) {
	c.frames = 0
	c.velocity = mgl64.Vec3{}
	if prev == nil {
		return
	}
	c.SetTransform(prev.Transform())
}

func (c *Free) OnExit(Controller) {}

func (c *Free) OnEnabled() {
	c.frames = 0
}

func (c *Free) OnDisabled() {}

// SetTransform moves the camera, keeping only yaw and pitch of rotation.
func (c *Free) SetTransform(t gamemath.Transform) {
	c.view.Position = t.Position
	c.yaw = gamemath.Yaw(t.Rotation)
	f := t.Rotation.Rotate(gamemath.Forward)
	c.pitchX = mgl64.RadToDeg(math.Asin(gamemath.Clamp(f.Y(), -1, 1)))
	c.pitchX = gamemath.Clamp(c.pitchX, -c.settings.MaxXAngle, c.settings.MaxXAngle)
	c.view.Rotation = gamemath.Euler(-c.pitchX, c.yaw)
}

// Speed is the fly speed including brake and sprint.
func (c *Free) Speed() float64 { return c.current }

// BaseSpeed is the scroll-adjusted fly speed.
func (c *Free) BaseSpeed() float64 { return c.speed }

func (c *Free) adjustSpeed(scroll float64) {
	s := c.settings
	if scroll == 0 {
		return
	}
	n := gamemath.InverseLerp(s.MinSpeed, s.MaxSpeed, c.speed)
	c.speed += scroll * s.ScrollFactor * s.SpeedCurve.Evaluate(n)
	c.speed = gamemath.Clamp(c.speed, s.MinSpeed, s.MaxSpeed)
}

func (c *Free) LateUpdate(f Frame) locomotion.Inputs {
	s := c.settings
	c.adjustSpeed(f.Scroll)

	if c.frames >= s.SkipLookFrames {
		look := f.Look.Mul(s.MouseSensitivity)
		c.yaw += look.X()
		c.pitchX = gamemath.Clamp(c.pitchX+look.Y(), -s.MaxXAngle, s.MaxXAngle)
	}
	c.view.Rotation = gamemath.Euler(-c.pitchX, c.yaw)

	multiplier := 1.0
	if f.Brake {
		multiplier *= s.BrakeSpeedMultiplier
	}
	if f.Actions.Sprint.Held {
		multiplier *= s.SprintSpeedMultiplier
	}
	c.current = c.speed * multiplier

	direction := gamemath.SafeNormalize(f.Movement).Mul(c.current)
	c.velocity = gamemath.LerpVec3(c.velocity, direction, s.AccelerationSharpness*f.Dt)
	c.view.Position = c.view.Position.Add(c.view.Rotation.Rotate(c.velocity.Mul(f.Dt)))
	c.frames++

	return locomotion.Inputs{
		ForwardRotation: mgl64.QuatIdent(),
		CameraMode:      locomotion.ThirdPerson,
		Gamepad:         f.Gamepad,
		Camera:          c.view,
	}
}

func (c *Free) Transform() gamemath.Transform { return c.view }

func (c *Free) ResetAngles() {
	c.pitchX = 0
}
