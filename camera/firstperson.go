package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/locomotion"
	"github.com/automoto/momentum/shared/gamemath"
)

// FirstPerson turns the body with horizontal look and pitches the view.
type FirstPerson struct {
	lookScale
	settings config.FirstPersonConfig
	target   Target
	yaw      float64
	pitch    float64
	recoil   mgl64.Vec2
	view     gamemath.Transform
}

func NewFirstPerson(settings config.FirstPersonConfig, target Target) *FirstPerson {
	c := &FirstPerson{
		lookScale: lookScale{sensitivity: Sensitivity{Desktop: 1, Gamepad: 1}},
		settings:  settings,
		target:    target,
		view:      gamemath.NewTransform(target.Position()),
	}
	c.ResetAngles()
	return c
}

func (c *FirstPerson) Kind() Kind { return KindFirstPerson }

func (c *FirstPerson) SetSettings(settings config.FirstPersonConfig) {
	c.settings = settings
}

// AddRecoil queues a look offset in degrees, consumed by the next frame.
func (c *FirstPerson) AddRecoil(r mgl64.Vec2) {
	c.recoil = c.recoil.Add(r)
}

func (c *FirstPerson) OnEnter(prev Controller) {
	switch prev.(type) {
	case *ThirdPerson, *Topdown:
		c.ResetAngles()
	}
}

func (c *FirstPerson) OnExit(Controller) {}
func (c *FirstPerson) OnEnabled()        {}
func (c *FirstPerson) OnDisabled()       {}

func (c *FirstPerson) LateUpdate(f Frame) locomotion.Inputs {
	look := c.scale(f).Mul(c.settings.MouseSensitivity).Add(c.recoil)
	c.recoil = mgl64.Vec2{}

	c.yaw += look.X()
	c.pitch = gamemath.Clamp(c.pitch-look.Y(), c.settings.MinVerticalAngle, c.settings.MaxVerticalAngle)

	eye := f.Height - c.settings.EyeHeightOffset
	c.view = gamemath.Transform{
		Position: c.target.Position().Add(gamemath.Up.Mul(eye)),
		Rotation: gamemath.Euler(c.pitch, c.yaw),
	}
	return snapshot(f, locomotion.FirstPerson, gamemath.Euler(0, c.yaw), c.view)
}

func (c *FirstPerson) Transform() gamemath.Transform { return c.view }

// Pitch is the vertical view angle in degrees, positive looking down.
func (c *FirstPerson) Pitch() float64 { return c.pitch }

// ResetAngles levels the view and faces where the character faces.
func (c *FirstPerson) ResetAngles() {
	c.pitch = 0
	c.yaw = gamemath.Yaw(c.target.Rotation())
}
