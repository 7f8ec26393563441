// Package camera holds the camera variants that turn device input into the
// locomotion input snapshot, plus the state machine that switches between
// them and the presentation helpers they share.
package camera

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/locomotion"
	"github.com/automoto/momentum/shared/gamemath"
)

// Kind names a camera variant.
type Kind int

const (
	KindFirstPerson Kind = iota
	KindThirdPerson
	KindTopdown
	KindFree
)

var kindNames = map[Kind]string{
	KindFirstPerson: "firstPerson",
	KindThirdPerson: "thirdPerson",
	KindTopdown:     "topdown",
	KindFree:        "free",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a settings name to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown camera %q", name)
}

// Actions are the ability buttons forwarded to locomotion untouched.
type Actions struct {
	Aim        locomotion.Button
	Maneuver   locomotion.Button
	Sprint     locomotion.Button
	Crouch     locomotion.Button
	Blink      locomotion.Button
	ThrustDown locomotion.Button
}

// Frame is the device state a camera reads once per rendered frame.
type Frame struct {
	Dt         float64
	UnscaledDt float64

	Look     mgl64.Vec2 // degrees, x right, y up
	Movement mgl64.Vec3 // x right, y up (free camera only), z forward
	Scroll   float64
	Rotate   float64 // -1 to 1, topdown orbit
	Brake    bool
	Gamepad  bool
	Actions  Actions

	Height float64 // current character height
}

// Target is the character a camera follows.
type Target interface {
	Position() mgl64.Vec3
	Rotation() mgl64.Quat
}

// Controller is one camera variant. Only the active controller receives
// LateUpdate.
type Controller interface {
	Kind() Kind
	OnEnter(prev Controller)
	OnExit(next Controller)
	OnEnabled()
	OnDisabled()
	LateUpdate(f Frame) locomotion.Inputs
	Transform() gamemath.Transform
	ResetAngles()
}

// Sensitivity is the look multiplier per device.
type Sensitivity struct {
	Desktop float64
	Gamepad float64
}

func (s Sensitivity) For(gamepad bool) float64 {
	if gamepad {
		return s.Gamepad
	}
	return s.Desktop
}

type lookScale struct {
	sensitivity Sensitivity
}

// SetSensitivity replaces the look multipliers.
func (l *lookScale) SetSensitivity(s Sensitivity) {
	l.sensitivity = s
}

func (l *lookScale) scale(f Frame) mgl64.Vec2 {
	return f.Look.Mul(l.sensitivity.For(f.Gamepad))
}

func snapshot(f Frame, mode locomotion.CameraMode, forward mgl64.Quat, view gamemath.Transform) locomotion.Inputs {
	return locomotion.Inputs{
		Movement:        mgl64.Vec3{f.Movement.X(), 0, f.Movement.Z()},
		ForwardRotation: forward,
		CameraMode:      mode,
		Gamepad:         f.Gamepad,
		Camera:          view,
		Aim:             f.Actions.Aim,
		Maneuver:        f.Actions.Maneuver,
		Sprint:          f.Actions.Sprint,
		Crouch:          f.Actions.Crouch,
		Blink:           f.Actions.Blink,
		ThrustDown:      f.Actions.ThrustDown,
	}
}
