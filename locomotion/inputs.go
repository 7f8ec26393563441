package locomotion

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/shared/gamemath"
)

// CameraMode decides how the character turns.
type CameraMode int

const (
	FirstPerson CameraMode = iota
	ThirdPerson
)

func (m CameraMode) String() string {
	switch m {
	case FirstPerson:
		return "firstPerson"
	case ThirdPerson:
		return "thirdPerson"
	}
	return fmt.Sprintf("CameraMode(%d)", int(m))
}

// Button is the state of one action for a frame.
type Button struct {
	Held     bool
	Pressed  bool // went down this frame
	Released bool // went up this frame
}

// Inputs is the snapshot a camera controller builds every frame. The latest
// snapshot replaces the previous one; Pressed and Released are cleared after
// the first physics step that sees them.
type Inputs struct {
	Movement        mgl64.Vec3 // device space, x right, z forward
	ForwardRotation mgl64.Quat // camera heading
	CameraMode      CameraMode
	Gamepad         bool
	Camera          gamemath.Transform

	Aim        Button
	Maneuver   Button
	Sprint     Button
	Crouch     Button
	Blink      Button
	ThrustDown Button
}

func (b *Button) clearEdges() {
	b.Pressed = false
	b.Released = false
}

func (in *Inputs) clearEdges() {
	in.Aim.clearEdges()
	in.Maneuver.clearEdges()
	in.Sprint.clearEdges()
	in.Crouch.clearEdges()
	in.Blink.clearEdges()
	in.ThrustDown.clearEdges()
}
