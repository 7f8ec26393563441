package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/momentum/config"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
	InputScript
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputSource fills the current frame of an InputData. Current has already
// been cleared and the analog values zeroed when Poll runs.
type InputSource interface {
	Poll(input *InputData) error
}

// InputData stores the current and previous frame's pressed state for all actions
// plus the analog values of the current frame.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	Movement        mgl64.Vec2            // x right, y forward, at most unit length
	Look            mgl64.Vec2            // degrees, x right, y up
	Scroll          float64               // wheel ticks
	Rotate          float64               // -1 to 1, topdown orbit
	LastInputMethod InputMethod           // Most recently used input method

	Source InputSource // nil leaves the frame empty
	Err    error       // last Source failure
}

var Input = donburi.NewComponentType[InputData]()

// Gamepad reports whether the last input came from a gamepad.
func (d *InputData) Gamepad() bool {
	return d.LastInputMethod == InputXbox || d.LastInputMethod == InputPlayStation
}
