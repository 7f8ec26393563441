package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical sandbox action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionManeuver
	ActionSprint
	ActionCrouch
	ActionBlink
	ActionAim
	ActionThrustDown
	ActionCameraNext
	ActionCameraPrevious
	ActionCameraFirstPerson
	ActionCameraThirdPerson
	ActionCameraTopdown
	ActionCameraFree
	ActionResetCamera
	ActionRespawn
	ActionBulletTime
	ActionFreeCameraBrake
	ActionRotateLeft
	ActionRotateRight
	ActionToggleOverlay
	ActionAddMaxStamina
	ActionRemoveMaxStamina
	ActionToggleCrouchMode
	ActionPause
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionMoveForward:       "moveForward",
	ActionMoveBackward:      "moveBackward",
	ActionMoveLeft:          "moveLeft",
	ActionMoveRight:         "moveRight",
	ActionManeuver:          "maneuver",
	ActionSprint:            "sprint",
	ActionCrouch:            "crouch",
	ActionBlink:             "blink",
	ActionAim:               "aim",
	ActionThrustDown:        "thrustDown",
	ActionCameraNext:        "cameraNext",
	ActionCameraPrevious:    "cameraPrevious",
	ActionCameraFirstPerson: "cameraFirstPerson",
	ActionCameraThirdPerson: "cameraThirdPerson",
	ActionCameraTopdown:     "cameraTopdown",
	ActionCameraFree:        "cameraFree",
	ActionResetCamera:       "resetCamera",
	ActionRespawn:           "respawn",
	ActionBulletTime:        "bulletTime",
	ActionFreeCameraBrake:   "freeCameraBrake",
	ActionRotateLeft:        "rotateLeft",
	ActionRotateRight:       "rotateRight",
	ActionToggleOverlay:     "toggleOverlay",
	ActionAddMaxStamina:     "addMaxStamina",
	ActionRemoveMaxStamina:  "removeMaxStamina",
	ActionToggleCrouchMode:  "toggleCrouchMode",
	ActionPause:             "pause",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction looks an action up by its String name.
func ParseAction(name string) (ActionID, bool) {
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return ActionNone, false
}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Mouse delta is multiplied by this before it reaches a camera, in degrees per pixel
	MouseDegreesPerPixel float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone:       0.25,
		MouseDegreesPerPixel: 0.15,
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward: {
				Keys:                   []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			ActionMoveBackward: {
				Keys:                   []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			ActionMoveLeft: {
				Keys:                   []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			ActionMoveRight: {
				Keys:                   []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			ActionManeuver: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			ActionSprint: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft},
				// Left stick press
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftStick},
			},
			ActionCrouch: {
				Keys: []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyC},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
			},
			ActionBlink: {
				Keys: []ebiten.Key{ebiten.KeyE},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
			},
			ActionAim: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
				// Left trigger
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomLeft},
			},
			ActionThrustDown: {
				Keys: []ebiten.Key{ebiten.KeyQ},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
			},
			ActionCameraNext: {
				Keys:                   []ebiten.Key{ebiten.KeyTab},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
			ActionCameraPrevious: {
				Keys:                   []ebiten.Key{ebiten.KeyBackquote},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
			},
			ActionCameraFirstPerson: {Keys: []ebiten.Key{ebiten.Key1}},
			ActionCameraThirdPerson: {Keys: []ebiten.Key{ebiten.Key2}},
			ActionCameraTopdown:     {Keys: []ebiten.Key{ebiten.Key3}},
			ActionCameraFree:        {Keys: []ebiten.Key{ebiten.Key4}},
			ActionResetCamera: {
				Keys: []ebiten.Key{ebiten.KeyV},
				// Right stick press
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightStick},
			},
			ActionRespawn: {
				Keys:                   []ebiten.Key{ebiten.KeyR},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
			},
			ActionBulletTime: {Keys: []ebiten.Key{ebiten.KeyB}},
			ActionFreeCameraBrake: {
				Keys: []ebiten.Key{ebiten.KeyAltLeft},
			},
			ActionRotateLeft:       {Keys: []ebiten.Key{ebiten.KeyZ}},
			ActionRotateRight:      {Keys: []ebiten.Key{ebiten.KeyX}},
			ActionToggleOverlay:    {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionAddMaxStamina:    {Keys: []ebiten.Key{ebiten.KeyEqual}},
			ActionRemoveMaxStamina: {Keys: []ebiten.Key{ebiten.KeyMinus}},
			ActionToggleCrouchMode: {Keys: []ebiten.Key{ebiten.KeyT}},
			ActionPause:            {Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}},
		},
	}
}
