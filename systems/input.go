package systems

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/momentum/components"
	cfg "github.com/automoto/momentum/config"
	"github.com/automoto/momentum/shared/gamemath"
)

// UpdateInput swaps the input buffers and lets the source fill the new
// frame. Must run BEFORE every system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Movement = mgl64.Vec2{}
	input.Look = mgl64.Vec2{}
	input.Scroll = 0
	input.Rotate = 0

	if input.Source == nil {
		return
	}
	input.Err = input.Source.Poll(input)
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// DeviceInput polls keyboard, mouse and gamepads through ebiten.
type DeviceInput struct {
	LookRate float64 // degrees per second at full right stick

	cursor     mgl64.Vec2
	hasCursor  bool
	gamepadIDs []ebiten.GamepadID
	// Cache controller types to avoid string allocation every frame
	controllerTypes map[ebiten.GamepadID]components.InputMethod
}

func NewDeviceInput(lookRate float64) *DeviceInput {
	return &DeviceInput{
		LookRate:        lookRate,
		controllerTypes: make(map[ebiten.GamepadID]components.InputMethod),
	}
}

func (d *DeviceInput) Poll(input *components.InputData) error {
	d.gamepadIDs = ebiten.AppendGamepadIDs(d.gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range d.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	input.Movement = digitalMovement(input)

	x, y := ebiten.CursorPosition()
	cursor := mgl64.Vec2{float64(x), float64(y)}
	if d.hasCursor {
		delta := cursor.Sub(d.cursor)
		// Screen y grows downwards
		input.Look = mgl64.Vec2{delta.X(), -delta.Y()}.Mul(cfg.Input.MouseDegreesPerPixel)
	}
	d.cursor = cursor
	d.hasCursor = true

	_, wheel := ebiten.Wheel()
	input.Scroll = wheel

	if stick, look, gpID, ok := d.analogSticks(); ok {
		if stick.Len() > 0 {
			input.Movement = gamemath.ClampMagnitude2(stick, 1)
		}
		input.Look = input.Look.Add(look.Mul(d.LookRate / float64(ebiten.TPS())))
		gamepadUsed = true
		activeGamepadID = gpID
	}

	if input.Current[cfg.ActionRotateLeft] {
		input.Rotate--
	}
	if input.Current[cfg.ActionRotateRight] {
		input.Rotate++
	}

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = d.controllerType(activeGamepadID)
	} else if keyboardUsed || input.Look.Len() > 0 {
		input.LastInputMethod = components.InputKeyboard
	}
	return nil
}

// digitalMovement turns the four move actions into a unit vector.
func digitalMovement(input *components.InputData) mgl64.Vec2 {
	var v mgl64.Vec2
	if input.Current[cfg.ActionMoveForward] {
		v[1]++
	}
	if input.Current[cfg.ActionMoveBackward] {
		v[1]--
	}
	if input.Current[cfg.ActionMoveRight] {
		v[0]++
	}
	if input.Current[cfg.ActionMoveLeft] {
		v[0]--
	}
	return gamemath.ClampMagnitude2(v, 1)
}

// analogSticks reads both sticks of the first gamepad past the deadzone.
func (d *DeviceInput) analogSticks() (move, look mgl64.Vec2, gpID ebiten.GamepadID, ok bool) {
	deadzone := cfg.Input.AnalogDeadzone
	axis := func(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64 {
		v := ebiten.StandardGamepadAxisValue(id, a)
		if v > -deadzone && v < deadzone {
			return 0
		}
		return v
	}
	for _, id := range d.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		// Stick y grows downwards
		move = mgl64.Vec2{
			axis(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			-axis(id, ebiten.StandardGamepadAxisLeftStickVertical),
		}
		look = mgl64.Vec2{
			axis(id, ebiten.StandardGamepadAxisRightStickHorizontal),
			-axis(id, ebiten.StandardGamepadAxisRightStickVertical),
		}
		if move.Len() > 0 || look.Len() > 0 {
			return move, look, id, true
		}
	}
	return mgl64.Vec2{}, mgl64.Vec2{}, 0, false
}

// controllerType returns cached controller type, detecting on first access
func (d *DeviceInput) controllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := d.controllerTypes[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	d.controllerTypes[gpID] = method
	return method
}
