package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/momentum/camera"
	"github.com/automoto/momentum/components"
	cfg "github.com/automoto/momentum/config"
	"github.com/automoto/momentum/locomotion"
	"github.com/automoto/momentum/tags"
)

var cameraSelect = map[cfg.ActionID]camera.Kind{
	cfg.ActionCameraFirstPerson: camera.KindFirstPerson,
	cfg.ActionCameraThirdPerson: camera.KindThirdPerson,
	cfg.ActionCameraTopdown:     camera.KindTopdown,
	cfg.ActionCameraFree:        camera.KindFree,
}

// UpdateCamera switches cameras on request, runs the active camera over this
// frame's device state and hands the resulting snapshot to locomotion.
// Must run AFTER UpdateInput and BEFORE UpdatePhysics.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(cameraEntry)
	player := components.Player.Get(playerEntry)
	input := getOrCreateInput(e)
	sim := components.Simulation.Get(components.Simulation.MustFirst(e.World))
	machine := cam.Rig.Machine

	switch {
	case GetAction(input, cfg.ActionCameraNext).JustPressed:
		machine.Next()
	case GetAction(input, cfg.ActionCameraPrevious).JustPressed:
		machine.Previous()
	}
	for action, kind := range cameraSelect {
		if GetAction(input, action).JustPressed {
			machine.Select(kind)
		}
	}
	if GetAction(input, cfg.ActionResetCamera).JustPressed && machine.Active() != nil {
		machine.Active().ResetAngles()
	}

	frame := cameraFrame(input, sim.Clock.DeltaTime(), sim.Clock.UnscaledDeltaTime())
	frame.Height = player.Locomotion.State().Height
	if inputs, ok := machine.LateUpdate(frame); ok {
		player.Locomotion.SetInputs(inputs)
	}

	cam.Rig.Shake.Update(frame.Dt)
	if active := machine.Active(); active != nil {
		view := active.Transform()
		view.Position = view.Position.Add(view.Rotation.Rotate(cam.Rig.Shake.Offset()))
		cam.View = view
	}
	cam.FieldOfView = cam.Rig.FieldOfView.Value()
}

// cameraFrame translates the device state into what a camera reads.
func cameraFrame(input *components.InputData, dt, unscaledDt float64) camera.Frame {
	button := func(id cfg.ActionID) locomotion.Button {
		a := GetAction(input, id)
		return locomotion.Button{Held: a.Pressed, Pressed: a.JustPressed, Released: a.JustReleased}
	}
	var vertical float64
	if input.Current[cfg.ActionManeuver] {
		vertical++
	}
	if input.Current[cfg.ActionCrouch] {
		vertical--
	}
	return camera.Frame{
		Dt:         dt,
		UnscaledDt: unscaledDt,
		Look:       input.Look,
		Movement:   mgl64.Vec3{input.Movement.X(), vertical, input.Movement.Y()},
		Scroll:     input.Scroll,
		Rotate:     input.Rotate,
		Brake:      input.Current[cfg.ActionFreeCameraBrake],
		Gamepad:    input.Gamepad(),
		Actions: camera.Actions{
			Aim:        button(cfg.ActionAim),
			Maneuver:   button(cfg.ActionManeuver),
			Sprint:     button(cfg.ActionSprint),
			Crouch:     button(cfg.ActionCrouch),
			Blink:      button(cfg.ActionBlink),
			ThrustDown: button(cfg.ActionThrustDown),
		},
	}
}
