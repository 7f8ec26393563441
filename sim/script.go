package sim

import (
	"context"

	"github.com/automoto/momentum/components"
	cfg "github.com/automoto/momentum/config"
	"github.com/automoto/momentum/script"
)

// ScriptInput feeds a world from a script device.
type ScriptInput struct {
	ctx    context.Context
	device *script.Device
	world  *World
}

// NewScriptInput wraps device; ctx bounds every script run.
func NewScriptInput(ctx context.Context, device *script.Device) *ScriptInput {
	return &ScriptInput{ctx: ctx, device: device}
}

// Attach makes s the input source of w.
func (s *ScriptInput) Attach(w *World) {
	s.world = w
	w.Input().Source = s
}

// Done reports whether the script asked to stop.
func (s *ScriptInput) Done() bool {
	return s.device.Done()
}

func (s *ScriptInput) Poll(input *components.InputData) error {
	player := s.world.Player()
	frame, err := s.device.Poll(s.ctx, script.Observation{
		Frame:    s.world.Simulation().Frame,
		Time:     s.world.Clock().Time(),
		Position: player.Motor.Position(),
		Velocity: player.Motor.Velocity(),
		Grounded: player.Motor.Contact().IsStableOnGround,
		Stamina:  player.Stamina.Stamina(),
	})
	if err != nil {
		return err
	}
	input.Current = frame.Actions
	input.Movement = frame.Movement
	input.Look = frame.Look
	input.Scroll = frame.Scroll
	if frame.Held(cfg.ActionRotateLeft) {
		input.Rotate--
	}
	if frame.Held(cfg.ActionRotateRight) {
		input.Rotate++
	}
	input.LastInputMethod = components.InputScript
	return nil
}
