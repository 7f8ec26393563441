package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/automoto/momentum/shared/gamemath"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	s, err := Parse([]byte(`
locomotion:
  movement:
    movementSpeedSprint: 12
  thrustDown:
    activationMode: [input]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Locomotion.Movement.MovementSpeedSprint != 12 {
		t.Fatalf("sprint speed = %v, want 12", s.Locomotion.Movement.MovementSpeedSprint)
	}
	if s.Locomotion.Movement.MovementSpeedForward != 4.6 {
		t.Fatalf("forward speed = %v, want default 4.6", s.Locomotion.Movement.MovementSpeedForward)
	}
	if s.Locomotion.ThrustDown.ActivationMode != ThrustDownInput {
		t.Fatalf("activation = %v, want input only", s.Locomotion.ThrustDown.ActivationMode)
	}
	if s.Simulation.FixedStep != 1.0/60.0 {
		t.Fatalf("fixed step = %v, want default", s.Simulation.FixedStep)
	}
}

func TestParseEmptyDocumentKeepsDefaults(t *testing.T) {
	s, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Locomotion.Stamina.StaminaBars != 6 {
		t.Fatalf("stamina bars = %d, want 6", s.Locomotion.Stamina.StaminaBars)
	}
}

func TestParseManeuverTable(t *testing.T) {
	s, err := Parse([]byte(`
locomotion:
  maneuver:
    sideManeuver:
      - type: dash
        force: 300
        weakForce: 90
        forceFactorOverTime: {ease: outCubic, from: 1, to: 0, span: 0.3}
        gravityFactorOverTime: 0
        duration: 0.3
        cooldown: 0.5
        minDuration: 0.2
        staminaCost: {mode: bar}
    directions:
      standstill: [0, 1, 0]
      forward: [0, 1, 0.5]
      sprint: [0, 1, 1]
      postSlide: [0, 1, 1]
  thrustDown:
    forceSettings:
      type: immediate
      force: 10
      radius: 2
      flags: [groundSensitive, killGravity]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	side := s.Locomotion.Maneuver.SideManeuver
	if len(side) != 1 {
		t.Fatalf("side table has %d entries, want 1", len(side))
	}
	got := side[0]
	if got.Type != ManeuverDash || got.Force != 300 || got.StaminaCost.Mode != CostBar {
		t.Fatalf("unexpected entry %+v", got)
	}
	if got.ForceFactorOverTime.Ease != gamemath.EaseOutCubic || got.ForceFactorOverTime.Span != 0.3 {
		t.Fatalf("force curve = %+v", got.ForceFactorOverTime)
	}
	if got.GravityFactorOverTime.Evaluate(0.1) != 0 {
		t.Fatalf("scalar gravity curve should be constant 0")
	}
	if s.Locomotion.Maneuver.Directions.Forward.Z() != 0.5 {
		t.Fatalf("forward direction = %v", s.Locomotion.Maneuver.Directions.Forward)
	}
	force := s.Locomotion.ThrustDown.ForceSettings
	if force.Type != ForceImmediate || !force.Flags.Has(ForceGroundSensitive) || !force.Flags.Has(ForceKillGravity) || force.Flags.Has(ForceUnground) {
		t.Fatalf("force settings = %+v", force)
	}
	if len(s.Locomotion.Maneuver.ForwardManeuver) != 2 {
		t.Fatal("tables absent from the file should keep their defaults")
	}
}

func TestParseRejectsBadSettings(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown field", "simulation:\n  fixedStepp: 1\n", "fixedStepp"},
		{"unknown ease", "locomotion:\n  crouch:\n    slideFrictionFactor: {ease: wobble}\n", "unknown ease"},
		{"unknown cost mode", "locomotion:\n  stamina:\n    staminaCostSlide: {mode: lots}\n", "unknown stamina cost mode"},
		{"unknown maneuver type", "locomotion:\n  maneuver:\n    sideManeuver:\n      - type: roll\n", "unknown maneuver type"},
		{"no charges", "locomotion:\n  blink:\n    maxCharges: 0\n", "maxCharges"},
		{"empty table", "locomotion:\n  maneuver:\n    forwardManeuver: []\n", "forwardManeuver"},
		{"bad step", "simulation:\n  fixedStep: 0\n", "fixedStep"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v, want a not-exist error", err)
	}
}

func TestManeuverOverrideApply(t *testing.T) {
	base := DefaultLocomotion().Maneuver.ForwardManeuver[0]
	force := 999.0
	dash := ManeuverDash
	got := ManeuverOverride{Force: &force, Type: &dash}.Apply(base)
	if got.Force != 999 || got.Type != ManeuverDash {
		t.Fatalf("override not applied: %+v", got)
	}
	if got.WeakForce != base.WeakForce || got.Cooldown != base.Cooldown {
		t.Fatal("unset override fields must keep the base value")
	}
}

func TestWatcherReloadsChangedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "momentum.yaml")
	if err := os.WriteFile(path, []byte("simulation:\n  tickRate: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("simulation:\n  tickRate: 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case s := <-w.Settings:
		if s.Simulation.TickRate != 120 {
			t.Fatalf("tick rate = %d, want 120", s.Simulation.TickRate)
		}
	case err := <-w.Errors:
		t.Fatalf("reload failed: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}
}
