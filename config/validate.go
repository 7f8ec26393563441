package config

import (
	"errors"
	"fmt"
)

// Validate reports every setting a simulation cannot start with.
func (s Settings) Validate() error {
	var errs []error
	if s.Simulation.FixedStep <= 0 {
		errs = append(errs, errors.New("simulation.fixedStep must be positive"))
	}
	if s.Simulation.MaxStepsPerFrame < 1 {
		errs = append(errs, errors.New("simulation.maxStepsPerFrame must be at least 1"))
	}
	if s.Simulation.TickRate < 1 {
		errs = append(errs, errors.New("simulation.tickRate must be at least 1"))
	}
	if s.Motor.Radius <= 0 || s.Motor.Height <= 2*s.Motor.Radius {
		errs = append(errs, errors.New("motor: radius must be positive and height above twice the radius"))
	}
	if err := s.Locomotion.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := s.Camera.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Validate checks the locomotion tables and pool sizes.
func (l Locomotion) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(l.Movement.MinimumMovementSpeed >= 0, "movement.minimumMovementSpeed must not be negative")
	check(l.Movement.MaxVelocityMagnitude > 0, "movement.maxVelocityMagnitude must be positive")
	check(l.Gravity.MaxGravityVelocity > 0, "gravity.maxGravityVelocity must be positive")

	m := l.Maneuver
	check(m.ManeuverCount >= 0, "maneuver.maneuverCount must not be negative")
	names := []string{"standstillManeuver", "forwardManeuver", "sideManeuver", "backwardsManeuver"}
	for i, table := range m.Tables() {
		check(m.ManeuverCount == 0 || len(table) > 0, "maneuver.%s must have at least one entry", names[i])
		for j, entry := range table {
			check(entry.Type == ManeuverJump || entry.Type == ManeuverDash,
				"maneuver.%s[%d]: unknown type %d", names[i], j, int(entry.Type))
			check(entry.Cooldown >= 0, "maneuver.%s[%d]: cooldown must not be negative", names[i], j)
			check(entry.MinDuration >= 0, "maneuver.%s[%d]: minDuration must not be negative", names[i], j)
		}
	}

	c := l.Crouch
	check(c.SlideDownDotThreshold >= -1 && c.SlideDownDotThreshold <= 0,
		"crouch.slideDownDotThreshold must be in [-1, 0]")
	check(c.SlideDuration > 0 && c.SlideDurationSprint > 0, "crouch slide durations must be positive")
	check(c.MaxSlideMagnitude > 0, "crouch.maxSlideMagnitude must be positive")

	st := l.Stamina
	check(st.StaminaPerBar > 0, "stamina.staminaPerBar must be positive")
	check(st.StaminaBars > 0, "stamina.staminaBars must be positive")
	check(st.StaminaRegenerationCooldown >= 0, "stamina.staminaRegenerationCooldown must not be negative")

	b := l.Blink
	check(b.MaxCharges > 0, "blink.maxCharges must be positive")
	check(b.ChargePerSeconds > 0, "blink.chargePerSeconds must be positive")
	check(b.ChargeTimeScale > 0 && b.ChargeTimeScale <= 1, "blink.chargeTimeScale must be in (0, 1]")

	check(l.ThrustDown.MaxDownwardForceMagnitude >= 0, "thrustDown.maxDownwardForceMagnitude must not be negative")
	check(l.Input.TransitionAngle >= 0 && l.Input.TransitionAngle < 45, "input.transitionAngle must be in [0, 45)")

	return errors.Join(errs...)
}

// Validate checks the camera angle ranges.
func (c CameraSettings) Validate() error {
	var errs []error
	if c.FieldOfView <= 0 || c.FieldOfView >= 180 {
		errs = append(errs, errors.New("camera.fieldOfView must be in (0, 180)"))
	}
	if c.FirstPerson.MinVerticalAngle > c.FirstPerson.MaxVerticalAngle {
		errs = append(errs, errors.New("camera.firstPerson vertical range is inverted"))
	}
	if c.ThirdPerson.MinVerticalAngle > c.ThirdPerson.MaxVerticalAngle {
		errs = append(errs, errors.New("camera.thirdPerson vertical range is inverted"))
	}
	if c.Free.MinSpeed > c.Free.MaxSpeed {
		errs = append(errs, errors.New("camera.free speed range is inverted"))
	}
	return errors.Join(errs...)
}
