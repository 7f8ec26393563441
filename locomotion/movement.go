package locomotion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/motor"
	"github.com/automoto/momentum/shared/gamemath"
)

func (c *Controller) directionSpeed(d Direction) float64 {
	m := c.settings.Movement
	switch d {
	case DirectionNone:
		return 0
	case DirectionForward:
		if c.sprinting {
			return m.MovementSpeedSprint
		}
		return m.MovementSpeedForward
	case DirectionLeft, DirectionRight:
		return m.MovementSpeedSide
	case DirectionBackward:
		return m.MovementSpeedBackward
	default:
		panic(unreachable("direction", d))
	}
}

func (c *Controller) updateSprint(contact motor.Contact) {
	s := c.settings
	was := c.sprinting
	stamina := c.stamina.Stamina()
	hasStamina := (!was && stamina >= c.stamina.StaminaPerBar()) || (was && stamina > 0)

	c.sprinting = c.inputs.Sprint.Held &&
		s.Movement.EnableSprint &&
		c.direction == DirectionForward &&
		contact.IsStableOnGround &&
		!c.crouching &&
		hasStamina

	if was && c.maneuver.phase == ManeuverActive && c.maneuver.startedSprinting {
		c.sprinting = true
	}
	if c.sprinting {
		c.stamina.ConsumeStamina(s.Stamina.StaminaCostSprint)
	}
}

func (c *Controller) processMovement(velocity mgl64.Vec3, dt float64, contact motor.Contact) mgl64.Vec3 {
	m := c.settings.Movement
	c.updateSprint(contact)

	target := c.blend.speed(c.directionSpeed)
	if c.crouching {
		target *= c.settings.Crouch.CrouchMovementSpeedFactor
	}
	target = math.Max(c.slows.SlowSpeedValue(target), m.MinimumMovementSpeed)

	sharpness := m.MovementSpeedDecaySharpness
	if target > c.movementSpeed {
		sharpness = m.MovementSpeedIncreaseSharpness
	}
	c.movementSpeed = gamemath.Approach(c.movementSpeed, target, sharpness, dt)

	oriented := gamemath.SafeNormalize(gamemath.Horizontal(c.inputs.ForwardRotation.Rotate(c.inputs.Movement))).
		Mul(c.movementSpeed)
	horizontal := gamemath.ClampMagnitude(gamemath.Horizontal(velocity), m.MaxHorizontalVelocity)

	normal := gamemath.Up
	steer := m.AirborneDirectionSharpness
	if contact.IsStableOnGround {
		normal = effectiveGroundNormal(velocity, contact, c.motor.TransientPosition())
		velocity = gamemath.WithY(velocity, 0)
		steer = m.MovementDirectionSharpness
	}

	targetVelocity := gamemath.DirectionTangentToSurface(oriented, normal, c.motor.CharacterUp()).Mul(oriented.Len())
	horizontal = gamemath.LerpVec3(horizontal, targetVelocity, 1-math.Exp(-steer*dt))
	return mgl64.Vec3{horizontal.X(), velocity.Y(), horizontal.Z()}
}

// effectiveGroundNormal picks the ledge normal the character moves toward
// when the motor refused to snap.
func effectiveGroundNormal(velocity mgl64.Vec3, contact motor.Contact, position mgl64.Vec3) mgl64.Vec3 {
	if velocity.Len() == 0 || !contact.SnappingPrevented {
		return contact.GroundNormal
	}
	if velocity.Dot(position.Sub(contact.GroundPoint)) >= 0 {
		return contact.OuterGroundNormal
	}
	return contact.InnerGroundNormal
}

func (c *Controller) processGravity(velocity mgl64.Vec3, dt float64, contact motor.Contact) mgl64.Vec3 {
	g := c.settings.Gravity
	if contact.FoundAnyGround {
		c.accumulatedGravity = mgl64.Vec3{}
		if contact.IsStableOnGround {
			velocity = gamemath.WithY(velocity, -g.AtRestEpsilon)
		}
		return velocity
	}
	if c.thrust.phase == ThrustingDown {
		c.accumulatedGravity = mgl64.Vec3{}
		return velocity
	}

	factor := 1.0
	if c.maneuver.phase == ManeuverActive {
		factor = c.maneuver.settings.GravityFactorOverTime.Evaluate(c.maneuver.elapsed)
	}
	gravity := c.motor.CharacterUp().Mul(-g.GravityForce * factor * dt)
	c.accumulatedGravity = c.accumulatedGravity.Add(gravity).Mul(1 - g.AirResistance*dt)
	c.accumulatedGravity = gamemath.ClampMagnitude(c.accumulatedGravity, g.MaxGravityVelocity)
	return velocity.Add(c.accumulatedGravity)
}

// AddForce queues an external force for the next step.
func (c *Controller) AddForce(force mgl64.Vec3, flags config.ForceFlags) {
	g := c.settings.Gravity
	contact := c.motor.Contact()
	if flags.Has(config.ForceIgnoreWhenGrounded) && contact.FoundAnyGround {
		return
	}
	if flags.Has(config.ForceGroundSensitive) && contact.FoundAnyGround {
		factor := g.UnstableForceFactor
		if contact.IsStableOnGround {
			factor = g.GroundedForceFactor
		}
		force = force.Mul(factor)
	}
	if flags.Has(config.ForceUnground) {
		c.motor.ForceUnground(0)
	}
	if flags.Has(config.ForceKillGravity) {
		c.accumulatedGravity = mgl64.Vec3{}
	}
	c.externalForce = gamemath.ClampMagnitude(c.externalForce.Add(force), g.MaxExternalForce)
}

// CenterOfGravity is the middle of the current capsule height.
func (c *Controller) CenterOfGravity() mgl64.Vec3 {
	return c.motor.Position().Add(c.motor.CharacterUp().Mul(c.height / 2))
}

// UpdateRotation turns the character toward the camera or its movement.
func (c *Controller) UpdateRotation(rotation mgl64.Quat, dt float64) mgl64.Quat {
	if !c.hasInputs {
		return rotation
	}
	sharpness := c.settings.Movement.RotationSharpness
	switch c.inputs.CameraMode {
	case FirstPerson:
		return c.inputs.ForwardRotation
	case ThirdPerson:
		if c.inputs.Aim.Held {
			return gamemath.SlerpSharp(rotation, c.inputs.ForwardRotation, sharpness, dt)
		}
		if gamemath.Horizontal(c.inputs.Movement).Len() > 0 {
			target := c.inputs.ForwardRotation.Mul(gamemath.LookRotation(gamemath.Horizontal(c.inputs.Movement)))
			return gamemath.SlerpSharp(rotation, target, sharpness, dt)
		}
		return rotation
	default:
		panic(unreachable("camera mode", c.inputs.CameraMode))
	}
}
