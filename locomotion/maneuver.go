package locomotion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/motor"
	"github.com/automoto/momentum/shared/gamemath"
)

// maneuverSlot returns the table index the next maneuver would use and
// whether one may start now. Once the ground grace has run out the ground
// maneuver is forfeit, so a first maneuver in the air uses the second slot.
func (c *Controller) maneuverSlot(contact motor.Contact) (int, bool) {
	m := &c.maneuver
	slot := m.performed
	if slot == 0 && !contact.FoundAnyGround && !c.postGroundGrace.IsRunning() {
		slot = 1
	}
	ok := slot < c.settings.Maneuver.ManeuverCount &&
		m.cooldown.ExpiredOrNotRunning() &&
		c.thrust.phase == ThrustDownIdle
	return slot, ok
}

func (c *Controller) processManeuver(velocity mgl64.Vec3, dt float64, contact motor.Contact) mgl64.Vec3 {
	c.lastManeuverRequest = false

	requested := c.inputs.Maneuver.Held
	if c.maneuver.phase == ManeuverActive || c.gateClosed {
		requested = c.inputs.Maneuver.Pressed
	}
	if requested {
		if slot, ok := c.maneuverSlot(contact); ok {
			velocity = c.startManeuver(velocity, slot)
		} else if c.inputs.Maneuver.Pressed && !contact.FoundAnyGround && slot >= c.settings.Maneuver.ManeuverCount {
			c.lastManeuverRequest = true
		}
	}

	m := &c.maneuver
	if m.phase != ManeuverActive {
		return velocity
	}
	factor := m.settings.ForceFactorOverTime.Evaluate(m.elapsed)
	velocity = velocity.Add(m.direction.Mul(m.force * factor * dt))
	m.elapsed += dt
	if m.settings.Duration > 0 && m.elapsed >= m.settings.Duration {
		c.stopManeuver()
	}
	return velocity
}

func (c *Controller) maneuverTable() []config.ManeuverSettings {
	m := c.settings.Maneuver
	switch c.direction {
	case DirectionNone:
		return m.StandstillManeuver
	case DirectionForward:
		return m.ForwardManeuver
	case DirectionLeft, DirectionRight:
		return m.SideManeuver
	case DirectionBackward:
		return m.BackwardsManeuver
	default:
		panic(unreachable("direction", c.direction))
	}
}

// toWorld maps a character space direction to world space.
func (c *Controller) toWorld(local mgl64.Vec3) mgl64.Vec3 {
	right := c.motor.CharacterRight().Mul(local.X())
	up := c.motor.CharacterUp().Mul(local.Y())
	forward := c.motor.CharacterForward().Mul(local.Z())
	return right.Add(up).Add(forward)
}

func (c *Controller) maneuverDirection() mgl64.Vec3 {
	d := c.settings.Maneuver.Directions
	switch c.direction {
	case DirectionNone, DirectionForward:
		local := d.Forward
		switch {
		case c.postSlideGrace.IsRunning():
			local = d.PostSlide
		case c.direction == DirectionNone:
			local = d.Standstill
		case c.inputs.Sprint.Held:
			local = d.Sprint
		}
		return gamemath.SafeNormalize(c.toWorld(local))
	case DirectionLeft:
		return c.motor.CharacterRight().Mul(-1)
	case DirectionRight:
		return c.motor.CharacterRight()
	case DirectionBackward:
		return gamemath.SafeNormalize(c.inputs.ForwardRotation.Rotate(c.inputs.Movement))
	default:
		panic(unreachable("direction", c.direction))
	}
}

func (c *Controller) startManeuver(velocity mgl64.Vec3, slot int) mgl64.Vec3 {
	s := c.settings.Maneuver
	c.stopManeuver()
	c.stopSlide()

	table := c.maneuverTable()
	entry := table[min(slot, len(table)-1)]
	if c.postBlinkGrace.IsRunning() {
		entry = s.PostBlinkManeuverOverride.Apply(entry)
	}

	weak := !c.stamina.HasEnoughStaminaFor(entry.StaminaCost)
	force := entry.Force
	if weak {
		force = entry.WeakForce
	}
	if c.postSlideGrace.IsRunning() && c.slide.magnitude >= s.MinPostSlideMagnitude {
		n := gamemath.InverseLerp(s.MinPostSlideMagnitude, c.settings.Crouch.MaxSlideMagnitude, c.slide.magnitude)
		force += entry.PostSlideForce * s.PostSlideMagnitudeFactor.Evaluate(n)
	}
	force = math.Max(c.slows.SlowSpeedValue(force), s.MinForce)
	c.stamina.ConsumeStamina(entry.StaminaCost)

	c.maneuver = maneuverState{
		phase:            ManeuverActive,
		settings:         entry,
		performed:        min(slot+1, s.ManeuverCount),
		cooldown:         c.clock.Timer(entry.Cooldown),
		weak:             weak,
		direction:        c.maneuverDirection(),
		force:            force,
		startedSprinting: c.sprinting,
	}
	if entry.Type == config.ManeuverDash {
		c.maneuver.minDuration = c.clock.Timer(entry.MinDuration)
	}

	c.accumulatedGravity = mgl64.Vec3{}
	c.motor.ForceUnground(0)
	c.events.ManeuverStarted = true
	return gamemath.WithY(velocity, 0)
}

// stopManeuver ends the active maneuver. A weak one leaves the slow of its
// type behind.
func (c *Controller) stopManeuver() {
	m := &c.maneuver
	if m.phase != ManeuverActive {
		return
	}
	if m.weak {
		s := c.settings.Maneuver
		switch m.settings.Type {
		case config.ManeuverJump:
			c.slows.AddSlow(s.PostWeakJumpSlow)
		case config.ManeuverDash:
			c.slows.AddSlow(s.PostWeakDashSlow)
		default:
			panic(unreachable("maneuver type", m.settings.Type))
		}
	}
	*m = maneuverState{performed: m.performed, cooldown: m.cooldown}
}
