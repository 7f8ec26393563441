package locomotion

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/motor"
	"github.com/automoto/momentum/shared/gamemath"
)

// processBlinkInput starts charging on a press and executes the blink once
// the button is let go or every charge is collected. The meter runs on
// unscaled time so the charge slowdown does not stretch it.
func (c *Controller) processBlinkInput() {
	s := c.settings.Blink
	b := &c.blink
	now := c.clock.UnscaledTime()

	switch b.phase {
	case BlinkNone:
		if !c.inputs.Blink.Pressed || b.cooldown.IsRunning() || c.slide.phase == Sliding {
			return
		}
		b.phase = BlinkCharging
		b.meter = 0
		b.charges = 1
		b.sampledAt = now
	case BlinkCharging:
		b.meter += s.ChargePerSeconds * (now - b.sampledAt)
		b.sampledAt = now
		for b.meter >= 1 && b.charges < s.MaxCharges {
			b.meter--
			b.charges++
		}
	case BlinkBlinking:
		return
	}

	if !c.inputs.Blink.Held || b.charges >= s.MaxCharges {
		c.startBlink()
	}
}

func (c *Controller) blinkDirection() mgl64.Vec3 {
	cam := c.inputs.Camera
	switch c.direction {
	case DirectionNone, DirectionForward:
		return gamemath.SafeNormalize(cam.Forward())
	case DirectionBackward:
		return gamemath.SafeNormalize(cam.Forward().Mul(-1))
	case DirectionRight:
		return gamemath.SafeNormalize(cam.Right())
	case DirectionLeft:
		return gamemath.SafeNormalize(cam.Right().Mul(-1))
	default:
		panic(unreachable("direction", c.direction))
	}
}

func (c *Controller) startBlink() {
	s := c.settings.Blink
	b := &c.blink

	b.weak = !c.stamina.HasEnoughStaminaFor(s.StaminaCost)
	c.stamina.ConsumeStamina(s.StaminaCost)
	b.force = s.Force
	if b.weak {
		b.force = s.WeakForce
	}
	b.direction = c.blinkDirection()
	b.execution = c.clock.Timer(float64(b.charges) * s.DurationPerCharge)
	b.phase = BlinkBlinking

	c.accumulatedGravity = mgl64.Vec3{}
	c.stopManeuver()
	c.stopThrustDown()
	c.events.BlinkStarted = true
}

func (c *Controller) processBlink(velocity mgl64.Vec3, dt float64, contact motor.Contact) mgl64.Vec3 {
	velocity = c.processGravity(velocity, dt, contact)
	b := &c.blink
	if b.phase != BlinkBlinking {
		return velocity
	}
	if b.execution.Expired() {
		return c.finishBlink(velocity)
	}
	c.accumulatedGravity = mgl64.Vec3{}
	return b.direction.Mul(b.force)
}

func (c *Controller) finishBlink(velocity mgl64.Vec3) mgl64.Vec3 {
	s := c.settings
	b := &c.blink
	if b.weak {
		c.slows.AddSlow(s.Blink.PostWeakBlinkSlow)
	}
	cooldown := c.clock.Timer(float64(b.charges) * s.Blink.CooldownInSecondsPerCharge)
	*b = blinkState{cooldown: cooldown}
	c.postBlinkGrace = c.clock.Timer(s.Maneuver.PostBlinkManeuverOverride.GraceTime)
	return gamemath.ClampMagnitude(velocity, s.Blink.PostBlinkMagnitudeLimitation)
}
