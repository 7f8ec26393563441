package locomotion

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/shared/gamemath"
)

func (c *Controller) crouchToggled() bool {
	if c.inputs.Gamepad {
		return c.toggleCrouchGamepad
	}
	return c.toggleCrouchDesktop
}

func (c *Controller) canStartSlide() bool {
	if c.slide.phase != SlideIdle || c.blink.phase != BlinkNone || c.thrust.phase != ThrustDownIdle {
		return false
	}
	switch c.direction {
	case DirectionLeft, DirectionRight:
		return true
	case DirectionForward:
		return c.sprinting || !c.settings.Crouch.RequireSprintForForwardSlide
	}
	return c.sprinting
}

// processCrouchInput starts and stops slides and crouching, then eases the
// height toward the pose.
func (c *Controller) processCrouchInput(dt float64) {
	cr := c.settings.Crouch
	in := c.inputs.Crouch

	started := false
	if in.Pressed && c.canStartSlide() {
		c.startSlide()
		started = true
	}

	if c.crouchToggled() {
		if in.Pressed && !started {
			if c.slide.phase == Sliding {
				c.stopSlide()
			} else {
				c.crouching = !c.crouching
			}
		}
	} else {
		if in.Released {
			if c.slide.phase == Sliding {
				c.stopSlide()
			} else {
				c.crouching = false
			}
		}
		if in.Held && c.slide.phase == SlideIdle && !c.crouching {
			c.crouching = true
		}
	}

	target := cr.StandingHeight
	switch {
	case c.slide.phase == Sliding:
		target = cr.SlideHeight
	case c.crouching:
		target = cr.CrouchHeight
	}
	sharpness := cr.HeightUpSharpness
	if target < c.height {
		sharpness = cr.HeightDownSharpness
	}
	c.height = gamemath.Approach(c.height, target, sharpness, dt)
}

func (c *Controller) startSlide() {
	s := c.settings
	cost := s.Stamina.StaminaCostSlide
	weak := !c.stamina.HasEnoughStaminaFor(cost)
	c.stamina.ConsumeStamina(cost)

	duration := s.Crouch.SlideDuration
	if c.sprinting {
		duration = s.Crouch.SlideDurationSprint
	}
	velocity := gamemath.Horizontal(c.motor.Velocity())
	c.slide = slideState{
		phase:     Sliding,
		remaining: duration,
		duration:  duration,
		velocity:  velocity,
		magnitude: velocity.Len(),
		weak:      weak,
	}
	c.events.SlideStarted = true
}

// stopSlide ends the slide, opens the post-slide grace and makes the next
// maneuver wait for a fresh press.
func (c *Controller) stopSlide() {
	sl := &c.slide
	if sl.phase != Sliding {
		return
	}
	if sl.weak {
		c.slows.AddSlow(c.settings.Crouch.PostWeakSlideSlow)
	}
	c.slide = slideState{magnitude: sl.magnitude}
	c.postSlideGrace = c.clock.Timer(c.settings.Crouch.PostSlideGraceTime)
	c.gateClosed = true
}

func (c *Controller) processSlide(velocity mgl64.Vec3, dt float64) mgl64.Vec3 {
	cr := c.settings.Crouch
	sl := &c.slide

	sl.slidingDown = c.motor.CharacterUp().Dot(gamemath.SafeNormalize(c.frameVelocity)) < cr.SlideDownDotThreshold
	if sl.slidingDown {
		sl.remaining = math.Min(sl.remaining+dt, sl.duration)
	} else {
		sl.remaining -= dt
	}
	if sl.remaining <= 0 {
		c.stopSlide()
		return velocity
	}

	magnitude := sl.velocity.Len()
	steering := gamemath.SafeNormalize(gamemath.Horizontal(c.inputs.ForwardRotation.Rotate(c.inputs.Movement)))
	steered := sl.velocity.Add(steering.Mul(dt * cr.SlideAdjustmentStrength))
	if l := steered.Len(); l > 0 {
		sl.velocity = steered.Mul(magnitude / l)
	}

	if sl.slidingDown {
		limit := math.Max(cr.MaxSlideMagnitude, magnitude)
		sl.velocity = gamemath.ClampMagnitude(sl.velocity.Mul(1+dt*cr.SlideDownVelocityIncrease), limit)
	} else {
		progress := 1 - sl.remaining/sl.duration
		friction := cr.SlideFriction * cr.SlideFrictionFactor.Evaluate(progress)
		sl.velocity = sl.velocity.Mul(math.Max(0, 1-friction*dt))
	}
	sl.magnitude = sl.velocity.Len()
	return mgl64.Vec3{sl.velocity.X(), velocity.Y(), sl.velocity.Z()}
}
