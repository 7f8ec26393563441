// Package locomotion turns player input into character velocity and
// rotation, one physics step at a time. The controller is driven by a motor
// through the motor.CharacterController callbacks and owns every ability
// state machine: maneuvers (jumps and dashes), blink, slide, crouch and
// thrust-down.
package locomotion

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/shared/gamemath"
	"github.com/automoto/momentum/shared/simtime"
)

// Controller is not safe for concurrent use. All of its state changes inside
// the motor callbacks or between steps on the simulation goroutine.
type Controller struct {
	settings *config.Locomotion
	initial  *config.Locomotion

	motor   Motor
	stamina Stamina
	slows   Slows
	forces  Forces
	clock   *simtime.Clock

	hasInputs bool
	inputs    Inputs
	direction Direction
	blend     directionBlend

	accumulatedGravity mgl64.Vec3
	externalForce      mgl64.Vec3
	lastPosition       mgl64.Vec3
	frameVelocity      mgl64.Vec3
	height             float64
	movementSpeed      float64
	sprinting          bool
	crouching          bool
	teleported         bool

	toggleCrouchDesktop bool
	toggleCrouchGamepad bool

	// gateClosed makes the maneuver input edge-triggered until the button
	// is released.
	gateClosed          bool
	lastManeuverRequest bool

	maneuver maneuverState
	blink    blinkState
	slide    slideState
	thrust   thrustDownState

	postGroundGrace simtime.Timer
	postSlideGrace  simtime.Timer
	postBlinkGrace  simtime.Timer

	fovCharge float64
	fovBlink  float64
	timeScale float64
	events    Effects
}

// New wires a controller to its collaborators. Every collaborator is
// required.
func New(settings config.Locomotion, m Motor, st Stamina, sl Slows, f Forces, clock *simtime.Clock) *Controller {
	switch {
	case m == nil:
		panic("locomotion: nil motor")
	case st == nil:
		panic("locomotion: nil stamina")
	case sl == nil:
		panic("locomotion: nil slows")
	case f == nil:
		panic("locomotion: nil forces")
	case clock == nil:
		panic("locomotion: nil clock")
	}
	initial := settings
	return &Controller{
		settings:     &initial,
		initial:      &initial,
		motor:        m,
		stamina:      st,
		slows:        sl,
		forces:       f,
		clock:        clock,
		lastPosition: m.Position(),
		height:       settings.Crouch.StandingHeight,
		timeScale:    1,
	}
}

// Settings returns the settings in use.
func (c *Controller) Settings() config.Locomotion {
	return *c.settings
}

// SetSettings replaces every subsystem, including the value ResetSettings
// returns to.
func (c *Controller) SetSettings(s config.Locomotion) {
	c.settings = &s
	c.initial = &s
}

// ResetSettings drops every override.
func (c *Controller) ResetSettings() {
	c.settings = c.initial
}

func (c *Controller) override(apply func(*config.Locomotion)) {
	s := *c.settings
	apply(&s)
	c.settings = &s
}

func (c *Controller) OverrideMovement(m config.MovementConfig) {
	c.override(func(s *config.Locomotion) { s.Movement = m })
}

func (c *Controller) OverrideGravity(g config.GravityConfig) {
	c.override(func(s *config.Locomotion) { s.Gravity = g })
}

func (c *Controller) OverrideManeuver(m config.ManeuverConfig) {
	c.override(func(s *config.Locomotion) { s.Maneuver = m })
}

func (c *Controller) OverrideCrouch(cr config.CrouchConfig) {
	c.override(func(s *config.Locomotion) { s.Crouch = cr })
}

func (c *Controller) OverrideStamina(st config.StaminaConfig) {
	c.override(func(s *config.Locomotion) { s.Stamina = st })
}

func (c *Controller) OverrideBlink(b config.BlinkConfig) {
	c.override(func(s *config.Locomotion) { s.Blink = b })
}

func (c *Controller) OverrideThrustDown(t config.ThrustDownConfig) {
	c.override(func(s *config.Locomotion) { s.ThrustDown = t })
}

// SetCrouchToggle switches crouch between hold and toggle, per device.
func (c *Controller) SetCrouchToggle(desktop, gamepad bool) {
	c.toggleCrouchDesktop = desktop
	c.toggleCrouchGamepad = gamepad
}

// SetInputs stores the latest snapshot. Presses and releases that no
// physics step has seen yet carry over into the new snapshot.
func (c *Controller) SetInputs(in Inputs) {
	if c.hasInputs {
		carryEdges(&in.Aim, c.inputs.Aim)
		carryEdges(&in.Maneuver, c.inputs.Maneuver)
		carryEdges(&in.Sprint, c.inputs.Sprint)
		carryEdges(&in.Crouch, c.inputs.Crouch)
		carryEdges(&in.Blink, c.inputs.Blink)
		carryEdges(&in.ThrustDown, c.inputs.ThrustDown)
	}
	if in.ForwardRotation.Len() == 0 {
		in.ForwardRotation = mgl64.QuatIdent()
	}
	if in.Camera.Rotation.Len() == 0 {
		in.Camera.Rotation = in.ForwardRotation
	}
	c.inputs = in
	c.hasInputs = true
}

func carryEdges(dst *Button, prev Button) {
	dst.Pressed = dst.Pressed || prev.Pressed
	dst.Released = dst.Released || prev.Released
}

// Teleport moves the character, cancelling slide, blink and thrust-down.
// The next step starts from rest.
func (c *Controller) Teleport(position mgl64.Vec3, rotation mgl64.Quat) {
	c.slide = slideState{}
	c.blink = blinkState{cooldown: c.blink.cooldown}
	c.thrust = thrustDownState{}
	c.accumulatedGravity = mgl64.Vec3{}
	c.externalForce = mgl64.Vec3{}
	c.lastPosition = position
	c.frameVelocity = mgl64.Vec3{}
	c.teleported = true
	c.motor.SetPositionAndRotation(position, rotation, true)
}

// BeforeCharacterUpdate buckets the input, refreshes the ground grace and
// handles crouch, slide and blink input.
func (c *Controller) BeforeCharacterUpdate(dt float64) {
	if !c.hasInputs {
		return
	}
	s := c.settings
	if c.motor.Contact().FoundAnyGround {
		c.postGroundGrace = c.clock.Timer(s.Maneuver.JumpPostGroundingGraceTime)
	}
	if c.gateClosed && !c.inputs.Maneuver.Held {
		c.gateClosed = false
	}
	c.direction = BucketDirection(c.inputs.Movement)
	c.blend = blendDirection(c.inputs.Movement, s.Input.TransitionAngle)

	c.processCrouchInput(dt)
	c.processBlinkInput()
}

// UpdateVelocity produces this step's velocity. Blink owns the velocity
// while charging or blinking; otherwise slide or regular movement sets the
// horizontal part and gravity, maneuvers, thrust-down and external forces
// layer on top.
func (c *Controller) UpdateVelocity(velocity mgl64.Vec3, dt float64) mgl64.Vec3 {
	if !c.hasInputs {
		return velocity
	}
	if c.teleported {
		c.teleported = false
		return mgl64.Vec3{}
	}
	s := c.settings
	contact := c.motor.Contact()

	if c.blink.phase != BlinkNone {
		velocity = c.processBlink(velocity, dt, contact)
		return gamemath.ClampMagnitude(velocity, s.Movement.MaxVelocityMagnitude)
	}

	if c.slide.phase == Sliding {
		velocity = c.processSlide(velocity, dt)
	} else {
		velocity = c.processMovement(velocity, dt, contact)
	}
	velocity = c.processGravity(velocity, dt, contact)
	velocity = c.processManeuver(velocity, dt, contact)
	velocity = c.processThrustDown(velocity, dt, contact)

	velocity = velocity.Add(c.externalForce)
	c.externalForce = mgl64.Vec3{}

	return gamemath.ClampMagnitude(velocity, s.Movement.MaxVelocityMagnitude)
}

func (c *Controller) PostGroundingUpdate(float64) {}

// OnGroundHit lands a thrust-down and ends the maneuver, unless its minimum
// duration still runs. Landing restores every maneuver.
func (c *Controller) OnGroundHit(_, point mgl64.Vec3) {
	if !c.hasInputs {
		return
	}
	if c.thrust.phase == ThrustingDown {
		c.landThrustDown(point)
	}
	if c.maneuver.minDuration.IsRunning() {
		return
	}
	c.stopManeuver()
	c.maneuver.performed = 0
}

// AfterCharacterUpdate records how far this step moved, latches the
// position and consumes the input edges. The next step's slide reads the
// displacement to tell whether it runs downhill.
func (c *Controller) AfterCharacterUpdate(float64) {
	if !c.hasInputs {
		return
	}
	position := c.motor.Position()
	c.frameVelocity = position.Sub(c.lastPosition)
	c.lastPosition = position
	c.inputs.clearEdges()
}

// State returns a snapshot of the controller for overlays and tests.
func (c *Controller) State() State {
	return State{
		Direction:          c.direction,
		MovementSpeed:      c.movementSpeed,
		Sprinting:          c.sprinting,
		Crouching:          c.crouching,
		Height:             c.height,
		AccumulatedGravity: c.accumulatedGravity,

		Maneuver:          c.maneuver.phase,
		ManeuverType:      c.maneuver.settings.Type,
		ManeuversDone:     c.maneuver.performed,
		ManeuverWeak:      c.maneuver.weak,
		ManeuverForce:     c.maneuver.force,
		ManeuverCooldown:  c.maneuver.cooldown.Remaining(),
		ManeuverDirection: c.maneuver.direction,

		Blink:        c.blink.phase,
		BlinkCharges: c.blink.charges,
		BlinkMeter:   c.blink.meter,
		BlinkWeak:    c.blink.weak,

		Slide:          c.slide.phase,
		SlideMagnitude: c.slide.magnitude,
		SlideRemaining: c.slide.remaining,
		SlidingDown:    c.slide.slidingDown,
		SlideWeak:      c.slide.weak,

		ThrustDown: c.thrust.phase,
	}
}
