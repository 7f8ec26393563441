package locomotion

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/motor"
	"github.com/automoto/momentum/shared/gamemath"
	"github.com/automoto/momentum/shared/simtime"
	"github.com/automoto/momentum/slow"
	"github.com/automoto/momentum/stamina"
)

const dt = 0.02

var (
	stable   = motor.Contact{FoundAnyGround: true, IsStableOnGround: true, GroundNormal: gamemath.Up}
	airborne = motor.Contact{}
)

type fakeMotor struct {
	contact        motor.Contact
	position       mgl64.Vec3
	velocity       mgl64.Vec3
	rotation       mgl64.Quat
	groundDistance float64
	drop           float64 // extra descent per step, for slopes
	ungrounds      int
	teleports      int
}

func (m *fakeMotor) Contact() motor.Contact        { return m.contact }
func (m *fakeMotor) CharacterUp() mgl64.Vec3       { return m.rotation.Rotate(gamemath.Up) }
func (m *fakeMotor) CharacterForward() mgl64.Vec3  { return m.rotation.Rotate(gamemath.Forward) }
func (m *fakeMotor) CharacterRight() mgl64.Vec3    { return m.rotation.Rotate(gamemath.Right) }
func (m *fakeMotor) TransientPosition() mgl64.Vec3 { return m.position }
func (m *fakeMotor) Position() mgl64.Vec3          { return m.position }
func (m *fakeMotor) Velocity() mgl64.Vec3          { return m.velocity }
func (m *fakeMotor) GroundDistance() float64       { return m.groundDistance }
func (m *fakeMotor) ForceUnground(float64)         { m.ungrounds++; m.contact = motor.Contact{} }
func (m *fakeMotor) SetPositionAndRotation(p mgl64.Vec3, r mgl64.Quat, _ bool) {
	m.position = p
	m.rotation = r
	m.teleports++
}

type forceCall struct {
	position mgl64.Vec3
	settings config.ForceSettings
}

type fakeForces struct {
	calls []forceCall
}

func (f *fakeForces) AddForceAtPosition(p mgl64.Vec3, s config.ForceSettings) {
	f.calls = append(f.calls, forceCall{p, s})
}

type harness struct {
	c       *Controller
	m       *fakeMotor
	clock   *simtime.Clock
	stamina *stamina.Controller
	slows   *slow.Controller
	forces  *fakeForces
}

func newHarness(t *testing.T, contact motor.Contact) *harness {
	t.Helper()
	settings := config.DefaultLocomotion()
	clock := simtime.NewClock()
	m := &fakeMotor{contact: contact, rotation: mgl64.QuatIdent(), groundDistance: 5}
	st := stamina.New(settings.Stamina, clock)
	sl := slow.New(clock)
	f := &fakeForces{}
	return &harness{
		c:       New(settings, m, st, sl, f, clock),
		m:       m,
		clock:   clock,
		stamina: st,
		slows:   sl,
		forces:  f,
	}
}

// step runs one physics step the way the motor drives its controller.
func (h *harness) step(in Inputs) mgl64.Vec3 {
	h.c.SetInputs(in)
	h.clock.BeginFrame(dt)
	h.clock.Step(dt)
	h.c.BeforeCharacterUpdate(dt)
	v := h.c.UpdateVelocity(h.m.velocity, dt)
	h.m.velocity = v
	h.m.rotation = h.c.UpdateRotation(h.m.rotation, dt)
	h.m.position = h.m.position.Add(v.Mul(dt)).Sub(mgl64.Vec3{0, h.m.drop, 0})
	h.c.PostGroundingUpdate(dt)
	if h.m.contact.IsStableOnGround {
		h.c.OnGroundHit(gamemath.Up, h.m.position)
	}
	h.c.AfterCharacterUpdate(dt)
	return v
}

func (h *harness) steps(n int, in Inputs) mgl64.Vec3 {
	var v mgl64.Vec3
	for i := 0; i < n; i++ {
		v = h.step(in)
	}
	return v
}

func press() Button { return Button{Held: true, Pressed: true} }
func hold() Button  { return Button{Held: true} }

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewPanicsOnMissingCollaborator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	New(config.DefaultLocomotion(), &fakeMotor{rotation: mgl64.QuatIdent()}, nil, nil, nil, simtime.NewClock())
}

func TestNoInputsLeavesVelocityAlone(t *testing.T) {
	h := newHarness(t, airborne)
	v := mgl64.Vec3{1, 2, 3}
	if got := h.c.UpdateVelocity(v, dt); got != v {
		t.Fatalf("got %v, want %v", got, v)
	}
}

func TestStandstillJump(t *testing.T) {
	h := newHarness(t, stable)
	v := h.step(Inputs{Maneuver: press()})

	s := h.c.State()
	if s.Maneuver != ManeuverActive || s.ManeuversDone != 1 || s.ManeuverType != config.ManeuverJump {
		t.Fatalf("state after jump = %+v", s)
	}
	if !approx(v.Y(), 150*dt, 1e-4) || !approx(v.X(), 0, 1e-9) || !approx(v.Z(), 0, 1e-9) {
		t.Fatalf("velocity = %v, want straight up at %v", v, 150*dt)
	}
	if h.m.ungrounds != 1 {
		t.Fatalf("ForceUnground called %d times, want 1", h.m.ungrounds)
	}
	if got := h.stamina.Stamina(); !approx(got, 125, 1e-9) {
		t.Fatalf("stamina = %v, want one bar spent", got)
	}
	if !h.c.Effects().ManeuverStarted {
		t.Fatal("maneuver start not reported")
	}
	if h.c.Effects().ManeuverStarted {
		t.Fatal("events must drain after Effects")
	}
}

func TestHeldManeuverIsLevelTriggeredOnlyFromIdle(t *testing.T) {
	h := newHarness(t, stable)
	h.step(Inputs{Maneuver: press()})
	h.steps(20, Inputs{Maneuver: hold()})
	if got := h.c.State().ManeuversDone; got != 1 {
		t.Fatalf("holding the button performed %d maneuvers, want 1", got)
	}
}

func TestDoubleJumpThenLastManeuverThrustDown(t *testing.T) {
	h := newHarness(t, stable)
	h.step(Inputs{Maneuver: press()})
	h.steps(15, Inputs{})

	h.step(Inputs{Maneuver: press()})
	if got := h.c.State().ManeuversDone; got != 2 {
		t.Fatalf("maneuvers done = %d, want 2", got)
	}
	h.steps(15, Inputs{})

	h.step(Inputs{Maneuver: press()})
	s := h.c.State()
	if s.ThrustDown != ThrustingDown {
		t.Fatal("a press with no maneuver left should thrust down")
	}
	if s.Maneuver != ManeuverIdle {
		t.Fatal("thrust-down must end the active maneuver")
	}

	h.c.Effects()
	h.m.contact = stable
	h.step(Inputs{})

	if len(h.forces.calls) != 1 {
		t.Fatalf("landing produced %d forces, want 1", len(h.forces.calls))
	}
	if h.forces.calls[0].settings.Type != config.ForceShockwave {
		t.Fatalf("landing force type = %v", h.forces.calls[0].settings.Type)
	}
	e := h.c.Effects()
	if !e.ThrustDownLanded || len(e.CameraShakes) != 1 || e.BulletTime != nil {
		t.Fatalf("landing effects = %+v", e)
	}
	s = h.c.State()
	if s.ThrustDown != ThrustDownIdle || s.ManeuversDone != 0 {
		t.Fatalf("state after landing = %+v", s)
	}
}

func TestThrustDownFromInput(t *testing.T) {
	h := newHarness(t, airborne)
	v := h.step(Inputs{ThrustDown: press()})

	if h.c.State().ThrustDown != ThrustingDown {
		t.Fatal("thrust-down did not start")
	}
	if !approx(v.Y(), -120*0.2*dt, 1e-4) {
		t.Fatalf("vertical velocity = %v, want %v", v.Y(), -120*0.2*dt)
	}
	if h.c.State().AccumulatedGravity.Len() != 0 {
		t.Fatal("gravity must be cleared while thrusting down")
	}

	for i := 0; i < 100; i++ {
		v = h.step(Inputs{})
	}
	if v.Len() > 32+1e-6 {
		t.Fatalf("downward speed %v exceeds the limit", v.Len())
	}
}

func TestThrustDownNeedsHeight(t *testing.T) {
	h := newHarness(t, airborne)
	h.m.groundDistance = 1
	h.step(Inputs{ThrustDown: press()})
	if h.c.State().ThrustDown != ThrustDownIdle {
		t.Fatal("thrust-down started below the minimum height")
	}
}

func TestDashMinDurationIgnoresGroundHit(t *testing.T) {
	h := newHarness(t, stable)
	h.step(Inputs{Movement: mgl64.Vec3{1, 0, 0}, Maneuver: press()})
	s := h.c.State()
	if s.ManeuverType != config.ManeuverDash || s.Direction != DirectionRight {
		t.Fatalf("state = %+v, want a dash to the right", s)
	}
	if s.ManeuverDirection.X() <= 0.99 {
		t.Fatalf("dash direction = %v, want +X", s.ManeuverDirection)
	}

	h.c.OnGroundHit(gamemath.Up, mgl64.Vec3{})
	if got := h.c.State().ManeuversDone; got != 1 {
		t.Fatalf("ground hit inside the minimum duration reset the count to %d", got)
	}

	h.clock.Step(0.2)
	h.c.OnGroundHit(gamemath.Up, mgl64.Vec3{})
	s = h.c.State()
	if s.ManeuversDone != 0 || s.Maneuver != ManeuverIdle {
		t.Fatalf("state after landing = %+v", s)
	}
}

func TestBlinkGainsOneChargePerMeterWrap(t *testing.T) {
	h := newHarness(t, stable)
	const frame = 0.1

	step := func(in Inputs) mgl64.Vec3 {
		h.c.SetInputs(in)
		h.clock.BeginFrame(frame)
		h.clock.Step(frame)
		h.c.BeforeCharacterUpdate(frame)
		v := h.c.UpdateVelocity(mgl64.Vec3{}, frame)
		h.c.AfterCharacterUpdate(frame)
		return v
	}
	step(Inputs{Blink: press()})
	if s := h.c.State(); s.Blink != BlinkCharging || s.BlinkCharges != 1 {
		t.Fatalf("state after press = %+v", s)
	}
	for i := 0; i < 11; i++ {
		step(Inputs{Blink: hold()})
	}
	if s := h.c.State(); s.Blink != BlinkCharging || s.BlinkCharges != 2 {
		t.Fatalf("charges = %d (%v), want 2 while charging", s.BlinkCharges, s.Blink)
	}

	v := step(Inputs{Blink: Button{Released: true}})
	if h.c.State().Blink != BlinkBlinking {
		t.Fatal("release should execute the blink")
	}
	if !approx(v.Z(), 60, 1e-9) || !approx(v.X(), 0, 1e-9) {
		t.Fatalf("blink velocity = %v, want forward at the velocity cap", v)
	}
	if !h.c.Effects().BlinkStarted {
		t.Fatal("blink start not reported")
	}

	step(Inputs{})
	v = step(Inputs{})
	if h.c.State().Blink != BlinkNone {
		t.Fatal("blink should finish after its charges run out")
	}
	if v.Len() > 20+1e-9 {
		t.Fatalf("post blink speed %v exceeds the limitation", v.Len())
	}

	step(Inputs{Blink: press()})
	if h.c.State().Blink != BlinkNone {
		t.Fatal("blink restarted during its cooldown")
	}
}

func TestBlinkStopsAtMaxCharges(t *testing.T) {
	h := newHarness(t, stable)
	for i := 0; i < 200 && h.c.State().Blink != BlinkBlinking; i++ {
		in := Inputs{Blink: hold()}
		if i == 0 {
			in.Blink = press()
		}
		h.step(in)
	}
	s := h.c.State()
	if s.Blink != BlinkBlinking || s.BlinkCharges != 3 {
		t.Fatalf("state = %+v, want a three charge blink", s)
	}
}

func TestChargingEasesFieldOfViewAndTimeScale(t *testing.T) {
	h := newHarness(t, stable)
	h.step(Inputs{Blink: press()})
	for i := 0; i < 20; i++ {
		h.c.LateUpdate(0.1)
	}
	e := h.c.Effects()
	if e.FieldOfViewOffset < 9.9 || e.FieldOfViewOffset > 10 {
		t.Fatalf("field of view offset = %v, want about 10", e.FieldOfViewOffset)
	}
	if got := h.c.ModifyTimeScale(1); !approx(got, 0.1, 1e-3) {
		t.Fatalf("time scale = %v, want about 0.1", got)
	}
	if got := h.c.ModifyFieldOfView(70, 70); !approx(got, 70+e.FieldOfViewOffset, 1e-12) {
		t.Fatalf("field of view = %v", got)
	}
}

func TestSlideLosesSpeedOnFlatGround(t *testing.T) {
	h := newHarness(t, stable)
	h.m.velocity = mgl64.Vec3{0, 0, 8}
	forward := mgl64.Vec3{0, 0, 1}

	h.step(Inputs{Movement: forward, Crouch: press()})
	if h.c.State().Slide != Sliding {
		t.Fatal("crouch while moving forward should slide")
	}
	if !h.c.Effects().SlideStarted {
		t.Fatal("slide start not reported")
	}

	last := h.c.State().SlideMagnitude
	for i := 0; i < 100 && h.c.State().Slide == Sliding; i++ {
		h.step(Inputs{Movement: forward, Crouch: hold()})
		got := h.c.State().SlideMagnitude
		if got > last+1e-9 {
			t.Fatalf("step %d: slide magnitude grew from %v to %v on flat ground", i, last, got)
		}
		last = got
	}
	if h.c.State().Slide != SlideIdle {
		t.Fatal("slide should end on its own")
	}
	h.step(Inputs{Movement: forward, Crouch: hold()})
	if !h.c.State().Crouching {
		t.Fatal("holding crouch after the slide should crouch")
	}
}

func TestSlidingDownKeepsSpeed(t *testing.T) {
	h := newHarness(t, stable)
	h.m.velocity = mgl64.Vec3{0, 0, 8}
	h.m.drop = 0.1
	forward := mgl64.Vec3{0, 0, 1}

	h.step(Inputs{Movement: forward, Crouch: press()})
	h.step(Inputs{Movement: forward, Crouch: hold()})
	early := h.c.State().SlideMagnitude
	last := early
	for i := 0; i < 100; i++ {
		h.step(Inputs{Movement: forward, Crouch: hold()})
		got := h.c.State().SlideMagnitude
		if got < last-1e-9 {
			t.Fatalf("step %d: magnitude fell from %v to %v downhill", i, last, got)
		}
		last = got
	}

	s := h.c.State()
	if s.Slide != Sliding || !s.SlidingDown {
		t.Fatalf("state = %+v, want an ongoing downhill slide", s)
	}
	if s.SlideMagnitude <= early || s.SlideMagnitude > 17 {
		t.Fatalf("magnitude = %v, want above %v and at most 17", s.SlideMagnitude, early)
	}
}

func TestWeakSlideLeavesSlow(t *testing.T) {
	h := newHarness(t, stable)
	h.stamina.ConsumeStamina(config.FlatCost(1000))
	h.m.velocity = mgl64.Vec3{0, 0, 8}
	forward := mgl64.Vec3{0, 0, 1}

	h.step(Inputs{Movement: forward, Crouch: press()})
	if !h.c.State().SlideWeak {
		t.Fatal("slide without stamina should be weak")
	}
	h.step(Inputs{Movement: forward, Crouch: Button{Released: true}})
	if h.c.State().Slide != SlideIdle {
		t.Fatal("releasing crouch should end the slide")
	}
	if h.slows.Active() != 1 {
		t.Fatalf("active slows = %d, want 1", h.slows.Active())
	}
}

func TestToggleCrouch(t *testing.T) {
	h := newHarness(t, stable)
	h.c.SetCrouchToggle(true, false)

	h.step(Inputs{Crouch: press()})
	h.step(Inputs{Crouch: Button{Released: true}})
	if !h.c.State().Crouching {
		t.Fatal("toggle mode should stay crouched after release")
	}
	h.step(Inputs{Crouch: press()})
	if h.c.State().Crouching {
		t.Fatal("second press should stand up")
	}
}

func TestAddForceFlags(t *testing.T) {
	t.Run("ground sensitive", func(t *testing.T) {
		h := newHarness(t, stable)
		h.c.AddForce(mgl64.Vec3{10, 0, 0}, config.ForceGroundSensitive)
		v := h.step(Inputs{})
		if !approx(v.X(), 2.5, 1e-9) {
			t.Fatalf("x velocity = %v, want 2.5", v.X())
		}
	})
	t.Run("ignored when grounded", func(t *testing.T) {
		h := newHarness(t, stable)
		h.c.AddForce(mgl64.Vec3{10, 0, 0}, config.ForceIgnoreWhenGrounded)
		v := h.step(Inputs{})
		if !approx(v.X(), 0, 1e-9) {
			t.Fatalf("x velocity = %v, want 0", v.X())
		}
	})
	t.Run("unground", func(t *testing.T) {
		h := newHarness(t, stable)
		h.c.AddForce(mgl64.Vec3{0, 10, 0}, config.ForceUnground)
		if h.m.ungrounds != 1 {
			t.Fatalf("ForceUnground called %d times, want 1", h.m.ungrounds)
		}
	})
	t.Run("kill gravity", func(t *testing.T) {
		h := newHarness(t, airborne)
		h.steps(5, Inputs{})
		if h.c.State().AccumulatedGravity.Len() == 0 {
			t.Fatal("gravity should accumulate in the air")
		}
		h.c.AddForce(mgl64.Vec3{}, config.ForceKillGravity)
		if h.c.State().AccumulatedGravity.Len() != 0 {
			t.Fatal("kill gravity left accumulated gravity")
		}
	})
	t.Run("clamped", func(t *testing.T) {
		h := newHarness(t, airborne)
		h.c.AddForce(mgl64.Vec3{100, 0, 0}, config.ForceNone)
		v := h.step(Inputs{})
		if !approx(v.X(), 50, 1e-9) {
			t.Fatalf("x velocity = %v, want the 50 cap", v.X())
		}
	})
}

func TestCenterOfGravityFollowsHeight(t *testing.T) {
	h := newHarness(t, stable)
	h.m.position = mgl64.Vec3{1, 2, 3}
	if got := h.c.CenterOfGravity(); got != (mgl64.Vec3{1, 3, 3}) {
		t.Fatalf("got %v, want %v", got, mgl64.Vec3{1, 3, 3})
	}
}

func TestUpdateRotation(t *testing.T) {
	right := gamemath.Euler(0, 90)
	t.Run("first person snaps", func(t *testing.T) {
		h := newHarness(t, stable)
		h.c.SetInputs(Inputs{CameraMode: FirstPerson, ForwardRotation: right})
		got := h.c.UpdateRotation(mgl64.QuatIdent(), dt)
		if !got.ApproxEqual(right) {
			t.Fatalf("got %v, want %v", got, right)
		}
	})
	t.Run("third person idle keeps rotation", func(t *testing.T) {
		h := newHarness(t, stable)
		h.c.SetInputs(Inputs{CameraMode: ThirdPerson, ForwardRotation: right})
		got := h.c.UpdateRotation(mgl64.QuatIdent(), dt)
		if !got.ApproxEqual(mgl64.QuatIdent()) {
			t.Fatalf("got %v, want identity", got)
		}
	})
	t.Run("third person turns toward movement", func(t *testing.T) {
		h := newHarness(t, stable)
		h.c.SetInputs(Inputs{CameraMode: ThirdPerson, Movement: mgl64.Vec3{1, 0, 0}})
		q := mgl64.QuatIdent()
		for i := 0; i < 200; i++ {
			q = h.c.UpdateRotation(q, dt)
		}
		if yaw := gamemath.Yaw(q); !approx(yaw, 90, 0.1) {
			t.Fatalf("yaw = %v, want 90", yaw)
		}
	})
}

func TestTeleportResetsAbilities(t *testing.T) {
	h := newHarness(t, stable)
	h.m.velocity = mgl64.Vec3{0, 0, 8}
	h.step(Inputs{Movement: mgl64.Vec3{0, 0, 1}, Crouch: press()})

	target := mgl64.Vec3{5, 1, 5}
	h.c.Teleport(target, mgl64.QuatIdent())
	if h.m.teleports != 1 || h.m.position != target {
		t.Fatalf("motor not teleported: %d calls, position %v", h.m.teleports, h.m.position)
	}
	if h.c.State().Slide != SlideIdle {
		t.Fatal("teleport should cancel the slide")
	}
	if v := h.c.UpdateVelocity(mgl64.Vec3{3, 3, 3}, dt); v != (mgl64.Vec3{}) {
		t.Fatalf("first velocity after teleport = %v, want zero", v)
	}
}

func TestOverrideAndReset(t *testing.T) {
	h := newHarness(t, stable)
	m := h.c.Settings().Movement
	m.MovementSpeedForward = 99
	h.c.OverrideMovement(m)
	if got := h.c.Settings().Movement.MovementSpeedForward; got != 99 {
		t.Fatalf("forward speed = %v, want 99", got)
	}
	h.c.ResetSettings()
	if got := h.c.Settings().Movement.MovementSpeedForward; got != 4.6 {
		t.Fatalf("forward speed after reset = %v, want 4.6", got)
	}

	s := config.DefaultLocomotion()
	s.Gravity.GravityForce = 20
	h.c.SetSettings(s)
	g := s.Gravity
	g.GravityForce = 1
	h.c.OverrideGravity(g)
	h.c.ResetSettings()
	if got := h.c.Settings().Gravity.GravityForce; got != 20 {
		t.Fatalf("gravity after reset = %v, want the value from SetSettings", got)
	}
}

func TestForwardMovementReachesSpeed(t *testing.T) {
	h := newHarness(t, stable)
	v := h.steps(200, Inputs{Movement: mgl64.Vec3{0, 0, 1}})
	if !approx(v.Z(), 4.6, 1e-3) || !approx(v.X(), 0, 1e-9) {
		t.Fatalf("velocity = %v, want 4.6 forward", v)
	}
	if !approx(v.Y(), -0.01, 1e-12) {
		t.Fatalf("vertical velocity = %v, want the at rest epsilon", v.Y())
	}
}
