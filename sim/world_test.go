package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/automoto/momentum/components"
	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/locomotion"
	"github.com/automoto/momentum/prefs"
	"github.com/automoto/momentum/shared/gamemath"
)

const frameDt = 1.0 / 60.0

// heldInput holds the same actions and stick every frame until changed.
type heldInput struct {
	actions  []config.ActionID
	movement mgl64.Vec2
	look     mgl64.Vec2
	err      error
	polls    int
}

func (h *heldInput) Poll(in *components.InputData) error {
	h.polls++
	for _, a := range h.actions {
		in.Current[a] = true
	}
	in.Movement = h.movement
	in.Look = h.look
	return h.err
}

func (h *heldInput) set(actions ...config.ActionID) {
	h.actions = actions
}

func newWorld(t *testing.T, in components.InputSource) *World {
	t.Helper()
	w, err := New(Options{Settings: config.Default(), Input: in})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func frames(t *testing.T, w *World, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := w.Frame(frameDt); err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
	}
}

func near(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}

func TestNewRejectsUnknownSpawn(t *testing.T) {
	if _, err := New(Options{Settings: config.Default(), Spawn: "nowhere"}); err == nil {
		t.Fatal("expected an error for an unknown spawn")
	}
}

func TestNewRejectsUnknownStartCamera(t *testing.T) {
	s := config.Default()
	s.Simulation.StartCamera = "dolly"
	if _, err := New(Options{Settings: s}); err == nil {
		t.Fatal("expected an error for an unknown camera")
	}
}

func TestNewPlacesCharacterOnNamedSpawn(t *testing.T) {
	w, err := New(Options{Settings: config.Default(), Spawn: "ledge"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := w.Player().Motor.Position(); got != (mgl64.Vec3{22, 4, 21}) {
		t.Fatalf("position = %v, want the ledge spawn", got)
	}
	if !w.Player().Motor.Contact().IsStableOnGround {
		t.Fatal("the ledge spawn should start grounded")
	}
}

func TestStandingStillDoesNotDrift(t *testing.T) {
	w := newWorld(t, &heldInput{})
	frames(t, w, 120)

	p := w.Player()
	if got := p.Motor.Position(); !near(got, mgl64.Vec3{24, 0, 28}, 1e-9) {
		t.Fatalf("position = %v, want the spawn point", got)
	}
	if v := p.Motor.Velocity(); !near(v, mgl64.Vec3{0, -0.01, 0}, 1e-9) {
		t.Fatalf("velocity = %v, want the at rest epsilon", v)
	}
	if !p.Motor.Contact().IsStableOnGround {
		t.Fatal("character should stay grounded")
	}
}

func TestSprintReachesSprintSpeedAndSpendsStamina(t *testing.T) {
	in := &heldInput{movement: mgl64.Vec2{0, 1}}
	in.set(config.ActionSprint)
	w := newWorld(t, in)
	full := w.Player().Stamina.Stamina()
	frames(t, w, 90)

	p := w.Player()
	speed := gamemath.Horizontal(p.Motor.Velocity()).Len()
	if want := config.Default().Locomotion.Movement.MovementSpeedSprint; math.Abs(speed-want) > 0.05 {
		t.Fatalf("speed = %v, want about %v", speed, want)
	}
	if !p.Locomotion.State().Sprinting {
		t.Fatal("character should be sprinting")
	}
	if got := p.Stamina.Stamina(); got >= full {
		t.Fatalf("stamina = %v, want less than %v", got, full)
	}
	if pos := p.Motor.Position(); pos.Z() <= 28 || math.Abs(pos.X()-24) > 1e-6 {
		t.Fatalf("position = %v, want straight ahead of the spawn", pos)
	}
}

func TestWeakJumpLeavesSlow(t *testing.T) {
	in := &heldInput{}
	w := newWorld(t, in)
	p := w.Player()
	p.Stamina.ConsumeStamina(config.FlatCost(p.Stamina.MaximumStamina()))

	in.set(config.ActionManeuver)
	frames(t, w, 1)
	in.set()
	if got := w.Effects().Maneuvers; got != 1 {
		t.Fatalf("maneuvers = %d, want 1", got)
	}
	if !p.Locomotion.State().ManeuverWeak {
		t.Fatal("a jump without stamina should be weak")
	}

	slowed := false
	for i := 0; i < 180 && !slowed; i++ {
		frames(t, w, 1)
		slowed = p.Slows.Active() > 0
	}
	if !slowed {
		t.Fatal("the weak jump never left a slow")
	}
}

func TestHeldBlinkChargesInSlowMotion(t *testing.T) {
	in := &heldInput{}
	in.set(config.ActionBlink)
	w := newWorld(t, in)

	slowest := 1.0
	for i := 0; i < 600 && w.Effects().Blinks == 0; i++ {
		frames(t, w, 1)
		slowest = math.Min(slowest, w.Clock().TimeScale())
	}
	if w.Effects().Blinks != 1 {
		t.Fatal("holding blink never executed it")
	}
	if slowest >= 0.5 {
		t.Fatalf("slowest time scale = %v, want charging to slow time", slowest)
	}
	if got := w.Player().Locomotion.State().Blink; got != locomotion.BlinkBlinking {
		t.Fatalf("blink = %v, want blinking once every charge is collected", got)
	}
}

func TestFixedStepAccumulator(t *testing.T) {
	w := newWorld(t, &heldInput{})
	frames(t, w, 3)
	sim := w.Simulation()
	if sim.Steps != 1 || sim.TotalSteps != 3 || sim.Dropped != 0 {
		t.Fatalf("steps = %d total = %d dropped = %v, want one step per frame", sim.Steps, sim.TotalSteps, sim.Dropped)
	}

	if err := w.Frame(0.25); err != nil {
		t.Fatal(err)
	}
	step := sim.Settings.Simulation.FixedStep
	if sim.Steps != sim.Settings.Simulation.MaxStepsPerFrame {
		t.Fatalf("steps = %d, want the cap", sim.Steps)
	}
	if sim.Dropped < 0.1 || sim.Accumulator >= step {
		t.Fatalf("dropped = %v accumulator = %v, want the excess dropped", sim.Dropped, sim.Accumulator)
	}
	if sim.Alpha < 0 || sim.Alpha >= 1 {
		t.Fatalf("alpha = %v, want [0, 1)", sim.Alpha)
	}
	if sim.Frame != 4 {
		t.Fatalf("frame = %d, want 4", sim.Frame)
	}
}

func TestFrameReturnsInputError(t *testing.T) {
	boom := errors.New("device lost")
	w := newWorld(t, &heldInput{err: boom})
	if err := w.Frame(frameDt); !errors.Is(err, boom) {
		t.Fatalf("got %v, want %v", err, boom)
	}
}

func TestRespawnAction(t *testing.T) {
	in := &heldInput{}
	w := newWorld(t, in)
	p := w.Player()
	p.Locomotion.Teleport(mgl64.Vec3{30, 0, 30}, mgl64.QuatIdent())
	frames(t, w, 1)

	in.set(config.ActionRespawn)
	frames(t, w, 2)
	if p.Respawns != 1 {
		t.Fatalf("respawns = %d, want 1 for a held button", p.Respawns)
	}
	if got := p.Motor.Position(); !near(got, mgl64.Vec3{24, 0, 28}, 1e-9) {
		t.Fatalf("position = %v, want the spawn", got)
	}
}

func TestTeleporterSendsToDestination(t *testing.T) {
	w := newWorld(t, &heldInput{})
	p := w.Player()
	p.Locomotion.Teleport(mgl64.Vec3{5, 0, 5}, mgl64.QuatIdent())
	frames(t, w, 1)

	want := mgl64.Vec3{41, 0, 41}
	if got := p.Motor.Position(); !near(got, want, 1e-9) {
		t.Fatalf("position = %v, want teleporter B at %v", got, want)
	}
	if yaw := gamemath.Yaw(p.Motor.Rotation()); math.Abs(math.Abs(yaw)-180) > 0.5 {
		t.Fatalf("yaw = %v, want the destination's 180", yaw)
	}

	// Arriving inside B must not bounce back to A.
	frames(t, w, 30)
	if got := p.Motor.Position(); !near(got, want, 1e-9) {
		t.Fatalf("position = %v, want to stay on B", got)
	}
}

func TestDestinationOnlyTeleporterDoesNothing(t *testing.T) {
	w := newWorld(t, &heldInput{})
	p := w.Player()
	p.Locomotion.Teleport(mgl64.Vec3{45, 0, 7}, mgl64.QuatIdent())
	frames(t, w, 5)
	if got := p.Motor.Position(); !near(got, mgl64.Vec3{45, 0, 7}, 1e-9) {
		t.Fatalf("position = %v, want to stay on C", got)
	}

	p.Locomotion.Teleport(mgl64.Vec3{5, 0, 43}, mgl64.QuatIdent())
	frames(t, w, 1)
	if got := p.Motor.Position(); !near(got, mgl64.Vec3{45, 0, 7}, 1e-9) {
		t.Fatalf("position = %v, want D to send to C", got)
	}
}

func TestDeathPlaneRespawns(t *testing.T) {
	w := newWorld(t, &heldInput{})
	p := w.Player()
	p.Locomotion.Teleport(mgl64.Vec3{60, -30, 60}, mgl64.QuatIdent())
	frames(t, w, 1)

	if p.Respawns != 1 {
		t.Fatalf("respawns = %d, want 1", p.Respawns)
	}
	if got := p.Motor.Position(); !near(got, mgl64.Vec3{24, 0, 28}, 1e-9) {
		t.Fatalf("position = %v, want the respawn point", got)
	}
}

func TestFallingOffTheArenaRespawns(t *testing.T) {
	w := newWorld(t, &heldInput{})
	p := w.Player()
	p.Locomotion.Teleport(mgl64.Vec3{24, 0, 55}, mgl64.QuatIdent())
	for i := 0; i < 600 && p.Respawns == 0; i++ {
		frames(t, w, 1)
	}
	if p.Respawns != 1 {
		t.Fatalf("respawns = %d after falling, want 1", p.Respawns)
	}
}

func TestForcePadLaunchesAndRearms(t *testing.T) {
	w := newWorld(t, &heldInput{})
	p := w.Player()
	var pad *components.ForcePadData
	components.ForcePad.Each(w.ECS().World, func(e *donburi.Entry) {
		if d := components.ForcePad.Get(e); d.Name == "launcher" {
			pad = d
		}
	})
	if pad == nil {
		t.Fatal("no launcher pad")
	}
	onPad := pad.Volume.Floor()
	away := mgl64.Vec3{30, 0, 28}

	p.Locomotion.Teleport(onPad, mgl64.QuatIdent())
	frames(t, w, 1)
	if pad.Fired != 1 {
		t.Fatalf("fired = %d, want 1", pad.Fired)
	}
	peak := 0.0
	for i := 0; i < 30; i++ {
		frames(t, w, 1)
		peak = math.Max(peak, p.Motor.Position().Y())
	}
	if peak < 0.5 {
		t.Fatalf("peak height = %v, want the pad to launch", peak)
	}

	p.Locomotion.Teleport(away, mgl64.QuatIdent())
	frames(t, w, 1)
	p.Locomotion.Teleport(onPad, mgl64.QuatIdent())
	frames(t, w, 1)
	if pad.Fired != 1 {
		t.Fatalf("fired = %d during the cooldown, want 1", pad.Fired)
	}

	p.Locomotion.Teleport(away, mgl64.QuatIdent())
	frames(t, w, 70)
	p.Locomotion.Teleport(onPad, mgl64.QuatIdent())
	frames(t, w, 1)
	if pad.Fired != 2 {
		t.Fatalf("fired = %d after the cooldown, want 2", pad.Fired)
	}
}

func TestBulletTimeAction(t *testing.T) {
	in := &heldInput{}
	w := newWorld(t, in)
	in.set(config.ActionBulletTime)
	frames(t, w, 2)
	in.set()
	if w.Effects().BulletTime == nil {
		t.Fatal("bullet time not started")
	}
	if got := w.Clock().TimeScale(); got >= 0.5 {
		t.Fatalf("time scale = %v, want slowed", got)
	}

	frames(t, w, 120)
	if w.Effects().BulletTime != nil {
		t.Fatal("bullet time should end after its duration")
	}
	if got := w.Clock().TimeScale(); got < 0.99 {
		t.Fatalf("time scale = %v, want back to normal", got)
	}
}

func TestStaminaActions(t *testing.T) {
	in := &heldInput{}
	w := newWorld(t, in)
	st := w.Player().Stamina
	max := st.MaximumStamina()

	in.set(config.ActionAddMaxStamina)
	frames(t, w, 1)
	in.set()
	frames(t, w, 1)
	if got := st.MaximumStamina(); got != max+st.StaminaPerBar() {
		t.Fatalf("max stamina = %v, want one more bar", got)
	}

	in.set(config.ActionRemoveMaxStamina)
	frames(t, w, 1)
	in.set()
	frames(t, w, 1)
	if got := st.MaximumStamina(); got != max {
		t.Fatalf("max stamina = %v, want %v", got, max)
	}
}

func TestOverlayToggle(t *testing.T) {
	in := &heldInput{}
	w := newWorld(t, in)
	debug := components.Debug.Get(components.Debug.MustFirst(w.ECS().World))
	before := debug.ShowOverlay

	in.set(config.ActionToggleOverlay)
	frames(t, w, 3)
	if debug.ShowOverlay == before {
		t.Fatal("overlay not toggled")
	}
	if w.Debug() == "" {
		t.Fatal("debug text is empty")
	}
}

func TestPreferencesApplyToPlayerAndCamera(t *testing.T) {
	store := prefs.NewStore(prefs.NewMemory())
	keys := config.Default().Locomotion.SaveData
	if err := prefs.Set(store, prefs.LookSensitivityDesktop, 2.0); err != nil {
		t.Fatal(err)
	}
	in := &heldInput{}
	w, err := New(Options{Settings: config.Default(), Input: in, Preferences: store})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	in.look = mgl64.Vec2{10, 0}
	frames(t, w, 1)
	in.look = mgl64.Vec2{}
	if h, _ := w.Camera().Rig.ThirdPerson.Angles(); math.Abs(h-20) > 1e-9 {
		t.Fatalf("horizontal angle = %v, want look scaled by the stored sensitivity", h)
	}

	// Toggle crouch through the action, then tap crouch: it should stick.
	in.set(config.ActionToggleCrouchMode)
	frames(t, w, 1)
	in.set()
	frames(t, w, 1)
	if !prefs.Get(store, keys.ToggleCrouchDesktopKey, false) {
		t.Fatal("toggle crouch preference not stored")
	}
	in.set(config.ActionCrouch)
	frames(t, w, 1)
	in.set()
	frames(t, w, 5)
	if !w.Player().Locomotion.State().Crouching {
		t.Fatal("crouch should stay on after release in toggle mode")
	}
}

func TestApplySettings(t *testing.T) {
	w := newWorld(t, &heldInput{})
	s := config.Default()
	s.Locomotion.Movement.MovementSpeedSprint = 12
	s.Camera.FieldOfView = 90
	if err := w.ApplySettings(s); err != nil {
		t.Fatalf("ApplySettings: %v", err)
	}
	if got := w.Player().Locomotion.Settings().Movement.MovementSpeedSprint; got != 12 {
		t.Fatalf("sprint speed = %v, want 12", got)
	}
	if got := w.Simulation().Settings.Camera.FieldOfView; got != 90 {
		t.Fatalf("field of view = %v, want 90", got)
	}

	bad := config.Default()
	bad.Simulation.FixedStep = 0
	if err := w.ApplySettings(bad); err == nil {
		t.Fatal("expected invalid settings to be rejected")
	}
	if got := w.Simulation().Settings.Camera.FieldOfView; got != 90 {
		t.Fatal("rejected settings must not be applied")
	}
}

func TestPauseFreezesSteps(t *testing.T) {
	in := &heldInput{movement: mgl64.Vec2{0, 1}}
	w := newWorld(t, in)
	frames(t, w, 10)

	in.set(config.ActionPause)
	frames(t, w, 1)
	in.set()
	p := w.Player()
	at := p.Motor.Position()
	steps := w.Simulation().TotalSteps
	frames(t, w, 30)
	if got := p.Motor.Position(); got != at {
		t.Fatalf("position moved from %v to %v while paused", at, got)
	}
	if got := w.Simulation().TotalSteps; got != steps {
		t.Fatalf("steps = %d while paused, want %d", got, steps)
	}

	in.set(config.ActionPause)
	frames(t, w, 1)
	in.set()
	frames(t, w, 10)
	if got := p.Motor.Position(); got.Z() <= at.Z() {
		t.Fatalf("position = %v, want movement after resuming", got)
	}
}
