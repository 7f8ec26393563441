package systems

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/momentum/components"
	cfg "github.com/automoto/momentum/config"
	"github.com/automoto/momentum/shared/gamemath"
	"github.com/automoto/momentum/tags"
)

// DrawDebug prints the locomotion readout over the arena.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	debugEntry, ok := components.Debug.First(e.World)
	if !ok || !components.Debug.Get(debugEntry).ShowOverlay {
		return
	}
	text := DebugText(e)
	if text == "" {
		return
	}
	lines := strings.Count(text, "\n") + 1
	vector.FillRect(screen, 0, 0, 230, float32(lines*16+8), cfg.BlackOverlay, false)
	ebitenutil.DebugPrintAt(screen, text, 4, 4)
}

// DebugText renders the overlay lines. The headless runner logs the same
// text.
func DebugText(e *ecs.ECS) string {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return ""
	}
	player := components.Player.Get(playerEntry)
	sim := components.Simulation.Get(components.Simulation.MustFirst(e.World))
	state := player.Locomotion.State()
	contact := player.Motor.Contact()
	velocity := player.Motor.Velocity()

	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f  scale %.2f  steps %d\n", ebiten.ActualTPS(), sim.Clock.TimeScale(), sim.Steps)
	fmt.Fprintf(&b, "pos %.2f %.2f %.2f\n", player.Motor.Position().X(), player.Motor.Position().Y(), player.Motor.Position().Z())
	fmt.Fprintf(&b, "speed %.2f  vy %.2f  ground %t/%t\n", gamemath.Horizontal(velocity).Len(), velocity.Y(), contact.FoundAnyGround, contact.IsStableOnGround)
	fmt.Fprintf(&b, "dir %s  sprint %t  crouch %t  h %.2f\n", state.Direction, state.Sprinting, state.Crouching, state.Height)
	fmt.Fprintf(&b, "maneuver %s x%d  cd %.2f\n", state.Maneuver, state.ManeuversDone, state.ManeuverCooldown)
	fmt.Fprintf(&b, "blink %s  charges %d\n", state.Blink, state.BlinkCharges)
	fmt.Fprintf(&b, "slide %s %.2f  thrust %s\n", state.Slide, state.SlideMagnitude, state.ThrustDown)
	fmt.Fprintf(&b, "stamina %.0f/%.0f  slows %d\n", player.Stamina.Stamina(), player.Stamina.MaximumStamina(), player.Slows.Active())
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		cam := components.Camera.Get(cameraEntry)
		kind := "none"
		if active := cam.Rig.Machine.Active(); active != nil {
			kind = active.Kind().String()
		}
		fmt.Fprintf(&b, "camera %s  fov %.1f\n", kind, cam.FieldOfView)
	}
	fmt.Fprintf(&b, "respawns %d", player.Respawns)
	return b.String()
}
