package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/momentum/components"
	cfg "github.com/automoto/momentum/config"
	"github.com/automoto/momentum/shared/simtime"
	"github.com/automoto/momentum/tags"
)

// UpdateEffects eases the locomotion presentation channels, then plays the
// camera shakes and bullet time pulses locomotion raised since last frame.
// Runs once per frame after the physics steps.
func UpdateEffects(e *ecs.ECS) {
	effectsEntry, ok := components.Effects.First(e.World)
	if !ok {
		return
	}
	effects := components.Effects.Get(effectsEntry)
	sim := components.Simulation.Get(components.Simulation.MustFirst(e.World))

	if effects.BulletTime != nil {
		effects.BulletTime.Update(sim.Clock)
		if !effects.BulletTime.Active() {
			sim.Clock.RemoveModifier(effects.BulletTime)
			effects.BulletTime = nil
		}
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	loco := components.Player.Get(playerEntry).Locomotion
	loco.LateUpdate(sim.Clock.UnscaledDeltaTime())
	ev := loco.Effects()
	effects.Last = ev

	if ev.ManeuverStarted {
		effects.Maneuvers++
	}
	if ev.BlinkStarted {
		effects.Blinks++
	}
	if ev.SlideStarted {
		effects.Slides++
	}
	if ev.ThrustDownLanded {
		effects.ThrustDownLandings++
	}
	if len(ev.CameraShakes) > 0 {
		if cameraEntry, ok := components.Camera.First(e.World); ok {
			shake := components.Camera.Get(cameraEntry).Rig.Shake
			for _, s := range ev.CameraShakes {
				shake.Play(s)
				effects.Shakes++
			}
		}
	}
	if ev.BulletTime != nil {
		PlayBulletTime(e, *ev.BulletTime)
	}
}

// PlayBulletTime replaces the running pulse, if any, with a new one.
func PlayBulletTime(e *ecs.ECS, settings cfg.BulletTime) {
	effectsEntry, ok := components.Effects.First(e.World)
	if !ok {
		return
	}
	effects := components.Effects.Get(effectsEntry)
	clock := components.Simulation.Get(components.Simulation.MustFirst(e.World)).Clock
	if effects.BulletTime != nil {
		clock.RemoveModifier(effects.BulletTime)
	}
	pulse := simtime.NewBulletTime(settings.TimeScaleOverTime, settings.Duration, settings.UseUnscaledDuration)
	pulse.Start()
	clock.AddModifier(pulse)
	effects.BulletTime = pulse
	effects.BulletTimes++
}
