package systems

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/momentum/components"
)

// UpdatePhysics runs the fixed physics steps owed by this frame's scaled
// time. Each step advances the clock, moves every character through its
// motor and then resolves the trigger volumes it overlaps. Steps beyond
// MaxStepsPerFrame are dropped, keeping the fractional remainder.
func UpdatePhysics(e *ecs.ECS) {
	sim := components.Simulation.Get(components.Simulation.MustFirst(e.World))
	step := sim.Settings.Simulation.FixedStep

	sim.Accumulator += sim.Clock.DeltaTime()
	sim.Steps = 0
	for sim.Accumulator >= step && sim.Steps < sim.Settings.Simulation.MaxStepsPerFrame {
		sim.Clock.Step(step)
		components.Player.Each(e.World, func(entry *donburi.Entry) {
			components.Player.Get(entry).Motor.Step(step)
			updateTriggers(e, entry)
		})
		sim.Accumulator -= step
		sim.Steps++
	}
	if sim.Accumulator >= step {
		rest := math.Mod(sim.Accumulator, step)
		sim.Dropped += sim.Accumulator - rest
		sim.Accumulator = rest
	}
	sim.Alpha = sim.Accumulator / step
	sim.TotalSteps += sim.Steps
}

// UpdateStamina regenerates stamina and prunes expired slows once per frame.
func UpdateStamina(e *ecs.ECS) {
	sim := components.Simulation.Get(components.Simulation.MustFirst(e.World))
	dt := sim.Clock.DeltaTime()
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		player.Stamina.Update(dt)
		player.Slows.Update()
	})
}

// UpdateForces expands the pending shockwaves.
func UpdateForces(e *ecs.ECS) {
	sim := components.Simulation.Get(components.Simulation.MustFirst(e.World))
	sim.Forces.Update(sim.Clock.DeltaTime())
}
