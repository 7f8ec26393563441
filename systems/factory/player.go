package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/momentum/archetypes"
	"github.com/automoto/momentum/components"
	"github.com/automoto/momentum/level"
	"github.com/automoto/momentum/locomotion"
	"github.com/automoto/momentum/motor"
	"github.com/automoto/momentum/slow"
	"github.com/automoto/momentum/stamina"
)

// CreatePlayer builds the character at spawn. The simulation and level
// entities must exist.
func CreatePlayer(ecs *ecs.ECS, spawn level.Spawn) *donburi.Entry {
	sim := components.Simulation.Get(components.Simulation.MustFirst(ecs.World))
	lvl := components.Level.Get(components.Level.MustFirst(ecs.World))
	settings := sim.Settings

	player := archetypes.Player.Spawn(ecs)

	m := motor.New(settings.Motor, sim.Clock, lvl.Geometry, spawn.Position)
	st := stamina.New(settings.Locomotion.Stamina, sim.Clock)
	sl := slow.New(sim.Clock)
	loco := locomotion.New(settings.Locomotion, m, st, sl, sim.Forces, sim.Clock)
	m.SetController(loco)
	loco.Teleport(spawn.Position, spawn.Rotation())
	sim.Forces.Register(loco)

	components.Player.SetValue(player, components.PlayerData{
		Motor:      m,
		Locomotion: loco,
		Stamina:    st,
		Slows:      sl,
		Spawn:      spawn,
	})
	return player
}
