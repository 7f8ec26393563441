package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/momentum/archetypes"
	"github.com/automoto/momentum/components"
	cfg "github.com/automoto/momentum/config"
	"github.com/automoto/momentum/force"
	"github.com/automoto/momentum/prefs"
	"github.com/automoto/momentum/shared/simtime"
)

// CreateSimulation spawns the singletons every other entity depends on:
// the simulation clock, input, effects and debug state.
func CreateSimulation(ecs *ecs.ECS, settings cfg.Settings, clock *simtime.Clock, forces *force.System) *donburi.Entry {
	sim := archetypes.Simulation.Spawn(ecs)
	components.Simulation.SetValue(sim, components.SimulationData{
		Clock:    clock,
		Forces:   forces,
		Settings: settings,
	})

	archetypes.Input.Spawn(ecs)
	archetypes.Effects.Spawn(ecs)
	debug := archetypes.Debug.Spawn(ecs)
	components.Debug.SetValue(debug, components.DebugData{ShowOverlay: cfg.Debug.ShowOverlay})
	return sim
}

// CreatePreferences attaches a preference store. Without one the player
// keeps the settings defaults.
func CreatePreferences(ecs *ecs.ECS, store *prefs.Store) *donburi.Entry {
	e := archetypes.Preferences.Spawn(ecs)
	components.Preferences.SetValue(e, components.PreferencesData{Store: store})
	return e
}
