package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/momentum/components"
	cfg "github.com/automoto/momentum/config"
)

// UpdateActions handles the sandbox actions that are not locomotion input:
// respawning, manual bullet time, the overlay toggle and the stamina pool
// commands.
func UpdateActions(e *ecs.ECS) {
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionToggleOverlay).JustPressed {
		if debugEntry, ok := components.Debug.First(e.World); ok {
			debug := components.Debug.Get(debugEntry)
			debug.ShowOverlay = !debug.ShowOverlay
		}
	}

	if GetAction(input, cfg.ActionBulletTime).JustPressed {
		sim := components.Simulation.Get(components.Simulation.MustFirst(e.World))
		PlayBulletTime(e, sim.Settings.Simulation.BulletTime)
	}

	respawn := GetAction(input, cfg.ActionRespawn).JustPressed
	addBar := GetAction(input, cfg.ActionAddMaxStamina).JustPressed
	removeBar := GetAction(input, cfg.ActionRemoveMaxStamina).JustPressed
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if respawn {
			Respawn(player, player.Spawn)
		}
		if addBar {
			player.Stamina.AddMaxStamina(1)
		}
		if removeBar {
			player.Stamina.RemoveMaxStamina(1)
		}
	})
}
