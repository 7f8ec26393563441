package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/momentum/components"
	"github.com/automoto/momentum/level"
	"github.com/automoto/momentum/shared/gamemath"
	"github.com/automoto/momentum/tags"
)

// updateTriggers fires the teleporters, death planes and force pads whose
// volume the character entered during the last step. A trigger fires once
// per entry; staying inside does nothing.
func updateTriggers(e *ecs.ECS, playerEntry *donburi.Entry) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	player := components.Player.Get(playerEntry)
	point := player.Locomotion.CenterOfGravity()

	inside := make(map[donburi.Entity]bool)
	radius := player.Motor.Radius()
	for _, hit := range space.QueryRadius(point.X(), point.Z(), radius, tags.ResolvTeleporter, tags.ResolvDeathPlane, tags.ResolvForcePad) {
		entry := hit.(*donburi.Entry)
		if !entry.Valid() {
			continue
		}
		if v, ok := triggerVolume(entry); ok && v.Contains(point) {
			inside[entry.Entity()] = true
		}
	}

	components.DeathPlane.Each(e.World, func(entry *donburi.Entry) {
		plane := components.DeathPlane.Get(entry)
		now := inside[entry.Entity()]
		if now && !plane.Inside {
			spawn := plane.Respawn
			if spawn.Name == "" {
				spawn = player.Spawn
			}
			Respawn(player, spawn)
		}
		plane.Inside = now
	})

	components.ForcePad.Each(e.World, func(entry *donburi.Entry) {
		pad := components.ForcePad.Get(entry)
		now := inside[entry.Entity()]
		if now && !pad.Inside {
			firePad(e, pad)
		}
		pad.Inside = now
	})

	teleported := false
	components.Teleporter.Each(e.World, func(entry *donburi.Entry) {
		t := components.Teleporter.Get(entry)
		now := inside[entry.Entity()]
		if now && !t.Inside && !teleported {
			teleported = teleport(player, t)
		}
		t.Inside = now
	})
}

func triggerVolume(entry *donburi.Entry) (level.Volume, bool) {
	switch {
	case entry.HasComponent(components.Teleporter):
		return components.Teleporter.Get(entry).Volume, true
	case entry.HasComponent(components.DeathPlane):
		return components.DeathPlane.Get(entry).Volume, true
	case entry.HasComponent(components.ForcePad):
		return components.ForcePad.Get(entry).Volume, true
	}
	return level.Volume{}, false
}

// teleport sends the player to t's destination and reports whether t
// fired. The destination skips its next trigger so the arrival does not
// bounce the player back.
func teleport(player *components.PlayerData, t *components.TeleporterData) bool {
	if t.DestinationOnly {
		return false
	}
	if t.SkipNext {
		t.SkipNext = false
		return false
	}
	if t.Target == nil || !t.Target.Valid() {
		return false
	}
	dest := components.Teleporter.Get(t.Target)
	dest.SkipNext = true
	rotation := player.Motor.Rotation()
	if dest.OverrideRotation {
		rotation = gamemath.Euler(0, dest.Yaw)
	}
	player.Locomotion.Teleport(dest.Volume.Floor(), rotation)
	return true
}

func firePad(e *ecs.ECS, pad *components.ForcePadData) {
	if pad.Rearm.IsRunning() {
		return
	}
	sim := components.Simulation.Get(components.Simulation.MustFirst(e.World))
	sim.Forces.AddForceAtPosition(pad.Volume.Floor(), pad.Force)
	pad.Rearm = sim.Clock.Timer(pad.Cooldown)
	pad.Fired++
}

// Respawn returns the player to spawn with its rotation.
func Respawn(player *components.PlayerData, spawn level.Spawn) {
	player.Locomotion.Teleport(spawn.Position, spawn.Rotation())
	player.Respawns++
}
