package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/momentum/archetypes"
	"github.com/automoto/momentum/components"
	"github.com/automoto/momentum/level"
	"github.com/automoto/momentum/shared/simtime"
	"github.com/automoto/momentum/tags"
)

// insert registers the volume in the trigger space with the entry as data.
func insert(ecs *ecs.ECS, entry *donburi.Entry, v level.Volume, tag string) {
	space := components.Space.Get(components.Space.MustFirst(ecs.World))
	obj := space.Insert(v.Min.X(), v.Min.Z(), v.Max.X(), v.Max.Z(), entry, tag)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
}

// CreateTeleporters spawns every teleporter of the arena and links each one
// to its destination.
func CreateTeleporters(ecs *ecs.ECS, teleporters []level.Teleporter) []*donburi.Entry {
	entries := make([]*donburi.Entry, len(teleporters))
	for i, t := range teleporters {
		e := archetypes.Teleporter.Spawn(ecs)
		components.Teleporter.SetValue(e, components.TeleporterData{Teleporter: t})
		insert(ecs, e, t.Volume, tags.ResolvTeleporter)
		entries[i] = e
	}
	for i, t := range teleporters {
		if t.Destination >= 0 {
			components.Teleporter.Get(entries[i]).Target = entries[t.Destination]
		}
	}
	return entries
}

func CreateDeathPlane(ecs *ecs.ECS, plane level.DeathPlane) *donburi.Entry {
	e := archetypes.DeathPlane.Spawn(ecs)
	components.DeathPlane.SetValue(e, components.DeathPlaneData{DeathPlane: plane})
	insert(ecs, e, plane.Volume, tags.ResolvDeathPlane)
	return e
}

func CreateForcePad(ecs *ecs.ECS, pad level.ForcePad) *donburi.Entry {
	e := archetypes.ForcePad.Spawn(ecs)
	components.ForcePad.SetValue(e, components.ForcePadData{ForcePad: pad, Rearm: simtime.None})
	insert(ecs, e, pad.Volume, tags.ResolvForcePad)
	return e
}
