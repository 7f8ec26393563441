package factory

import (
	"math"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/momentum/archetypes"
	"github.com/automoto/momentum/components"
	"github.com/automoto/momentum/level"
	"github.com/automoto/momentum/shared/broadphase"
)

const triggerCellSize = 4

func CreateSpace(ecs *ecs.ECS, arena *level.Arena) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	minX, minZ, maxX, maxZ := arena.Bounds()
	// Death planes usually reach past the playable area.
	for _, d := range arena.DeathPlanes {
		minX, minZ = math.Min(minX, d.Volume.Min.X()), math.Min(minZ, d.Volume.Min.Z())
		maxX, maxZ = math.Max(maxX, d.Volume.Max.X()), math.Max(maxZ, d.Volume.Max.Z())
	}
	components.Space.Set(space, broadphase.New(minX, minZ, maxX, maxZ, triggerCellSize))
	return space
}
