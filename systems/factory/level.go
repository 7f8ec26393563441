package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/momentum/archetypes"
	"github.com/automoto/momentum/components"
	"github.com/automoto/momentum/level"
	"github.com/automoto/momentum/motor"
)

func CreateLevel(ecs *ecs.ECS, arena *level.Arena) *donburi.Entry {
	lvl := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(lvl, components.LevelData{
		Arena:    arena,
		Geometry: motor.NewGeometry(arena.Platforms),
	})
	return lvl
}
