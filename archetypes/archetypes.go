package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/momentum/components"
	cfg "github.com/automoto/momentum/config"
	"github.com/automoto/momentum/tags"
)

var (
	Simulation = newArchetype(
		components.Simulation,
	)
	Input = newArchetype(
		components.Input,
	)
	Level = newArchetype(
		components.Level,
	)
	Space = newArchetype(
		components.Space,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Effects = newArchetype(
		components.Effects,
	)
	Preferences = newArchetype(
		components.Preferences,
	)
	Debug = newArchetype(
		components.Debug,
	)
	Teleporter = newArchetype(
		tags.Teleporter,
		components.Teleporter,
		components.Object,
	)
	DeathPlane = newArchetype(
		tags.DeathPlane,
		components.DeathPlane,
		components.Object,
	)
	ForcePad = newArchetype(
		tags.ForcePad,
		components.ForcePad,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
