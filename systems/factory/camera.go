package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/momentum/archetypes"
	"github.com/automoto/momentum/camera"
	"github.com/automoto/momentum/components"
)

// CreateCamera builds the camera rig around the player. The player's
// locomotion controller is registered as a field of view modifier.
func CreateCamera(ecs *ecs.ECS, player *donburi.Entry, start camera.Kind) *donburi.Entry {
	sim := components.Simulation.Get(components.Simulation.MustFirst(ecs.World))
	p := components.Player.Get(player)

	cam := archetypes.Camera.Spawn(ecs)
	rig := camera.NewRig(sim.Settings.Camera, p.Motor, sim.Clock, start)
	rig.FieldOfView.Add(p.Locomotion)
	components.Camera.SetValue(cam, components.CameraData{
		Rig:         rig,
		View:        rig.Machine.Active().Transform(),
		FieldOfView: rig.FieldOfView.Value(),
	})
	return cam
}
