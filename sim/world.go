// Package sim assembles the simulation world: the ECS, its clock, the force
// system and the arena, plus the ticker loop that drives a world without a
// window.
package sim

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/momentum/camera"
	"github.com/automoto/momentum/components"
	cfg "github.com/automoto/momentum/config"
	"github.com/automoto/momentum/force"
	"github.com/automoto/momentum/level"
	"github.com/automoto/momentum/prefs"
	"github.com/automoto/momentum/shared/simtime"
	"github.com/automoto/momentum/systems"
	"github.com/automoto/momentum/systems/factory"
)

// Options configure a new World.
type Options struct {
	Settings    cfg.Settings
	Arena       *level.Arena // nil loads Settings.Simulation.Arena
	Spawn       string       // spawn point name, empty for the arena default
	Input       components.InputSource
	Preferences *prefs.Store // nil keeps the settings defaults
}

// World is one simulated character in one arena. It is not safe for
// concurrent use; Frame, ApplySettings and Draw belong to one goroutine.
type World struct {
	ecs    *ecs.ECS
	clock  *simtime.Clock
	forces *force.System
	arena  *level.Arena
	player *donburi.Entry
	camera *donburi.Entry
}

// New builds a world and places the character on its spawn point.
func New(opts Options) (*World, error) {
	if err := opts.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	arena := opts.Arena
	if arena == nil {
		a, err := level.Open(opts.Settings.Simulation.Arena)
		if err != nil {
			return nil, err
		}
		arena = a
	}
	spawn := arena.Spawn
	if opts.Spawn != "" {
		s, ok := arena.Spawns[opts.Spawn]
		if !ok {
			return nil, fmt.Errorf("arena %s has no spawn %q", arena.Name, opts.Spawn)
		}
		spawn = s
	}
	start, err := camera.ParseKind(opts.Settings.Simulation.StartCamera)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	w := &World{
		ecs:   ecs.NewECS(donburi.NewWorld()),
		clock: simtime.NewClock(),
		arena: arena,
	}
	minX, minZ, maxX, maxZ := arena.Bounds()
	w.forces = force.New(minX, minZ, maxX, maxZ)

	w.ecs.AddSystem(systems.UpdateInput)
	w.ecs.AddSystem(systems.UpdatePause)
	w.ecs.AddSystem(systems.UpdateActions)
	w.ecs.AddSystem(systems.UpdatePreferences)
	w.ecs.AddSystem(systems.UpdateCamera)

	// Stepped systems stop while paused; cameras and effects keep running
	w.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	w.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateStamina))
	w.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateForces))
	w.ecs.AddSystem(systems.UpdateEffects)

	w.ecs.AddRenderer(cfg.LayerDefault, systems.DrawArena)
	w.ecs.AddRenderer(cfg.LayerDebug, systems.DrawPause)
	w.ecs.AddRenderer(cfg.LayerDebug, systems.DrawDebug)

	factory.CreateSimulation(w.ecs, opts.Settings, w.clock, w.forces)
	factory.CreateLevel(w.ecs, arena)
	factory.CreateSpace(w.ecs, arena)
	factory.CreateTeleporters(w.ecs, arena.Teleporters)
	for _, plane := range arena.DeathPlanes {
		factory.CreateDeathPlane(w.ecs, plane)
	}
	for _, pad := range arena.ForcePads {
		factory.CreateForcePad(w.ecs, pad)
	}
	w.player = factory.CreatePlayer(w.ecs, spawn)
	w.camera = factory.CreateCamera(w.ecs, w.player, start)
	if opts.Preferences != nil {
		factory.CreatePreferences(w.ecs, opts.Preferences)
	}

	w.clock.AddModifier(w.Player().Locomotion)
	w.Input().Source = opts.Input
	return w, nil
}

// Frame advances the world by dt seconds of wall time: input and cameras
// once, as many fixed physics steps as the scaled time allows, then the
// per-frame upkeep. It returns the input source's error, if any.
func (w *World) Frame(dt float64) error {
	w.clock.BeginFrame(dt)
	w.ecs.Update()
	sim := w.Simulation()
	sim.Frame++
	if err := w.Input().Err; err != nil {
		return fmt.Errorf("input: %w", err)
	}
	return nil
}

// ApplySettings swaps in reloaded settings. The arena is kept; the start
// camera only applies to new worlds.
func (w *World) ApplySettings(s cfg.Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	w.Simulation().Settings = s
	player := w.Player()
	player.Motor.SetSettings(s.Motor)
	player.Stamina.SetSettings(s.Locomotion.Stamina)
	player.Locomotion.SetSettings(s.Locomotion)
	w.Camera().Rig.SetSettings(s.Camera)
	return nil
}

// Draw renders every layer.
func (w *World) Draw(screen *ebiten.Image) {
	w.ecs.Draw(screen)
}

func (w *World) ECS() *ecs.ECS                  { return w.ecs }
func (w *World) Clock() *simtime.Clock          { return w.clock }
func (w *World) Forces() *force.System          { return w.forces }
func (w *World) Arena() *level.Arena            { return w.arena }
func (w *World) Player() *components.PlayerData { return components.Player.Get(w.player) }
func (w *World) Camera() *components.CameraData { return components.Camera.Get(w.camera) }

func (w *World) Simulation() *components.SimulationData {
	return components.Simulation.Get(components.Simulation.MustFirst(w.ecs.World))
}

func (w *World) Input() *components.InputData {
	return components.Input.Get(components.Input.MustFirst(w.ecs.World))
}

func (w *World) Effects() *components.EffectsData {
	return components.Effects.Get(components.Effects.MustFirst(w.ecs.World))
}

// Debug is the overlay text for the current frame.
func (w *World) Debug() string {
	return systems.DebugText(w.ecs)
}
