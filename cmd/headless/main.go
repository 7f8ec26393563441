package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/momentum/assets"
	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/prefs"
	"github.com/automoto/momentum/script"
	"github.com/automoto/momentum/sim"
)

func main() {
	settingsPath := flag.String("config", "", "Settings YAML file (empty = built-in defaults)")
	arena := flag.String("arena", "", "Arena TMX file or embedded arena name (empty = the settings arena)")
	spawn := flag.String("spawn", "", "Spawn point name (empty = the arena default)")
	scriptPath := flag.String("script", "", "Input script (empty = the embedded tour)")
	tickRate := flag.Int("tickrate", 0, "Frames per second (0 = the settings tick rate)")
	frames := flag.Int("frames", 0, "Stop after this many frames (0 = until the script stops)")
	unpaced := flag.Bool("unpaced", false, "Run frames back to back")
	list := flag.Bool("list", false, "List the embedded arenas and exit")
	flag.BoolVar(&config.Debug.LogFrames, "log-frames", false, "Log the overlay text every frame")
	flag.Parse()

	if *list {
		names, err := assets.LevelNames()
		if err != nil {
			log.Fatalf("Failed to list arenas: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	settings := config.Default()
	var watcher *config.Watcher
	if *settingsPath != "" {
		s, err := config.Load(*settingsPath)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		settings = s
		if watcher, err = config.Watch(*settingsPath); err != nil {
			log.Printf("Warning: Settings hot reload disabled: %v", err)
		}
	}
	if *arena != "" {
		settings.Simulation.Arena = *arena
	}

	device, err := loadScript(*scriptPath)
	if err != nil {
		log.Fatalf("Failed to load script: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	world, err := sim.New(sim.Options{
		Settings:    settings,
		Spawn:       *spawn,
		Preferences: prefs.NewStore(prefs.NewMemory()),
	})
	if err != nil {
		log.Fatalf("Failed to create world: %v", err)
	}
	input := sim.NewScriptInput(ctx, device)
	input.Attach(world)

	loop := sim.NewLoop(world, *tickRate)
	loop.Frames = *frames
	loop.Unpaced = *unpaced
	loop.Until = input.Done
	if config.Debug.LogFrames {
		loop.OnFrame = func(w *sim.World) {
			log.Printf("frame %d: %s", w.Simulation().Frame, w.Debug())
		}
	}
	if watcher != nil {
		defer watcher.Close()
		loop.Watch(watcher)
	}

	log.Printf("Running %s in %s", scriptName(*scriptPath), world.Arena().Name)
	if err := loop.Run(ctx); err != nil {
		log.Fatalf("Simulation error: %v", err)
	}

	p := world.Player()
	stats := world.Simulation()
	log.Printf("Finished after %d frames (%d steps, %.3fs dropped): position %v, %d respawns",
		stats.Frame, stats.TotalSteps, stats.Dropped, p.Motor.Position(), p.Respawns)
}

func loadScript(path string) (*script.Device, error) {
	if path != "" {
		return script.Load(path)
	}
	src, err := assets.Script("tour")
	if err != nil {
		return nil, err
	}
	return script.Compile(src)
}

func scriptName(path string) string {
	if path == "" {
		return "the tour"
	}
	return path
}
