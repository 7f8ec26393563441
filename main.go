package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/prefs"
	"github.com/automoto/momentum/scenes"
	"github.com/automoto/momentum/sim"
	"github.com/automoto/momentum/systems"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	settingsPath := flag.String("config", "", "Settings YAML file (empty = built-in defaults)")
	arena := flag.String("arena", "", "Arena TMX file (empty = the settings arena)")
	spawn := flag.String("spawn", "", "Spawn point name (empty = the arena default)")
	watch := flag.Bool("watch", true, "Reload the settings file when it changes")
	flag.BoolVar(&config.Debug.ShowOverlay, "overlay", false, "Show the locomotion overlay")
	flag.Parse()

	settings := config.Default()
	var watcher *config.Watcher
	if *settingsPath != "" {
		s, err := config.Load(*settingsPath)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		settings = s
		if *watch {
			if watcher, err = config.Watch(*settingsPath); err != nil {
				log.Printf("Warning: Settings hot reload disabled: %v", err)
			} else {
				defer watcher.Close()
			}
		}
	}
	if *arena != "" {
		settings.Simulation.Arena = *arena
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Momentum")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	scene := scenes.NewSandboxScene(sim.Options{
		Settings:    settings,
		Spawn:       *spawn,
		Input:       systems.NewDeviceInput(settings.Camera.GamepadLookRate),
		Preferences: prefs.Open("momentum"),
	}, watcher)

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}
