package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/automoto/momentum/config"
	"github.com/automoto/momentum/sim"
)

// SandboxScene runs one world in the window. The world is built on the
// first Update so a bad arena surfaces as an ebiten error instead of a
// panic during startup.
type SandboxScene struct {
	opts    sim.Options
	watcher *cfg.Watcher
	world   *sim.World
	once    sync.Once
	err     error
}

func NewSandboxScene(opts sim.Options, watcher *cfg.Watcher) *SandboxScene {
	return &SandboxScene{opts: opts, watcher: watcher}
}

func (s *SandboxScene) Update() error {
	s.once.Do(s.configure)
	if s.err != nil {
		return s.err
	}
	s.reload()
	return s.world.Frame(1 / float64(ebiten.TPS()))
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.world == nil {
		return
	}
	s.world.Draw(screen)
}

// World is nil until the first Update.
func (s *SandboxScene) World() *sim.World {
	return s.world
}

func (s *SandboxScene) configure() {
	s.world, s.err = sim.New(s.opts)
	if s.err != nil {
		return
	}
	log.Printf("Sandbox %s ready", s.world.Arena().Name)
}

// reload applies a pending settings reload without blocking the frame.
func (s *SandboxScene) reload() {
	if s.watcher == nil {
		return
	}
	select {
	case settings, ok := <-s.watcher.Settings:
		if !ok {
			s.watcher = nil
			return
		}
		if err := s.world.ApplySettings(settings); err != nil {
			log.Printf("Warning: Reloaded settings rejected: %v", err)
			return
		}
		log.Println("Settings reloaded")
	case err, ok := <-s.watcher.Errors:
		if !ok {
			s.watcher = nil
			return
		}
		log.Printf("Warning: Settings reload failed: %v", err)
	default:
	}
}
