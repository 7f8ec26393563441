package sim

import (
	"context"
	"log"
	"time"

	cfg "github.com/automoto/momentum/config"
)

// Loop drives a World at a fixed frame rate without a window. Reloaded
// settings are swapped in between frames.
type Loop struct {
	world    *World
	tickRate int

	// Frames stops the loop after that many frames, 0 runs until the
	// context is done or Until reports true.
	Frames int
	// Until is checked after every frame.
	Until func() bool
	// Unpaced runs frames back to back instead of waiting for the ticker.
	Unpaced bool
	// OnFrame runs after every frame.
	OnFrame func(w *World)

	settings <-chan cfg.Settings
	errs     <-chan error
}

func NewLoop(world *World, tickRate int) *Loop {
	if tickRate < 1 {
		tickRate = world.Simulation().Settings.Simulation.TickRate
	}
	return &Loop{world: world, tickRate: tickRate}
}

// Watch takes reloaded settings from w.
func (l *Loop) Watch(w *cfg.Watcher) {
	l.settings = w.Settings
	l.errs = w.Errors
}

// Run blocks until the loop finishes. It returns nil when the context is
// cancelled or a stop condition is met, and the first frame error
// otherwise.
func (l *Loop) Run(ctx context.Context) error {
	dt := 1 / float64(l.tickRate)
	var ticks <-chan time.Time
	if !l.Unpaced {
		ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
		defer ticker.Stop()
		ticks = ticker.C
	}

	log.Printf("Simulation loop started at %d frames/second", l.tickRate)
	for frames := 0; l.Frames == 0 || frames < l.Frames; frames++ {
		if l.Unpaced {
			if err := ctx.Err(); err != nil {
				return nil
			}
			l.reload()
		} else if !l.wait(ctx, ticks) {
			return nil
		}

		if err := l.world.Frame(dt); err != nil {
			return err
		}
		if l.OnFrame != nil {
			l.OnFrame(l.world)
		}
		if l.Until != nil && l.Until() {
			break
		}
	}
	log.Println("Simulation loop stopped")
	return nil
}

// wait handles reloads until the next tick. It reports false once the
// context is done.
func (l *Loop) wait(ctx context.Context, ticks <-chan time.Time) bool {
	for {
		select {
		case <-ctx.Done():
			log.Println("Simulation loop stopped")
			return false
		case s, ok := <-l.settings:
			if !ok {
				l.settings = nil
				continue
			}
			l.apply(s)
		case err, ok := <-l.errs:
			if !ok {
				l.errs = nil
				continue
			}
			log.Printf("Warning: Settings reload failed: %v", err)
		case <-ticks:
			return true
		}
	}
}

// reload applies whatever reload is pending without blocking.
func (l *Loop) reload() {
	select {
	case s, ok := <-l.settings:
		if ok {
			l.apply(s)
		}
	case err, ok := <-l.errs:
		if ok {
			log.Printf("Warning: Settings reload failed: %v", err)
		}
	default:
	}
}

func (l *Loop) apply(s cfg.Settings) {
	if err := l.world.ApplySettings(s); err != nil {
		log.Printf("Warning: Reloaded settings rejected: %v", err)
		return
	}
	log.Println("Settings reloaded")
}
