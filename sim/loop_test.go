package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/automoto/momentum/assets"
	"github.com/automoto/momentum/components"
	"github.com/automoto/momentum/script"
)

func TestLoopRunsFrames(t *testing.T) {
	w := newWorld(t, &heldInput{})
	loop := NewLoop(w, 0)
	loop.Frames = 10
	loop.Unpaced = true
	calls := 0
	loop.OnFrame = func(*World) { calls++ }

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := w.Simulation().Frame; got != 10 {
		t.Fatalf("frames = %d, want 10", got)
	}
	if calls != 10 {
		t.Fatalf("OnFrame ran %d times, want 10", calls)
	}
}

func TestLoopStopsWhenUntilReportsTrue(t *testing.T) {
	w := newWorld(t, &heldInput{})
	loop := NewLoop(w, 60)
	loop.Unpaced = true
	loop.Until = func() bool { return w.Simulation().Frame >= 3 }

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := w.Simulation().Frame; got != 3 {
		t.Fatalf("frames = %d, want 3", got)
	}
}

func TestLoopStopsOnCancelledContext(t *testing.T) {
	w := newWorld(t, &heldInput{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewLoop(w, 60).Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := w.Simulation().Frame; got != 0 {
		t.Fatalf("frames = %d, want none after cancel", got)
	}
}

func TestLoopReturnsFrameError(t *testing.T) {
	boom := errors.New("device lost")
	w := newWorld(t, &heldInput{err: boom})
	loop := NewLoop(w, 60)
	loop.Unpaced = true
	if err := loop.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("got %v, want %v", err, boom)
	}
}

func TestScriptedTour(t *testing.T) {
	src, err := assets.Script("tour")
	if err != nil {
		t.Fatalf("Script: %v", err)
	}
	device, err := script.Compile(src)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	ctx := context.Background()
	w := newWorld(t, nil)
	in := NewScriptInput(ctx, device)
	in.Attach(w)

	loop := NewLoop(w, 60)
	loop.Unpaced = true
	loop.Frames = 2000
	loop.Until = in.Done
	if err := loop.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !in.Done() {
		t.Fatal("tour did not finish")
	}
	if got := w.Simulation().Frame; got > 400 {
		t.Fatalf("tour took %d frames", got)
	}
	if w.Effects().Maneuvers == 0 {
		t.Fatal("tour should have jumped")
	}
	if got := w.Input().LastInputMethod; got != components.InputScript {
		t.Fatalf("input method = %v, want script", got)
	}
}
