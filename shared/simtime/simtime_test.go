package simtime

import (
	"math"
	"testing"

	"github.com/automoto/momentum/shared/gamemath"
)

type fixedScale float64

func (f fixedScale) ModifyTimeScale(scale float64) float64 { return scale * float64(f) }

func TestTimerLifecycle(t *testing.T) {
	c := NewClock()
	if None.IsRunning() || None.Expired() || !None.ExpiredOrNotRunning() {
		t.Fatal("zero timer must be neither running nor expired")
	}

	timer := c.Timer(1)
	if !timer.IsRunning() {
		t.Fatal("fresh timer should be running")
	}
	c.Step(0.25)
	if got := timer.Remaining(); math.Abs(got-0.75) > 1e-12 {
		t.Fatalf("Remaining = %v, want 0.75", got)
	}
	if got := timer.Delta(); math.Abs(got-0.25) > 1e-12 {
		t.Fatalf("Delta = %v, want 0.25", got)
	}
	c.Step(0.75)
	if timer.IsRunning() || !timer.Expired() {
		t.Fatal("timer should have expired exactly at its duration")
	}
	if timer.Remaining() != 0 || timer.Delta() != 1 {
		t.Fatalf("expired timer: remaining %v delta %v", timer.Remaining(), timer.Delta())
	}
}

func TestZeroDurationTimerExpiresImmediately(t *testing.T) {
	c := NewClock()
	timer := c.Timer(0)
	if timer.IsRunning() || !timer.Expired() {
		t.Fatal("zero-duration timer should be expired on creation")
	}
}

func TestClockScalesFrameDelta(t *testing.T) {
	c := NewClock()
	c.AddModifier(fixedScale(0.5))
	if got := c.BeginFrame(0.1); math.Abs(got-0.05) > 1e-12 {
		t.Fatalf("scaled delta = %v, want 0.05", got)
	}
	if c.UnscaledDeltaTime() != 0.1 {
		t.Fatalf("unscaled delta = %v", c.UnscaledDeltaTime())
	}

	unscaled := c.UnscaledTimer(0.15)
	scaled := c.Timer(0.15)
	c.BeginFrame(0.1)
	c.Step(c.DeltaTime())
	if !unscaled.IsRunning() {
		t.Fatal("unscaled timer ended early")
	}
	c.BeginFrame(0.1)
	c.Step(c.DeltaTime())
	if unscaled.IsRunning() {
		t.Fatal("unscaled timer should follow wall time")
	}
	if !scaled.IsRunning() {
		t.Fatal("scaled timer should still run at half speed")
	}
}

func TestBulletTimePulse(t *testing.T) {
	c := NewClock()
	bt := NewBulletTime(gamemath.LinearCurve(0.2, 1), 1, true)
	c.AddModifier(bt)

	bt.Start()
	c.BeginFrame(0)
	if got := c.TimeScale(); math.Abs(got-0.2) > 1e-6 {
		t.Fatalf("scale at start = %v, want 0.2", got)
	}
	for i := 0; i < 5; i++ {
		c.BeginFrame(0.25)
		bt.Update(c)
	}
	if bt.Active() {
		t.Fatal("pulse should be over after its duration")
	}
	c.BeginFrame(0.1)
	if c.TimeScale() != 1 {
		t.Fatalf("scale after pulse = %v, want 1", c.TimeScale())
	}
}
