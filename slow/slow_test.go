package slow

import (
	"math"
	"testing"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/shared/gamemath"
	"github.com/automoto/momentum/shared/simtime"
)

func TestNoSlowsLeavesSpeedUnchanged(t *testing.T) {
	c := New(simtime.NewClock())
	if got := c.SlowSpeedValue(7.5); got != 7.5 {
		t.Fatalf("got %v, want 7.5", got)
	}
}

func TestSingleFullStrengthSlow(t *testing.T) {
	c := New(simtime.NewClock())
	c.AddSlow(config.Slow{Strength: 40, Duration: 2, Curve: gamemath.ConstantCurve(1)})
	if got := c.SlowSpeedValue(10); math.Abs(got-6) > 1e-12 {
		t.Fatalf("got %v, want 6", got)
	}
}

func TestSlowsAddAgainstUnmodifiedValue(t *testing.T) {
	c := New(simtime.NewClock())
	c.AddSlow(config.Slow{Strength: 50, Duration: 2, Curve: gamemath.ConstantCurve(1)})
	c.AddSlow(config.Slow{Strength: 30, Duration: 2, Curve: gamemath.ConstantCurve(1)})
	// 50% + 30% of 10, not 10 * 0.5 * 0.7
	if got := c.SlowSpeedValue(10); math.Abs(got-2) > 1e-12 {
		t.Fatalf("got %v, want 2", got)
	}
}

func TestSlowFollowsCurveOverLifetime(t *testing.T) {
	clock := simtime.NewClock()
	c := New(clock)
	c.AddSlow(config.Slow{Strength: 100, Duration: 2, Curve: gamemath.LinearCurve(1, 0)})
	clock.Step(1)
	if got := c.SlowSpeedValue(10); math.Abs(got-5) > 1e-6 {
		t.Fatalf("halfway got %v, want 5", got)
	}
}

func TestUpdatePrunesExpired(t *testing.T) {
	clock := simtime.NewClock()
	c := New(clock)
	c.AddSlow(config.Slow{Strength: 20, Duration: 1, Curve: gamemath.ConstantCurve(1)})
	c.AddSlow(config.Slow{Strength: 20, Duration: 3, Curve: gamemath.ConstantCurve(1)})

	clock.Step(1)
	c.Update()
	if c.Active() != 1 {
		t.Fatalf("active = %d, want 1 (end <= now is expired)", c.Active())
	}
	clock.Step(2)
	c.Update()
	if c.Active() != 0 {
		t.Fatalf("active = %d, want 0", c.Active())
	}
}
