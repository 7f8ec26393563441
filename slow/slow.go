// Package slow accumulates timed percentage speed debuffs.
package slow

import (
	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/shared/gamemath"
	"github.com/automoto/momentum/shared/simtime"
)

type entry struct {
	strength float64
	start    float64
	end      float64
	curve    gamemath.Curve
}

// Controller holds the active slows. Each one deducts its own percentage of
// the unmodified value; they add up instead of compounding.
type Controller struct {
	clock   *simtime.Clock
	entries []entry
}

func New(clock *simtime.Clock) *Controller {
	if clock == nil {
		panic("slow: nil clock")
	}
	return &Controller{clock: clock}
}

// AddSlow starts a slow at the current scaled time.
func (c *Controller) AddSlow(s config.Slow) {
	now := c.clock.Time()
	c.entries = append(c.entries, entry{
		strength: s.Strength,
		start:    now,
		end:      now + s.Duration,
		curve:    s.Curve,
	})
}

// SlowSpeedValue returns speed reduced by every active slow.
func (c *Controller) SlowSpeedValue(speed float64) float64 {
	now := c.clock.Time()
	result := speed
	for _, e := range c.entries {
		delta := gamemath.InverseLerp(e.start, e.end, now)
		intensity := e.strength * e.curve.Evaluate(delta)
		result -= gamemath.Percentage(speed, intensity)
	}
	return result
}

// Active returns how many slows are still tracked.
func (c *Controller) Active() int {
	return len(c.entries)
}

// Update drops expired slows. Called once per frame.
func (c *Controller) Update() {
	now := c.clock.Time()
	kept := c.entries[:0]
	for _, e := range c.entries {
		if e.end > now {
			kept = append(kept, e)
		}
	}
	c.entries = kept
}
